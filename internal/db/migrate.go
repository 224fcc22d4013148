package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. Statements are written
// to be re-runnable (IF NOT EXISTS).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS predictions (
		id                 TEXT PRIMARY KEY,
		cement             REAL NOT NULL,
		slag               REAL NOT NULL,
		fly_ash            REAL NOT NULL,
		water              REAL NOT NULL,
		superplasticizer   REAL NOT NULL,
		coarse_aggregate   REAL NOT NULL,
		fine_aggregate     REAL NOT NULL,
		age_days           REAL NOT NULL,
		strength_kg_cm2    REAL NOT NULL,
		water_cement_ratio REAL NOT NULL,
		cementitious_kg_m3 REAL NOT NULL,
		band               TEXT NOT NULL,
		band_color         TEXT NOT NULL,
		band_description   TEXT NOT NULL,
		confidence         REAL NOT NULL,
		created_at         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_predictions_created ON predictions(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
