package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dparedes/hormigo/internal/domain"
)

// SQLitePredictionRepo implements PredictionRepo using a SQLite database.
type SQLitePredictionRepo struct {
	db *sql.DB
}

// NewSQLitePredictionRepo creates a new SQLitePredictionRepo.
func NewSQLitePredictionRepo(db *sql.DB) *SQLitePredictionRepo {
	return &SQLitePredictionRepo{db: db}
}

const predictionColumns = `id, cement, slag, fly_ash, water, superplasticizer,
	coarse_aggregate, fine_aggregate, age_days, strength_kg_cm2,
	water_cement_ratio, cementitious_kg_m3, band, band_color,
	band_description, confidence, created_at`

func (r *SQLitePredictionRepo) Create(ctx context.Context, p *domain.PredictionResult) error {
	query := `INSERT INTO predictions (` + predictionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Mix.Cement,
		p.Mix.Slag,
		p.Mix.FlyAsh,
		p.Mix.Water,
		p.Mix.Superplasticizer,
		p.Mix.CoarseAggregate,
		p.Mix.FineAggregate,
		p.Mix.AgeDays,
		p.Strength,
		p.WaterCementRatio,
		p.CementitiousTotal,
		p.Band,
		p.BandColor,
		p.BandDescription,
		p.Confidence,
		p.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting prediction: %w", err)
	}
	return nil
}

func (r *SQLitePredictionRepo) GetByID(ctx context.Context, id string) (*domain.PredictionResult, error) {
	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPrediction(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("prediction %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prediction: %w", err)
	}
	return p, nil
}

func (r *SQLitePredictionRepo) List(ctx context.Context, limit int) ([]*domain.PredictionResult, error) {
	query := `SELECT ` + predictionColumns + ` FROM predictions ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing predictions: %w", err)
	}
	defer rows.Close()

	var results []*domain.PredictionResult
	for rows.Next() {
		p, err := scanPrediction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning prediction row: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating predictions: %w", err)
	}
	return results, nil
}

func (r *SQLitePredictionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting predictions: %w", err)
	}
	return n, nil
}

func (r *SQLitePredictionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM predictions`); err != nil {
		return fmt.Errorf("clearing predictions: %w", err)
	}
	return nil
}

// scanPrediction scans one row through the given scan function, shared by
// GetByID (sql.Row) and List (sql.Rows).
func scanPrediction(scan func(dest ...any) error) (*domain.PredictionResult, error) {
	var p domain.PredictionResult
	var createdAtStr string

	err := scan(
		&p.ID,
		&p.Mix.Cement,
		&p.Mix.Slag,
		&p.Mix.FlyAsh,
		&p.Mix.Water,
		&p.Mix.Superplasticizer,
		&p.Mix.CoarseAggregate,
		&p.Mix.FineAggregate,
		&p.Mix.AgeDays,
		&p.Strength,
		&p.WaterCementRatio,
		&p.CementitiousTotal,
		&p.Band,
		&p.BandColor,
		&p.BandDescription,
		&p.Confidence,
		&createdAtStr,
	)
	if err != nil {
		return nil, err
	}

	p.AgeDays = p.Mix.AgeDays
	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}
