// Package export writes prediction history to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dparedes/hormigo/internal/domain"
)

// historyHeader is the CSV column layout: inputs first, then the derived
// results, matching the order the history table displays them.
var historyHeader = []string{
	"timestamp",
	domain.FieldCement,
	domain.FieldSlag,
	domain.FieldFlyAsh,
	domain.FieldWater,
	domain.FieldSuperplasticizer,
	domain.FieldCoarseAggregate,
	domain.FieldFineAggregate,
	domain.FieldAge,
	"resistencia_kg_cm2",
	"relacion_agua_cemento",
	"total_cementicios_kg_m3",
	"clasificacion_nec",
	"confianza",
}

// WriteHistory writes the results as CSV to w, header first.
func WriteHistory(w io.Writer, results []*domain.PredictionResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range results {
		record := []string{
			r.CreatedAt.UTC().Format(time.RFC3339),
			formatFloat(r.Mix.Cement),
			formatFloat(r.Mix.Slag),
			formatFloat(r.Mix.FlyAsh),
			formatFloat(r.Mix.Water),
			formatFloat(r.Mix.Superplasticizer),
			formatFloat(r.Mix.CoarseAggregate),
			formatFloat(r.Mix.FineAggregate),
			formatFloat(r.Mix.AgeDays),
			strconv.FormatFloat(r.Strength, 'f', 2, 64),
			strconv.FormatFloat(r.WaterCementRatio, 'f', 3, 64),
			strconv.FormatFloat(r.CementitiousTotal, 'f', 1, 64),
			r.Band,
			strconv.FormatFloat(r.Confidence, 'f', 3, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// BackupFilename builds a timestamped export file name such as
// "historial_predicciones_20250314_153045.csv".
func BackupFilename(base string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", base, now.Format("20060102_150405"))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
