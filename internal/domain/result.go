package domain

import "time"

// PredictionResult is one completed strength prediction. Results are
// immutable once created: the history store only appends and clears.
type PredictionResult struct {
	ID                string
	Mix               MixDesign
	Strength          float64 // predicted compressive strength, kg/cm²
	WaterCementRatio  float64
	CementitiousTotal float64 // cement + slag + fly ash, kg/m³
	Band              string
	BandColor         string
	BandDescription   string
	Confidence        float64 // in [0,1]
	AgeDays           float64
	CreatedAt         time.Time
}
