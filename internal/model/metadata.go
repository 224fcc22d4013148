package model

import "fmt"

// ModelInfo describes the trained regressor. Field tags follow the key
// names the training pipeline writes into the metadata document.
type ModelInfo struct {
	Type        string   `json:"tipo"`
	Version     string   `json:"version"`
	TrainedAt   string   `json:"fecha_entrenamiento"`
	InputFields []string `json:"variables_entrada"`
	OutputField string   `json:"variable_salida"`
}

// Metrics holds the evaluation metrics recorded at training time.
// Stability is the standard deviation of the cross-validation scores.
type Metrics struct {
	R2Score     float64 `json:"r2_score"`
	MAE         float64 `json:"mae_kg_cm2"`
	CVScoreMean float64 `json:"cv_score_mean"`
	Stability   float64 `json:"estabilidad"`
}

// Metadata is the document loaded alongside the artifact. Read-only for
// the life of the process.
type Metadata struct {
	ModelInfo ModelInfo `json:"modelo_info"`
	Metrics   Metrics   `json:"metricas"`
}

// metadataDocument mirrors Metadata with pointer sections so the loader
// can distinguish a missing top-level key from a zero-valued one.
type metadataDocument struct {
	ModelInfo *ModelInfo `json:"modelo_info"`
	Metrics   *Metrics   `json:"metricas"`
}

func (d *metadataDocument) validate() error {
	if d.ModelInfo == nil {
		return fmt.Errorf("missing modelo_info section")
	}
	if d.Metrics == nil {
		return fmt.Errorf("missing metricas section")
	}
	if len(d.ModelInfo.InputFields) == 0 {
		return fmt.Errorf("modelo_info.variables_entrada is empty")
	}
	seen := make(map[string]bool, len(d.ModelInfo.InputFields))
	for _, f := range d.ModelInfo.InputFields {
		if f == "" {
			return fmt.Errorf("modelo_info.variables_entrada contains an empty name")
		}
		if seen[f] {
			return fmt.Errorf("modelo_info.variables_entrada repeats %q", f)
		}
		seen[f] = true
	}
	return nil
}
