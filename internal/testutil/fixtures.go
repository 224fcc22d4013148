package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/model"
)

// ArtifactJSON is a small deterministic forest over the eight mix fields:
// two stumps, one splitting on cement (feature 0, threshold 300) and one
// on water (feature 3, threshold 170). Predictions are the mean of the
// two leaf values, so expected outputs are easy to compute by hand:
//
//	cement<=300, water<=170 -> (250+300)/2 = 275
//	cement<=300, water>170  -> (250+200)/2 = 225
//	cement>300,  water<=170 -> (400+300)/2 = 350
//	cement>300,  water>170  -> (400+200)/2 = 300
const ArtifactJSON = `{
  "num_features": 8,
  "trees": [
    {"nodes": [
      {"feature": 0, "threshold": 300, "left": 1, "right": 2},
      {"feature": -1, "value": 250},
      {"feature": -1, "value": 400}
    ]},
    {"nodes": [
      {"feature": 3, "threshold": 170, "left": 1, "right": 2},
      {"feature": -1, "value": 300},
      {"feature": -1, "value": 200}
    ]}
  ],
  "feature_importances": [0.30, 0.05, 0.05, 0.25, 0.05, 0.10, 0.10, 0.10]
}`

// NegativeArtifactJSON always predicts -50, for exercising the
// negative-prediction correction.
const NegativeArtifactJSON = `{
  "num_features": 8,
  "trees": [
    {"nodes": [{"feature": -1, "value": -50}]}
  ]
}`

// MetadataJSON builds a metadata document with the canonical feature
// order and the given cross-validation stability.
func MetadataJSON(stability float64) string {
	return fmt.Sprintf(`{
  "modelo_info": {
    "tipo": "RandomForestRegressor",
    "version": "1.1",
    "fecha_entrenamiento": "2024-06-01 10:30:00",
    "variables_entrada": [
      "Cemento_kg_m3", "Escoria_Alto_Horno_kg_m3", "Ceniza_Volante_kg_m3",
      "Agua_kg_m3", "Superplastificante_kg_m3", "Agregado_Grueso_kg_m3",
      "Agregado_Fino_kg_m3", "Edad_dias"
    ],
    "variable_salida": "Resistencia_Compresion_kg_cm2"
  },
  "metricas": {
    "r2_score": 0.9123,
    "mae_kg_cm2": 28.41,
    "cv_score_mean": 0.8901,
    "estabilidad": %g
  }
}`, stability)
}

// WriteModelFiles writes the given artifact and metadata JSON into dir
// and returns both paths.
func WriteModelFiles(t *testing.T, dir, artifactJSON, metadataJSON string) (string, string) {
	t.Helper()
	artifactPath := filepath.Join(dir, "modelo.json")
	metadataPath := filepath.Join(dir, "metadata.json")
	if err := os.WriteFile(artifactPath, []byte(artifactJSON), 0644); err != nil {
		t.Fatalf("writing artifact fixture: %v", err)
	}
	if err := os.WriteFile(metadataPath, []byte(metadataJSON), 0644); err != nil {
		t.Fatalf("writing metadata fixture: %v", err)
	}
	return artifactPath, metadataPath
}

// NewTestModel loads the standard fixture forest with stability 0.08
// (confidence 0.92 under the canonical formula).
func NewTestModel(t *testing.T) *model.Model {
	t.Helper()
	return NewTestModelWith(t, ArtifactJSON, MetadataJSON(0.08))
}

// NewTestModelWith loads a model from the given fixture documents.
func NewTestModelWith(t *testing.T, artifactJSON, metadataJSON string) *model.Model {
	t.Helper()
	artifactPath, metadataPath := WriteModelFiles(t, t.TempDir(), artifactJSON, metadataJSON)
	m, err := model.Load(artifactPath, metadataPath)
	if err != nil {
		t.Fatalf("loading fixture model: %v", err)
	}
	return m
}

// ValidMix returns a mix inside every recorded range.
func ValidMix() domain.MixDesign {
	return domain.MixDesign{
		Cement: 280, Slag: 70, FlyAsh: 0, Water: 175,
		Superplasticizer: 2.5, CoarseAggregate: 950, FineAggregate: 750, AgeDays: 28,
	}
}
