package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model pairs the loaded artifact with its metadata. It is built once at
// startup and never mutated, so predictions may read it concurrently
// without coordination.
type Model struct {
	artifact *Artifact
	meta     Metadata
}

// Load reads the artifact and metadata files and validates both.
// Failures map onto the loader taxonomy: ErrArtifactNotFound /
// ErrMetadataNotFound for missing paths, ErrArtifactCorrupt for an
// artifact that does not deserialize into a usable forest, and
// ErrMetadataMalformed for a document missing required sections.
func Load(artifactPath, metadataPath string) (*Model, error) {
	raw, err := os.ReadFile(artifactPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, artifactPath)
		}
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactCorrupt, err)
	}
	if err := artifact.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactCorrupt, err)
	}

	raw, err = os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMetadataNotFound, metadataPath)
		}
		return nil, fmt.Errorf("reading model metadata: %w", err)
	}

	var doc metadataDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataMalformed, err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataMalformed, err)
	}
	if len(doc.ModelInfo.InputFields) != artifact.NumFeatures {
		return nil, fmt.Errorf("%w: metadata lists %d input variables but artifact expects %d",
			ErrMetadataMalformed, len(doc.ModelInfo.InputFields), artifact.NumFeatures)
	}

	return &Model{
		artifact: &artifact,
		meta:     Metadata{ModelInfo: *doc.ModelInfo, Metrics: *doc.Metrics},
	}, nil
}

// Predict runs the forest on one feature vector built in canonical order.
func (m *Model) Predict(features []float64) float64 {
	return m.artifact.Predict(features)
}

// Metadata returns the metadata document loaded with the artifact.
func (m *Model) Metadata() Metadata {
	return m.meta
}

// FeatureNames returns a copy of the canonical ordered feature-name list.
// The predictor always sources the vector order from here, never from a
// second hardcoded list.
func (m *Model) FeatureNames() []string {
	out := make([]string, len(m.meta.ModelInfo.InputFields))
	copy(out, m.meta.ModelInfo.InputFields)
	return out
}

// FeatureImportances returns per-feature weights aligned to FeatureNames,
// or nil when the artifact does not record them.
func (m *Model) FeatureImportances() []float64 {
	return m.artifact.FeatureImportances()
}
