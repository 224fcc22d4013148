package model

import "fmt"

// treeNode is one node of a serialized regression tree. Internal nodes
// carry a feature index and split threshold; leaves have Feature == -1 and
// carry the predicted value.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

// predict walks the tree from the root (node 0) to a leaf.
// Split convention: go left when feature <= threshold.
func (t tree) predict(features []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature < 0 {
			return n.Value
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// validate checks structural integrity: node child and feature indexes in
// range, children strictly after their parent so traversal terminates.
func (t tree) validate(numFeatures int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	for i, n := range t.Nodes {
		if n.Feature < 0 {
			continue // leaf
		}
		if n.Feature >= numFeatures {
			return fmt.Errorf("node %d references feature %d of %d", i, n.Feature, numFeatures)
		}
		if n.Left <= i || n.Left >= len(t.Nodes) || n.Right <= i || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has out-of-order children [%d, %d]", i, n.Left, n.Right)
		}
	}
	return nil
}

// Artifact is the deserialized forest regressor. It is immutable after
// loading and safe for concurrent reads.
type Artifact struct {
	NumFeatures int       `json:"num_features"`
	Trees       []tree    `json:"trees"`
	Importances []float64 `json:"feature_importances,omitempty"`
}

// Predict runs the forest on one feature vector and returns the mean of
// the per-tree predictions. The vector must have NumFeatures entries in
// the canonical order recorded in the metadata.
func (a *Artifact) Predict(features []float64) float64 {
	sum := 0.0
	for _, t := range a.Trees {
		sum += t.predict(features)
	}
	return sum / float64(len(a.Trees))
}

// FeatureImportances returns a copy of the per-feature weights aligned to
// the canonical feature order, or nil if the artifact does not carry them.
func (a *Artifact) FeatureImportances() []float64 {
	if len(a.Importances) == 0 {
		return nil
	}
	out := make([]float64, len(a.Importances))
	copy(out, a.Importances)
	return out
}

// validate enforces the "callable prediction capability" contract: at
// least one structurally sound tree, and importances (when present)
// aligned to the feature count.
func (a *Artifact) validate() error {
	if a.NumFeatures <= 0 {
		return fmt.Errorf("artifact declares %d features", a.NumFeatures)
	}
	if len(a.Trees) == 0 {
		return fmt.Errorf("artifact has no trees")
	}
	for i, t := range a.Trees {
		if err := t.validate(a.NumFeatures); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	if len(a.Importances) > 0 && len(a.Importances) != a.NumFeatures {
		return fmt.Errorf("artifact has %d importances for %d features", len(a.Importances), a.NumFeatures)
	}
	return nil
}
