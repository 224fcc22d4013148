package model

import "errors"

// Loader failure taxonomy. All four are startup-fatal: the application
// cannot predict without a loaded artifact and its metadata.
var (
	ErrArtifactNotFound  = errors.New("model artifact file not found")
	ErrMetadataNotFound  = errors.New("model metadata file not found")
	ErrArtifactCorrupt   = errors.New("model artifact is corrupt")
	ErrMetadataMalformed = errors.New("model metadata is malformed")
)
