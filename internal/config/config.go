package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dparedes/hormigo/internal/domain"
)

// Config holds process-wide settings resolved once at startup.
type Config struct {
	ArtifactPath string
	MetadataPath string
	DBPath       string
	Policy       domain.ValidationPolicy
}

// Defaults returns the configuration used when no environment overrides
// are set. The artifact and metadata default to the working directory,
// matching how the model files ship next to the binary; history lives
// under ~/.hormigo.
func Defaults() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		ArtifactPath: "modelo_hormigon_ecuador_v1.json",
		MetadataPath: "modelo_metadata.json",
		DBPath:       filepath.Join(home, ".hormigo", "hormigo.db"),
		Policy:       domain.PolicyPermissive,
	}, nil
}

// Load resolves the configuration from the environment over Defaults.
// HORMIGO_MODEL, HORMIGO_METADATA and HORMIGO_DB override paths;
// HORMIGO_VALIDATION selects strict or permissive validation.
func Load() (Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return Config{}, err
	}
	if v := os.Getenv("HORMIGO_MODEL"); v != "" {
		cfg.ArtifactPath = v
	}
	if v := os.Getenv("HORMIGO_METADATA"); v != "" {
		cfg.MetadataPath = v
	}
	if v := os.Getenv("HORMIGO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("HORMIGO_VALIDATION"); v != "" {
		policy, err := domain.ParseValidationPolicy(v)
		if err != nil {
			return Config{}, fmt.Errorf("HORMIGO_VALIDATION: %w", err)
		}
		cfg.Policy = policy
	}
	return cfg, nil
}
