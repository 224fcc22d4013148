package domain

import "fmt"

// ValidationPolicy controls whether out-of-range inputs block a prediction
// or are only reported as warnings.
type ValidationPolicy string

const (
	PolicyStrict     ValidationPolicy = "strict"
	PolicyPermissive ValidationPolicy = "permissive"
)

// ParseValidationPolicy converts a configuration string into a policy.
func ParseValidationPolicy(s string) (ValidationPolicy, error) {
	switch ValidationPolicy(s) {
	case PolicyStrict:
		return PolicyStrict, nil
	case PolicyPermissive:
		return PolicyPermissive, nil
	}
	return "", fmt.Errorf("validation policy %q must be %q or %q", s, PolicyStrict, PolicyPermissive)
}
