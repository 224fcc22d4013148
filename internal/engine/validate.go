package engine

import (
	"fmt"
	"strings"

	"github.com/dparedes/hormigo/internal/domain"
)

// ValidationResult is the outcome of checking a mix against the range
// table. Valid=false blocks the prediction. Under the permissive policy,
// range violations are recorded but Valid stays true; only missing
// required fields block regardless of policy.
type ValidationResult struct {
	Valid      bool
	Violations []string
}

// ValidationError wraps a blocking validation outcome for the error chain.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid mix design: %s", strings.Join(e.Violations, "; "))
}

// Validate checks a mix design against ranges under the given policy.
// featureOrder is the canonical feature-name list from the model metadata;
// violations are reported in that order, not input order. A field without
// a range entry is only checked for existence.
func Validate(mix domain.MixDesign, featureOrder []string, ranges RangeTable, policy domain.ValidationPolicy) ValidationResult {
	res := ValidationResult{Valid: true}

	for _, field := range featureOrder {
		v, ok := mix.Value(field)
		if !ok {
			res.Valid = false
			res.Violations = append(res.Violations, fmt.Sprintf("missing required variable %s", field))
			continue
		}

		r, hasRange := ranges[field]
		if !hasRange {
			continue
		}
		if policy == domain.PolicyPermissive {
			r = r.Widened()
		}
		if !r.Contains(v) {
			res.Violations = append(res.Violations,
				fmt.Sprintf("%s: %g outside valid range [%g, %g]", field, v, r.Min, r.Max))
			if policy == domain.PolicyStrict {
				res.Valid = false
			}
		}
	}

	return res
}
