package engine

import "github.com/dparedes/hormigo/internal/domain"

// Range is an inclusive [Min, Max] bound for one mix-design field.
type Range struct {
	Min float64
	Max float64
}

// RangeTable maps field names to their valid ranges.
type RangeTable map[string]Range

// permissiveMargin is the fraction of the range width added on each side
// when validating under the permissive policy.
const permissiveMargin = 0.10

// Widened returns the range extended by the permissive margin on both
// sides, with the low end clamped at zero (quantities are non-negative).
func (r Range) Widened() Range {
	margin := (r.Max - r.Min) * permissiveMargin
	lo := r.Min - margin
	if lo < 0 {
		lo = 0
	}
	return Range{Min: lo, Max: r.Max + margin}
}

// Contains reports whether v lies within the inclusive bounds.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DatasetRanges returns the canonical valid-range table: the observed
// extrema of the training dataset. A fresh table is built per call so no
// caller can mutate shared state.
func DatasetRanges() RangeTable {
	return RangeTable{
		domain.FieldCement:           {Min: 102, Max: 540},
		domain.FieldSlag:             {Min: 0, Max: 359},
		domain.FieldFlyAsh:           {Min: 0, Max: 200},
		domain.FieldWater:            {Min: 122, Max: 247},
		domain.FieldSuperplasticizer: {Min: 0, Max: 32},
		domain.FieldCoarseAggregate:  {Min: 801, Max: 1145},
		domain.FieldFineAggregate:    {Min: 594, Max: 993},
		domain.FieldAge:              {Min: 1, Max: 365},
	}
}
