package engine

import (
	"fmt"
	"math"
)

// Band is one NEC strength class over the half-open interval [Lo, Hi).
// The last band has Hi = +Inf.
type Band struct {
	Lo          float64
	Hi          float64
	Label       string
	Color       string // display hex color
	Description string
}

// BandTable is an ordered set of bands covering [0, +Inf) without gaps or
// overlaps.
type BandTable []Band

// Unclassified is the fallback triple for values outside every band.
func Unclassified() Band {
	return Band{Label: "Sin Clasificar", Color: "#6b7280", Description: "Valor fuera de rangos estándar"}
}

// NECBands returns the NEC Ecuador classification table (kg/cm²).
func NECBands() BandTable {
	return BandTable{
		{Lo: 0, Hi: 140, Label: "Baja Resistencia", Color: "#ef4444", Description: "Uso estructural limitado"},
		{Lo: 140, Hi: 280, Label: "Resistencia Normal", Color: "#f97316", Description: "Uso estructural común"},
		{Lo: 280, Hi: 420, Label: "Alta Resistencia", Color: "#22c55e", Description: "Estructuras exigentes"},
		{Lo: 420, Hi: math.Inf(1), Label: "Ultra Alta Resistencia", Color: "#3b82f6", Description: "Estructuras especiales"},
	}
}

// Classify returns the band whose [Lo, Hi) interval contains strength,
// scanning in table order. Values outside every band (negative, or a
// misconfigured table) fall back to the Unclassified triple.
func (t BandTable) Classify(strength float64) Band {
	for _, b := range t {
		if strength >= b.Lo && strength < b.Hi {
			return b
		}
	}
	return Unclassified()
}

// Validate checks the table invariant: bands start at 0, are contiguous
// and ascending, and the last band is unbounded above.
func (t BandTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("band table is empty")
	}
	if t[0].Lo != 0 {
		return fmt.Errorf("first band starts at %g, want 0", t[0].Lo)
	}
	for i, b := range t {
		if b.Hi <= b.Lo {
			return fmt.Errorf("band %q has non-positive width", b.Label)
		}
		if i > 0 && b.Lo != t[i-1].Hi {
			return fmt.Errorf("band %q does not start where %q ends", b.Label, t[i-1].Label)
		}
	}
	if !math.IsInf(t[len(t)-1].Hi, 1) {
		return fmt.Errorf("last band %q is bounded above", t[len(t)-1].Label)
	}
	return nil
}
