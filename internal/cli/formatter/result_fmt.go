package formatter

import (
	"fmt"
	"strings"

	"github.com/dparedes/hormigo/internal/domain"
)

// FormatResult renders one prediction result as the boxed card shown
// after `hormigo predict`.
func FormatResult(r *domain.PredictionResult, warnings []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n",
		Bold(FormatStrength(r.Strength)),
		BandPill(r.Band, r.BandColor)))
	b.WriteString(Dim(r.BandDescription) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %.3f\n", Dim("Relación A/C"), r.WaterCementRatio))
	b.WriteString(fmt.Sprintf("%s  %.1f kg/m³\n", Dim("Total cementicios"), r.CementitiousTotal))
	b.WriteString(fmt.Sprintf("%s  %g días\n", Dim("Edad de ensayo"), r.AgeDays))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Confianza"), FormatPercent(r.Confidence)))

	if len(warnings) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Advertencias:") + "\n")
		for _, w := range warnings {
			b.WriteString(StyleYellow.Render("  ⚠ "+w) + "\n")
		}
	}

	return RenderBox("Predicción", strings.TrimRight(b.String(), "\n"))
}

// FormatViolations renders a blocking validation failure.
func FormatViolations(violations []string) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render("La mezcla no es válida:") + "\n")
	for _, v := range violations {
		b.WriteString(StyleRed.Render("  ✗ "+v) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
