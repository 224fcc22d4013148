package formatter

import (
	"fmt"
	"strings"

	"github.com/dparedes/hormigo/internal/service"
)

// FormatSummary renders the model information card.
func FormatSummary(s service.ModelSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s v%s\n", Dim("Modelo"), Bold(s.Type), s.Version))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Dim("Entrenado"), s.TrainedAt))
	b.WriteString(fmt.Sprintf("%s  %.4f\n", Dim("R² score"), s.R2Score))
	b.WriteString(fmt.Sprintf("%s  %.2f kg/cm²\n", Dim("MAE"), s.MAE))
	b.WriteString(fmt.Sprintf("%s  %.4f ± %.4f\n", Dim("CV score"), s.CVScoreMean, s.Stability))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Dim("Confianza"), FormatPercent(s.Confidence)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Variables"), strings.Join(s.InputFields, ", ")))
	b.WriteString(fmt.Sprintf("%s  %s", Dim("Salida"), s.OutputField))
	return RenderBox("Modelo", b.String())
}

// FormatImportances renders the per-feature weight table, highest first.
func FormatImportances(imps []service.FeatureImportance) string {
	if len(imps) == 0 {
		return Dim("El modelo no registra importancia de variables.")
	}
	rows := make([][]string, 0, len(imps))
	for _, imp := range imps {
		rows = append(rows, []string{
			imp.DisplayName,
			fmt.Sprintf("%.4f", imp.Weight),
			importanceBar(imp.Weight),
		})
	}
	return RenderTable([]string{"VARIABLE", "PESO", ""}, rows, 1)
}

// importanceBar draws a proportional bar so relative weights are visible
// at a glance.
func importanceBar(weight float64) string {
	const scale = 40
	n := int(weight * scale)
	if n < 0 {
		n = 0
	}
	if n > scale {
		n = scale
	}
	return StyleGreen.Render(strings.Repeat("█", n))
}
