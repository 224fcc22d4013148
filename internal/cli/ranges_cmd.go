package cli

import (
	"fmt"

	"github.com/dparedes/hormigo/internal/cli/formatter"
	"github.com/dparedes/hormigo/internal/domain"
	"github.com/spf13/cobra"
)

func newRangesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "Show the valid input range for each mix variable",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"VARIABLE", "MIN", "MAX", "UNIDAD"}
			var rows [][]string
			for _, fr := range app.Predictions.Ranges() {
				rows = append(rows, []string{
					domain.DisplayName(fr.Field),
					fmt.Sprintf("%g", fr.Range.Min),
					fmt.Sprintf("%g", fr.Range.Max),
					domain.Unit(fr.Field),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows, 1, 2))
			return nil
		},
	}
}
