package cli

import (
	"fmt"

	"github.com/dparedes/hormigo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPresetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the reference mix presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := app.Predictions.Presets()

			headers := []string{"PRESET", "CEMENTO", "ESCORIA", "CENIZA", "AGUA", "SP", "GRUESO", "FINO", "EDAD"}
			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				rows = append(rows, []string{
					p.Name,
					fmt.Sprintf("%g", p.Mix.Cement),
					fmt.Sprintf("%g", p.Mix.Slag),
					fmt.Sprintf("%g", p.Mix.FlyAsh),
					fmt.Sprintf("%g", p.Mix.Water),
					fmt.Sprintf("%g", p.Mix.Superplasticizer),
					fmt.Sprintf("%g", p.Mix.CoarseAggregate),
					fmt.Sprintf("%g", p.Mix.FineAggregate),
					fmt.Sprintf("%g", p.Mix.AgeDays),
				})
			}

			fmt.Print(formatter.RenderTable(headers, rows, 1, 2, 3, 4, 5, 6, 7, 8))
			fmt.Println(formatter.Dim("\nUse 'hormigo predict --preset \"<name>\"' to predict from a preset."))
			return nil
		},
	}
}
