package cli

import (
	"fmt"

	"github.com/dparedes/hormigo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show model information and feature importances",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.FormatSummary(app.Predictions.Summary()))
			fmt.Println(formatter.Header("Importancia de variables"))
			fmt.Print(formatter.FormatImportances(app.Predictions.Importances()))
			return nil
		},
	}
}
