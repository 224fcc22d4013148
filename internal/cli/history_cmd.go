package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dparedes/hormigo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and export the prediction history",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryBrowseCmd(app),
		newHistoryClearCmd(app),
		newHistoryExportCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.History.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("No predictions recorded yet.")
				return nil
			}

			headers := []string{"ID", "FECHA", "RESISTENCIA", "A/C", "CLASE NEC", "CONF"}
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					formatter.TruncID(r.ID),
					formatter.HumanTimestamp(r.CreatedAt),
					formatter.FormatStrength(r.Strength),
					fmt.Sprintf("%.3f", r.WaterCementRatio),
					formatter.BandPill(r.Band, r.BandColor),
					formatter.FormatPercent(r.Confidence),
				})
			}

			fmt.Print(formatter.RenderBox("Historial", formatter.RenderTable(headers, rows, 2, 3, 5)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of predictions to show (0 for all)")
	return cmd
}

func newHistoryBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the history interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := app.History.List(context.Background(), 0)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("No predictions recorded yet.")
				return nil
			}

			m := newHistoryBrowseModel(results)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

func newHistoryClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !promptYesNo("Delete the entire prediction history? [y/N] ") {
				fmt.Println("Aborted.")
				return nil
			}
			n, err := app.History.Clear(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Removed %d prediction(s).\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the history to a timestamped CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.History.Export(context.Background(), dir)
			if err != nil {
				return err
			}
			fmt.Printf("Exported history to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory for the export file")
	return cmd
}
