package cli

import (
	"github.com/dparedes/hormigo/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces the CLI commands run against.
type App struct {
	Predictions service.PredictionService
	History     service.HistoryService

	// IsInteractive reports whether stdin is a terminal, enabling the
	// input form when predict is run without flags.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "hormigo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hormigo",
		Short: "Concrete compressive strength predictor (NEC Ecuador)",
	}

	root.AddCommand(
		newPredictCmd(app),
		newPresetsCmd(app),
		newInfoCmd(app),
		newRangesCmd(app),
		newHistoryCmd(app),
	)

	return root
}
