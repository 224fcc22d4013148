package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dparedes/hormigo/internal/cli/formatter"
	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/engine"
	"github.com/spf13/cobra"
)

// mixFlag binds one mix-design field to a CLI flag.
type mixFlag struct {
	name  string
	field string
	usage string
}

var mixFlags = []mixFlag{
	{"cement", domain.FieldCement, "Cement (kg/m³)"},
	{"slag", domain.FieldSlag, "Blast-furnace slag (kg/m³)"},
	{"fly-ash", domain.FieldFlyAsh, "Fly ash (kg/m³)"},
	{"water", domain.FieldWater, "Water (kg/m³)"},
	{"superplasticizer", domain.FieldSuperplasticizer, "Superplasticizer (kg/m³)"},
	{"coarse", domain.FieldCoarseAggregate, "Coarse aggregate (kg/m³)"},
	{"fine", domain.FieldFineAggregate, "Fine aggregate (kg/m³)"},
	{"age", domain.FieldAge, "Curing age (days)"},
}

func newPredictCmd(app *App) *cobra.Command {
	var presetName string
	var strict bool
	values := make(map[string]*float64, len(mixFlags))

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict compressive strength for a mix design",
		Long: `Predict compressive strength for a mix design.

With no mix flags on a terminal, an interactive form collects the eight
quantities. A preset can pre-fill the form or serve as the base for
individual flag overrides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			mix := engine.DefaultMix()
			if presetName != "" {
				m, ok := engine.PresetByName(presetName)
				if !ok {
					return fmt.Errorf("unknown preset %q (see 'hormigo presets')", presetName)
				}
				mix = m
			}

			anyFlag := false
			for _, f := range mixFlags {
				if cmd.Flags().Changed(f.name) {
					anyFlag = true
					mix.SetValue(f.field, *values[f.name])
				}
			}

			// No mix flags and a terminal: collect the mix interactively.
			if !anyFlag && presetName == "" && app.interactive() {
				collected, err := runMixForm(app, mix)
				if err != nil {
					return err
				}
				if collected == nil {
					return nil // user aborted the form
				}
				mix = *collected
			}

			if strict {
				// Strict mode validates against the raw ranges, whatever
				// policy the engine was configured with.
				validation := app.Predictions.ValidateWith(ctx, mix, domain.PolicyStrict)
				if len(validation.Violations) > 0 {
					fmt.Println(formatter.FormatViolations(validation.Violations))
					return fmt.Errorf("mix rejected under strict validation")
				}
			}

			outcome, err := app.Predictions.Predict(ctx, mix)
			if err != nil {
				var vErr *engine.ValidationError
				if errors.As(err, &vErr) {
					fmt.Println(formatter.FormatViolations(vErr.Violations))
					return fmt.Errorf("mix rejected")
				}
				return err
			}

			fmt.Println(formatter.FormatResult(outcome.Result, outcome.Warnings))
			return nil
		},
	}

	for _, f := range mixFlags {
		values[f.name] = cmd.Flags().Float64(f.name, 0, f.usage)
	}
	cmd.Flags().StringVar(&presetName, "preset", "", "Start from a named preset mix")
	cmd.Flags().BoolVar(&strict, "strict", false, "Block the prediction on any range violation")

	return cmd
}
