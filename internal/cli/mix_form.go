package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dparedes/hormigo/internal/cli/formatter"
	"github.com/dparedes/hormigo/internal/domain"
	"github.com/dparedes/hormigo/internal/service"
)

// hormigoHuhTheme styles huh forms with the formatter palette.
func hormigoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateQuantity accepts a non-negative decimal number.
func validateQuantity(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// quantityInput builds one form field for a mix quantity, showing the
// valid range as the description.
func quantityInput(field string, r *service.FieldRange, value *string) *huh.Input {
	title := fmt.Sprintf("%s (%s)", domain.DisplayName(field), domain.Unit(field))
	input := huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateQuantity)
	if r != nil {
		input = input.Description(fmt.Sprintf("Rango válido: %g – %g", r.Range.Min, r.Range.Max))
	}
	return input
}

// runMixForm collects the eight mix quantities interactively, pre-filled
// from initial. Returns nil when the user aborts.
func runMixForm(app *App, initial domain.MixDesign) (*domain.MixDesign, error) {
	ranges := make(map[string]service.FieldRange)
	order := make([]string, 0, len(mixFlags))
	for _, fr := range app.Predictions.Ranges() {
		ranges[fr.Field] = fr
		order = append(order, fr.Field)
	}

	values := make(map[string]*string, len(order))
	fields := make([]huh.Field, 0, len(order))
	for _, field := range order {
		v, _ := initial.Value(field)
		s := strconv.FormatFloat(v, 'f', -1, 64)
		values[field] = &s

		fr := ranges[field]
		fields = append(fields, quantityInput(field, &fr, values[field]))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(hormigoHuhTheme()).
		WithShowHelp(false)

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return nil, nil
		}
		return nil, fmt.Errorf("collecting mix design: %w", err)
	}

	var mix domain.MixDesign
	for field, s := range values {
		v, err := strconv.ParseFloat(*s, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", field, err)
		}
		mix.SetValue(field, v)
	}
	return &mix, nil
}
