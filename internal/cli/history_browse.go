package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dparedes/hormigo/internal/cli/formatter"
	"github.com/dparedes/hormigo/internal/domain"
)

// historyBrowseModel is the interactive history browser: a table of
// predictions with a per-row detail pane toggled by Enter.
type historyBrowseModel struct {
	results    []*domain.PredictionResult
	table      table.Model
	showDetail bool
	width      int
	height     int
}

func newHistoryBrowseModel(results []*domain.PredictionResult) historyBrowseModel {
	columns := []table.Column{
		{Title: "Fecha", Width: 17},
		{Title: "Resistencia", Width: 15},
		{Title: "A/C", Width: 6},
		{Title: "Clase NEC", Width: 24},
		{Title: "Conf", Width: 6},
	}

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			formatter.FormatStrength(r.Strength),
			fmt.Sprintf("%.3f", r.WaterCementRatio),
			r.Band,
			formatter.FormatPercent(r.Confidence),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(formatter.ColorHeader).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(lipgloss.Color("#3c3836")).
		Bold(true)
	t.SetStyles(styles)

	return historyBrowseModel{results: results, table: t}
}

func (m historyBrowseModel) Init() tea.Cmd {
	return nil
}

func (m historyBrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.showDetail = true
			return m, nil
		case "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			return m, tea.Quit
		}
	}

	if m.showDetail {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m historyBrowseModel) View() string {
	if m.showDetail {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Historial de predicciones") + "\n\n")
	b.WriteString(m.table.View() + "\n\n")
	b.WriteString(formatter.Dim("enter: detalle  ·  esc/q: salir"))
	return b.String()
}

// detailView renders the selected prediction: the full mix plus the
// derived results, in the same card layout as the predict command.
func (m historyBrowseModel) detailView() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.results) {
		return formatter.Dim("nothing selected")
	}
	r := m.results[idx]

	var b strings.Builder
	b.WriteString(formatter.FormatResult(r, nil) + "\n\n")

	headers := []string{"VARIABLE", "VALOR"}
	rows := make([][]string, 0, 8)
	for _, field := range []string{
		domain.FieldCement, domain.FieldSlag, domain.FieldFlyAsh, domain.FieldWater,
		domain.FieldSuperplasticizer, domain.FieldCoarseAggregate, domain.FieldFineAggregate,
		domain.FieldAge,
	} {
		v, _ := r.Mix.Value(field)
		rows = append(rows, []string{
			domain.DisplayName(field),
			formatter.FormatQuantity(v, domain.Unit(field)),
		})
	}
	b.WriteString(formatter.RenderTable(headers, rows, 1) + "\n")
	b.WriteString(formatter.Dim("esc: volver  ·  q: salir"))
	return b.String()
}
