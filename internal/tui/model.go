package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"morphembed/internal/accumulator"
	"morphembed/internal/domain"
)

// PipelinePort is the TUI-facing subset of the pipeline service.
type PipelinePort interface {
	Lookup(word string) (domain.WordReport, []accumulator.Row)
	Rows() []accumulator.Row
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  PipelinePort
	input    textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	ready    bool
}

// New creates a new TUI model instance.
func New(service PipelinePort, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a word and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{service: service, input: ti, viewport: vp, summary: summary, status: "Loaded. Type a word to inspect its morphemes."}
	m.viewport.SetContent(renderTable(service.Rows()))
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // header + summary
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			word := strings.TrimSpace(m.input.Value())
			if word == "" {
				m.status = "Full morpheme embedding table."
				m.viewport.SetContent(renderTable(m.service.Rows()))
				return m, nil
			}
			report, rows := m.service.Lookup(word)
			m.status = fmt.Sprintf("Breakdown for %q", word)
			m.viewport.SetContent(renderReport(report, rows))
			m.viewport.GotoTop()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Morpheme Embeddings")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + results + "\n" + input + "\n" + status
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	morphemeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderReport(report domain.WordReport, rows []accumulator.Row) string {
	switch report.Status {
	case domain.ReportUnmatched:
		return fmt.Sprintf("%s: no entry available in the bundled lexicon.", report.Word)
	case domain.ReportUnsegmentable:
		return fmt.Sprintf("%s: no morphemic chunks produced by the segmenter.", report.Word)
	}

	parts := make([]string, len(report.Morphemes))
	for i, mor := range report.Morphemes {
		parts[i] = morphemeStyle.Render(mor.String())
	}
	var b strings.Builder
	b.WriteString(report.Word + ": " + strings.Join(parts, " + "))
	b.WriteString("\n" + dimStyle.Render("definition: "+report.Definition) + "\n")
	if len(rows) > 0 {
		b.WriteString("\nCurrent morpheme means:\n")
		for _, row := range rows {
			b.WriteString("  " + formatRow(row) + "\n")
		}
	}
	return b.String()
}

func renderTable(rows []accumulator.Row) string {
	if len(rows) == 0 {
		return "No morphemes accumulated yet."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Derived morpheme embedding matrix (%d morphemes):\n", len(rows)))
	for _, row := range rows {
		b.WriteString("  " + formatRow(row) + "\n")
	}
	return b.String()
}

func formatRow(row accumulator.Row) string {
	vals := make([]string, len(row.Mean))
	for i, v := range row.Mean {
		vals[i] = fmt.Sprintf("%.3f", v)
	}
	return fmt.Sprintf("%-22s -> [%s]", row.Key.String(), strings.Join(vals, ", "))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
