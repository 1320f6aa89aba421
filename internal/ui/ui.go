// Package ui is the interactive paste surface: a textarea the user pastes
// the messy table into, and a result view that replaces it once the input
// is reconciled. The engine stays behind its string-in/string-out
// interface; this package only hosts it.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zoneremap/internal/detect"
	"zoneremap/internal/engine"
)

type mode int

const (
	modeEdit   mode = iota // Textarea focused, waiting for a paste.
	modeResult             // Showing reconciled rows.
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resultStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// warnCollector buffers detection warnings for the status bar.
type warnCollector struct {
	warnings []string
}

func (c *warnCollector) LengthMismatch(contracts, oldZones, newZones int) {
	c.warnings = append(c.warnings,
		fmt.Sprintf("column lengths differ (contracts %d, old %d, new %d); extra entries dropped",
			contracts, oldZones, newZones))
}

// Model is the Bubble Tea model for the paste surface.
type Model struct {
	eng    *engine.Engine
	input  textarea.Model
	result viewport.Model

	mode     mode
	status   string
	warnings []string
	failed   bool

	width  int
	height int
}

// New returns a paste surface bound to eng.
func New(eng *engine.Engine) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste the contract/zone remap table here..."
	ta.CharLimit = 0
	ta.Focus()

	return Model{
		eng:    eng,
		input:  ta,
		result: viewport.New(0, 0),
		status: "waiting for input",
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		frame := 6 // title + status + help + borders
		m.input.SetWidth(msg.Width - 2)
		m.input.SetHeight(msg.Height - frame)
		m.result.Width = msg.Width - 4
		m.result.Height = msg.Height - frame
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			if m.mode == modeEdit {
				m.reconcile()
				return m, nil
			}
		case "esc":
			if m.mode == modeResult {
				m.mode = modeEdit
				m.input.Focus()
				return m, textarea.Blink
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	if m.mode == modeEdit {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.result, cmd = m.result.Update(msg)
	}
	return m, cmd
}

// reconcile runs the engine over the current paste and switches to the
// result view on success. Warnings and the terminal failure land in the
// status bar; the paste is kept so the user can fix it.
func (m *Model) reconcile() {
	sink := &warnCollector{}
	eng := &engine.Engine{Delimiter: m.eng.Delimiter, Sink: sink}

	res, err := eng.Run(m.input.Value())
	m.warnings = sink.warnings
	if err != nil {
		m.failed = true
		m.status = "no valid rows recognized in the pasted text"
		return
	}

	m.failed = false
	m.status = fmt.Sprintf("%d rows reconciled (%s)", len(res.Rows), res.Strategy)
	m.result.SetContent(renderRows(res.Rows))
	m.mode = modeResult
	m.input.Blur()
}

// renderRows lays the rows out as an aligned table for display. The
// canonical tab-delimited form is what the engine emits; this is
// presentation only.
func renderRows(rows []detect.Row) string {
	wc, wo := 0, 0
	for _, r := range rows {
		if len(r.Contract) > wc {
			wc = len(r.Contract)
		}
		if len(r.ZoneOld) > wo {
			wo = len(r.ZoneOld)
		}
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-*s  %-*s  %s\n", wc, r.Contract, wo, r.ZoneOld, r.ZoneNew)
	}
	return b.String()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("zoneremap — paste surface"))
	b.WriteString("\n")

	if m.mode == modeEdit {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(resultStyle.Render(m.result.View()))
	}
	b.WriteString("\n")

	switch {
	case m.failed:
		b.WriteString(errStyle.Render(m.status))
	default:
		b.WriteString(okStyle.Render(m.status))
	}
	b.WriteString("\n")
	for _, w := range m.warnings {
		b.WriteString(warnStyle.Render("warning: " + w))
		b.WriteString("\n")
	}

	if m.mode == modeEdit {
		b.WriteString(helpStyle.Render("ctrl+r reconcile · esc quit"))
	} else {
		b.WriteString(helpStyle.Render("esc edit again · ctrl+c quit"))
	}
	return b.String()
}
