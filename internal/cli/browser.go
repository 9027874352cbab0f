package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/admissions/internal/cli/formatter"
	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/ranker"
	"github.com/alexanderramin/admissions/internal/roster"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the number of lines the browser draws around the table.
const chromeHeight = 9

type browserKeys struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultBrowserKeys() browserKeys {
	return browserKeys{
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next dept")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev dept")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browserModel shows one department's roster at a time and re-renders the
// table whenever the selected department changes.
type browserModel struct {
	dir    roster.Directory
	depts  []domain.Department
	labels formatter.Labels
	keys   browserKeys

	selected   int
	candidates []domain.Candidate
	table      table.Model
	quitting   bool
}

func newBrowserModel(dir roster.Directory, labels formatter.Labels) *browserModel {
	m := &browserModel{
		dir:    dir,
		depts:  dir.Departments(),
		labels: labels,
		keys:   defaultBrowserKeys(),
		table: table.New(
			table.WithFocused(true),
			table.WithHeight(20),
		),
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(formatter.ColorDim)
	m.table.SetStyles(styles)
	m.load()
	return m
}

func (m *browserModel) Init() tea.Cmd { return nil }

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *browserModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.depts) == 0 {
		return formatter.Dim("No departments configured.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	b.WriteString(formatter.Header(m.current().Name))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatSummary(ranker.Summarize(m.candidates), m.labels))
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	b.WriteString("\n")
	return b.String()
}

func (m *browserModel) current() domain.Department {
	return m.depts[m.selected]
}

// move cycles the selected department by delta, wrapping at both ends.
func (m *browserModel) move(delta int) {
	if len(m.depts) == 0 {
		return
	}
	n := len(m.depts)
	m.selected = ((m.selected+delta)%n + n) % n
	m.load()
}

// selectCode makes the department with the given code current.
func (m *browserModel) selectCode(code string) error {
	code = domain.NormalizeCode(code)
	for i, d := range m.depts {
		if d.Code == code {
			m.selected = i
			m.load()
			return nil
		}
	}
	return fmt.Errorf("%w %q", roster.ErrUnknownDepartment, code)
}

func (m *browserModel) load() {
	if len(m.depts) == 0 {
		return
	}
	entry, _ := m.dir.Lookup(m.current().Code)
	m.candidates = entry.Candidates

	rows := make([]table.Row, 0, len(m.candidates))
	plain := make([][]string, 0, len(m.candidates))
	for _, c := range m.candidates {
		cells := m.labels.RosterRow(c)
		plain = append(plain, cells)
		rows = append(rows, table.Row(cells))
	}

	headers := m.labels.RosterHeaders()
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		w := lipgloss.Width(h)
		for _, r := range plain {
			w = max(w, lipgloss.Width(r[i]))
		}
		cols[i] = table.Column{Title: h, Width: w}
	}

	// Columns must be replaced before rows so cells index within range.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *browserModel) tabs() string {
	parts := make([]string, 0, len(m.depts))
	for i, d := range m.depts {
		if i == m.selected {
			parts = append(parts, formatter.StyleHeader.Render("["+d.Code+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+d.Code+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *browserModel) helpLine() string {
	bindings := []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Quit}
	parts := make([]string, 0, len(bindings)+1)
	parts = append(parts, "↑/↓ move")
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, " • "))
}
