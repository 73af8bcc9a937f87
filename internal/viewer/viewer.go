// Package viewer pages a rendered table in the terminal.
package viewer

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	footerHeight  = 1
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Model scrolls pre-rendered table lines. It never re-renders the table, so
// resizing only changes how much of it is visible.
type Model struct {
	Title   string
	NoColor bool

	lines    []string
	width    int
	height   int
	viewport viewport.Model
}

// New returns a pager over lines sized width by height.
func New(title string, lines []string, width, height int) *Model {
	m := &Model{
		Title: strings.TrimSpace(title),
		lines: lines,
	}
	m.viewport = viewport.New()
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.resize(width, height)
	return m
}

func (m *Model) resize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= footerHeight {
		height = defaultHeight
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(height - footerHeight)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.viewport.View() + "\n" + m.footer())
	v.AltScreen = true
	return v
}

func (m *Model) footer() string {
	parts := make([]string, 0, 3)
	if m.Title != "" {
		parts = append(parts, m.Title)
	}
	parts = append(parts,
		fmt.Sprintf("%d lines  %3.0f%%", len(m.lines), m.viewport.ScrollPercent()*100),
		"q quit",
	)
	text := strings.Join(parts, "  ")
	if m.NoColor {
		return text
	}
	return footerStyle.Render(text)
}

// Run pages lines until the user quits. The terminal size is read from
// stdout, falling back to 80x24.
func Run(title string, lines []string, noColor bool, opts ...tea.ProgramOption) error {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		w, h = defaultWidth, defaultHeight
	}
	m := New(title, lines, w, h)
	m.NoColor = noColor
	opts = append(opts, tea.WithWindowSize(m.width, m.height))

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
