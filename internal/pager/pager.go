// Package pager scrolls a rendered listing inside the terminal.
package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Show pages content in an alternate-screen viewport until the user quits
// with q, esc or ctrl+c. title is shown above the content.
func Show(title, content string) error {
	program := tea.NewProgram(newModel(title, content), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

type model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newModel(title, content string) model {
	vp := viewport.New(0, 0)
	vp.SetContent(content)
	return model{title: title, content: content, viewport: vp}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2 // title and footer rows
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
		m.ready = true
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return ""
	}
	footer := footerStyle.Render(fmt.Sprintf("%3.f%% — q to quit", m.viewport.ScrollPercent()*100))
	return strings.Join([]string{titleStyle.Render(m.title), m.viewport.View(), footer}, "\n")
}
