package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpModel is the foreground side of the help overlay.
type helpModel struct{}

func newHelpModel() helpModel { return helpModel{} }

func (helpModel) Init() tea.Cmd { return nil }

func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (helpModel) View() string {
	const keyWidth = 12

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	rows := []struct{ key, desc string }{
		{"↑/↓ or k/j", "move selection"},
		{"PgUp/PgDn", "page the node list"},
		{"c", "copy node tag and resolved types"},
		{"?", "toggle this help"},
		{"esc", "close this help"},
		{"q", "quit"},
	}
	for _, r := range rows {
		b.WriteString(helpKeyStyle.Width(keyWidth).Render(r.key))
		b.WriteString("  ")
		b.WriteString(r.desc)
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Render(b.String())
}
