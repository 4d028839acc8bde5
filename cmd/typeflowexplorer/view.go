package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI.
func (m Model) View() string {
	if m.showHelp {
		help := newHelpModel()
		return overlay.New(
			help,
			mainViewModel{m},
			overlay.Center,
			overlay.Center,
			0,
			0,
		).View()
	}

	header := m.renderHeader()
	content := m.renderContent()
	status := m.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

func (m Model) renderHeader() string {
	title := "Type-Flow Graph Explorer"
	return headerStyle.Render(fmt.Sprintf("%s  %s", title, pathStyle.Render(m.graphPath)))
}

func (m Model) renderContent() string {
	list := m.renderList()
	detail := m.renderDetail()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		activePaneStyle.Width(m.listViewport.Width).Height(m.listViewport.Height).Render(list),
		paneStyle.Width(m.detailViewport.Width).Height(m.detailViewport.Height).Render(detail),
	)
}

func (m Model) renderList() string {
	var b strings.Builder
	start := m.listViewport.YOffset
	end := start + m.listViewport.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := start; i < end; i++ {
		r := m.rows[i]
		indent := strings.Repeat("  ", r.depth)
		line := fmt.Sprintf("%s%s (%d types, degree %d)", indent, r.label, r.node.Size(), r.node.Degree())
		if r.depth > 0 {
			line = satelliteStyle.Render(line)
		}
		if i == m.cursor {
			line = nodeSelectedStyle.Render(fmt.Sprintf("%s%s (%d types, degree %d)", indent, r.label, r.node.Size(), r.node.Degree()))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetail() string {
	r, ok := m.currentRow()
	if !ok {
		return "(no node selected)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Node: %s\n", m.debugID(r.node))
	fmt.Fprintf(&b, "Handle: #%d   Degree: %d\n", r.node.Handle(), r.node.Degree())
	fmt.Fprintf(&b, "Forward edges: %d\n\n", r.node.ForwardCount())

	names := r.node.TypeNames()
	fmt.Fprintf(&b, "Resolved types (%d):\n", len(names))
	for _, name := range names {
		b.WriteString(typeNameStyle.Render("  " + name))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	msg := m.statusMessage
	if msg == "" {
		msg = "?: help   c: copy   q: quit"
	}
	return statusStyle.Render(msg)
}

// mainViewModel adapts Model to the background side of an overlay:
// it exists purely to give the already-rendered main UI a tea.Model
// implementation, since overlay.New composes two tea.Models rather
// than two raw strings. All real updates still flow through Model's
// own Update.
type mainViewModel struct{ m Model }

func (v mainViewModel) Init() tea.Cmd { return nil }

func (v mainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v mainViewModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, v.m.renderHeader(), v.m.renderContent(), v.m.renderStatus())
}
