package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/typeflow/cmd/typeflowexplorer/logger"
)

type clearStatusMsg struct{}

// Update handles all messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.ensureCursorVisible()
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.ensureCursorVisible()
		case key.Matches(msg, m.keys.PageUp):
			m.cursor -= m.listViewport.Height
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.ensureCursorVisible()
		case key.Matches(msg, m.keys.PageDown):
			m.cursor += m.listViewport.Height
			if m.cursor > len(m.rows)-1 {
				m.cursor = len(m.rows) - 1
			}
			m.ensureCursorVisible()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyCurrentRow()
		}
		return m, nil

	case statusMsg:
		m.statusMessage = msg.text
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	}

	return m, nil
}

// layout recomputes pane sizes after a terminal resize. Presentation
// bookkeeping only, it never touches the engine.
func (m *Model) layout() {
	headerHeight := 3
	statusHeight := 2
	contentHeight := m.height - headerHeight - statusHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	listWidth := m.width / 2
	detailWidth := m.width - listWidth

	m.listViewport.Width = listWidth
	m.listViewport.Height = contentHeight
	m.detailViewport.Width = detailWidth
	m.detailViewport.Height = contentHeight
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < m.listViewport.YOffset {
		m.listViewport.YOffset = m.cursor
	}
	bottom := m.listViewport.YOffset + m.listViewport.Height - 1
	if m.cursor > bottom {
		m.listViewport.YOffset = m.cursor - m.listViewport.Height + 1
	}
}

// copyCurrentRow copies the selected node's tag and resolved type
// names to the system clipboard, the same keybinding hiveexplorer
// gives its tree view for a key path.
func (m Model) copyCurrentRow() tea.Cmd {
	r, ok := m.currentRow()
	if !ok {
		return nil
	}
	text := fmt.Sprintf("%s: %s", m.debugID(r.node), strings.Join(r.node.TypeNames(), ", "))
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warn("clipboard copy failed", "error", err)
			return statusMsg{text: "copy failed: " + err.Error()}
		}
		return statusMsg{text: "copied to clipboard"}
	}
}

type statusMsg struct{ text string }
