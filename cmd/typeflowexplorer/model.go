package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/typeflow/pkg/graphfile"
	"github.com/joshuapare/typeflow/typeflow"
)

// row is one line of the node list: either a top-level node declared
// in the graph file, or an array-item / class-value satellite
// materialised underneath it. Satellites are
// only ever listed if they have already been materialised — browsing
// the graph must never create new nodes as a side effect.
type row struct {
	label string
	node  typeflow.Node
	depth int
}

// Model is the typeflowexplorer TUI model: a flat, indented node list
// on the left and the selected node's resolved type set on the right.
type Model struct {
	graphPath string
	graph     *graphfile.Graph
	rows      []row
	cursor    int

	listViewport   viewport.Model
	detailViewport viewport.Model

	keys KeyMap

	width, height int
	showHelp      bool
	statusMessage string
}

// NewModel builds a Model from an already-loaded graph.
func NewModel(graphPath string, g *graphfile.Graph) Model {
	return Model{
		graphPath:      graphPath,
		graph:          g,
		rows:           buildRows(g),
		listViewport:   viewport.New(0, 0),
		detailViewport: viewport.New(0, 0),
		keys:           DefaultKeyMap(),
	}
}

// buildRows flattens the graph's nodes, in declaration order, into
// the rows the list pane renders: each top-level node followed by
// whichever of its satellites already exist.
func buildRows(g *graphfile.Graph) []row {
	var rows []row
	for _, id := range g.NodeOrder {
		n := g.Nodes[id]
		label := n.Tag()
		if label == "" {
			label = id
		}
		rows = append(rows, row{label: label, node: n, depth: 0})

		if n.HasArrayItem() {
			item := n.ArrayItem() // already materialised: returns the cached handle, creates nothing
			rows = append(rows, row{label: item.Tag(), node: item, depth: 1})
		}
		if n.HasClassValue() {
			cv := n.ClassValue()
			rows = append(rows, row{label: cv.Tag(), node: cv, depth: 1})
		}
	}
	return rows
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) debugID(n typeflow.Node) string {
	if tag := n.Tag(); tag != "" {
		return tag
	}
	return fmt.Sprintf("#%d", n.Handle())
}
