package typeflow

import (
	"fmt"
	"strings"
)

// Dot renders the graph as Graphviz source: one node per arena entry,
// labelled with its tag (falling back to its handle) and resolved type
// count, and one edge per transition. A supplemental read-only query
// operation giving later compilation phases, and the typeflowctl "dot"
// subcommand, a way to inspect the graph without a debugger.
func (e *Engine) Dot() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var b strings.Builder
	b.WriteString("digraph typeflow {\n")
	for i, st := range e.arena {
		label := st.tag
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		fmt.Fprintf(&b, "  n%d [label=%q];\n", i, fmt.Sprintf("%s (%d types)", label, st.types.size()))
	}
	for i, st := range e.arena {
		for _, tr := range st.forward {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", i, tr.destination.idx)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
