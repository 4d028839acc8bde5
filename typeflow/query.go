package typeflow

import "sort"

// HasType reports whether t is currently a member of this node's
// authoritative type set.
func (n Node) HasType(t Type) bool {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return n.state().types.contains(t.Index())
}

// HasTypeNamed reports whether a type named name is a member of this
// node's set. An unknown name reports "not present" rather than an
// error.
func (n Node) HasTypeNamed(name string) bool {
	t, ok := n.eng.reg.Lookup(name)
	if !ok {
		return false
	}
	return n.HasType(t)
}

// Types returns the node's resolved type set as Types, already
// filtered by the node's own upper bound since no other type could
// ever have been admitted. Order is ascending by registry index for
// the dense representation and insertion order for the small
// representation; callers that need a stable order should sort the
// result themselves.
func (n Node) Types() []Type {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return n.snapshotTypes(n.state())
}

// TypeNames is a convenience wrapper over Types returning sorted
// names, handy for deterministic CLI and test output.
func (n Node) TypeNames() []string {
	ts := n.Types()
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name()
	}
	sort.Strings(names)
	return names
}

// Size returns the number of types currently in the node's
// authoritative set.
func (n Node) Size() int {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return n.state().types.size()
}

// HasArrayItem reports whether ArrayItem has ever been materialised
// for this node, without creating it (unlike ArrayItem). Unlike
// HasArrayType, it does not require the satellite to hold any type.
func (n Node) HasArrayItem() bool {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return n.state().arrayItem != noIndex
}

// HasClassValue reports whether ClassValue has ever been materialised
// for this node, without creating it.
func (n Node) HasClassValue() bool {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return n.state().classValue != noIndex
}

// ForwardCount returns the number of outgoing transitions registered
// on this node.
func (n Node) ForwardCount() int {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return len(n.state().forward)
}

// ForwardTargets returns the destination handle of every outgoing
// transition, for diagnostics (e.g. a dot export).
func (n Node) ForwardTargets() []Node {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()
	st := n.state()
	out := make([]Node, len(st.forward))
	for i, tr := range st.forward {
		out[i] = tr.destination
	}
	return out
}

// Stats summarises an Engine's graph for diagnostics (backs the
// engine-level totals printed by the typeflowctl "build" subcommand,
// mirroring hivectl's stats command for a hive).
type Stats struct {
	RegistrySize    int
	NodeCount       int
	TransitionCount int
	Locked          bool
}

// Stats computes summary statistics over the current graph.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	transitions := 0
	for _, st := range e.arena {
		transitions += len(st.forward)
	}

	return Stats{
		RegistrySize:    e.reg.Size(),
		NodeCount:       len(e.arena),
		TransitionCount: transitions,
		Locked:          e.locked,
	}
}
