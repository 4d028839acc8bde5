package typeflow

// fakeHierarchy is a minimal in-test Class Hierarchy Oracle: a flat
// map of class name to its ancestor set, plus itself. It is
// deliberately simpler than pkg/hierarchy's production implementation
// so tests can declare exactly the subtype facts they need.
type fakeHierarchy struct {
	known     map[string]bool
	ancestors map[string]map[string]bool // className -> set of names it is-a
}

func newFakeHierarchy() *fakeHierarchy {
	return &fakeHierarchy{
		known:     make(map[string]bool),
		ancestors: make(map[string]map[string]bool),
	}
}

// declare registers className as known and is-a of itself plus every
// name in isA.
func (h *fakeHierarchy) declare(className string, isA ...string) {
	h.known[className] = true
	set := map[string]bool{className: true}
	for _, a := range isA {
		set[a] = true
	}
	h.ancestors[className] = set
}

func (h *fakeHierarchy) IsSubtype(descendantName, ancestorName string) bool {
	set, ok := h.ancestors[descendantName]
	if !ok {
		return false
	}
	return set[ancestorName]
}

func (h *fakeHierarchy) ResolveClass(name string) bool {
	return h.known[name]
}
