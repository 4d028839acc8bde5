// Package hierarchy provides an in-memory Class Hierarchy Oracle, a
// concrete typeflow.Hierarchy an embedder can build directly from a
// class file's superclass and implemented-interface names without
// standing up its own lookup service.
package hierarchy

import "sync"

// classDecl records one class's direct supertype and implemented
// interfaces, the facts a bytecode class file carries. Everything else
// (the full transitive ancestor set) is derived on demand.
type classDecl struct {
	super      string
	interfaces []string
}

// Hierarchy is a mutable class hierarchy, built up one Declare call at
// a time and then queried by a typeflow.Engine for the remainder of
// an analysis. Declare and the query methods may be called from
// different goroutines; construction is still expected to finish
// before Propagate starts consulting it, since typeflow.Hierarchy
// implementations must stay stable for the duration of an analysis
// run.
type Hierarchy struct {
	mu    sync.RWMutex
	byCls map[string]classDecl

	// ancestors memoises the transitive is-a closure per class name,
	// the same lazy-and-cached shape as typeflow's own filter cache.
	ancestors map[string]map[string]bool
}

// New returns an empty Hierarchy.
func New() *Hierarchy {
	return &Hierarchy{
		byCls:     make(map[string]classDecl),
		ancestors: make(map[string]map[string]bool),
	}
}

// Declare registers className with its direct superclass (empty for
// java.lang.Object-equivalent roots) and the interfaces it directly
// implements. Declaring the same class twice overwrites the previous
// declaration and invalidates any cached closures, since a later
// Declare may change what an earlier IsSubtype answer depended on.
func (h *Hierarchy) Declare(className, super string, interfaces ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.byCls[className] = classDecl{super: super, interfaces: interfaces}
	// A new declaration can affect className's own closure and the
	// closure of every class that reaches className through its
	// superclass chain or interfaces; clearing the whole cache is
	// simpler than tracking those reverse-dependencies and
	// Declare is only expected to run during the construction phase,
	// before the engine starts querying.
	h.ancestors = make(map[string]map[string]bool)
}

// ResolveClass reports whether className has been declared.
func (h *Hierarchy) ResolveClass(className string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.byCls[className]
	return ok
}

// IsSubtype reports whether descendantName is ancestorName or a
// transitive subclass/implementor of it. An undeclared descendant
// answers false for every ancestor except itself.
func (h *Hierarchy) IsSubtype(descendantName, ancestorName string) bool {
	if descendantName == ancestorName {
		return true
	}
	return h.closureOf(descendantName)[ancestorName]
}

// closureOf returns (and caches) the full transitive is-a set for
// className, computed by walking the superclass chain and every
// implemented interface's own closure.
func (h *Hierarchy) closureOf(className string) map[string]bool {
	h.mu.RLock()
	if set, ok := h.ancestors[className]; ok {
		h.mu.RUnlock()
		return set
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()

	// Re-check: another goroutine may have computed it while we
	// waited for the write lock.
	if set, ok := h.ancestors[className]; ok {
		return set
	}

	set := h.computeClosureLocked(className, make(map[string]bool))
	h.ancestors[className] = set
	return set
}

// computeClosureLocked walks decl's superclass chain and interfaces,
// guarding against a cyclic declaration (malformed input) with
// visiting. Caller must hold h.mu for writing.
func (h *Hierarchy) computeClosureLocked(className string, visiting map[string]bool) map[string]bool {
	set := map[string]bool{className: true}
	if visiting[className] {
		return set
	}
	visiting[className] = true

	decl, ok := h.byCls[className]
	if !ok {
		return set
	}

	if decl.super != "" {
		for name := range h.computeClosureLocked(decl.super, visiting) {
			set[name] = true
		}
	}
	for _, iface := range decl.interfaces {
		for name := range h.computeClosureLocked(iface, visiting) {
			set[name] = true
		}
	}
	return set
}
