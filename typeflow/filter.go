package typeflow

import "sync"

// Hierarchy is the class hierarchy oracle the engine consumes.
// Implementations must be stable for the duration of an analysis run:
// once an answer is given for a (descendant, ancestor) pair it must
// not change.
type Hierarchy interface {
	// IsSubtype reports whether descendantName is ancestorName, a
	// subclass of it, or an implementor of it.
	IsSubtype(descendantName, ancestorName string) bool

	// ResolveClass reports whether name denotes a class known to the
	// hierarchy. A false result causes the filter built from name to
	// demote to the universal (accept-all) bound rather than fail the
	// analysis.
	ResolveClass(name string) bool
}

// predicate is a pure, cacheable test over Type indices.
type predicate func(reg *Registry, t Type) bool

func universalPredicate(*Registry, Type) bool { return true }

// filterCache memoises, per declared class name, a predicate testing
// subtype membership. Predicates are pure and shared
// across every node declaring the same bound, mirroring how
// hive/index caches per-key lookups rather than recomputing per
// caller.
type filterCache struct {
	hierarchy Hierarchy
	diag      Diagnostics

	mu    sync.Mutex
	byCls map[string]predicate
}

func newFilterCache(h Hierarchy, diag Diagnostics) *filterCache {
	if diag == nil {
		diag = noopDiagnostics{}
	}
	return &filterCache{
		hierarchy: h,
		diag:      diag,
		byCls:     make(map[string]predicate),
	}
}

// predicateFor returns the (lazily built, memoised) predicate for
// bound. Construction happens on first use; the same
// function value is returned to every caller asking about the same
// class name.
func (fc *filterCache) predicateFor(b Bound) predicate {
	if b.IsUniversal() {
		return universalPredicate
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	cls := b.className()
	if p, ok := fc.byCls[cls]; ok {
		return p
	}

	if fc.hierarchy == nil || !fc.hierarchy.ResolveClass(cls) {
		fc.diag.Debugf("typeflow: unresolvable upper bound %q, demoting to universal filter", cls)
		fc.byCls[cls] = universalPredicate
		return universalPredicate
	}

	h := fc.hierarchy
	p := func(reg *Registry, t Type) bool {
		return h.IsSubtype(t.Name(), cls)
	}
	fc.byCls[cls] = p
	return p
}
