package typeflow

import "sync"

// defaultMaxDegree is the default satellite-depth bound: nodes at a
// greater satellite depth than this stop accepting or propagating
// types, bounding how deeply array-of-array-of-... inference nests.
const defaultMaxDegree = 2

// Options configures an Engine at construction time. Global toggles
// are captured into the instance rather than read from ambient state,
// the same way cmd/hiveexplorer's logger captures its level at Init
// rather than consulting a package-level variable on every call.
type Options struct {
	// ShouldLog emits per-edge and per-delta traces via Diagnostics
	// when true. Off by default.
	ShouldLog bool

	// ShouldTag populates human-readable tags on satellite nodes: an
	// array-item satellite inherits its parent's tag with "["
	// appended, a class-value satellite with "@" appended. Off by
	// default.
	ShouldTag bool

	// MaxDegree overrides defaultMaxDegree. Zero selects
	// defaultMaxDegree.
	MaxDegree int

	// Diagnostics receives non-fatal reports. A nil value discards
	// everything.
	Diagnostics Diagnostics
}

// Engine owns a type-flow graph's node arena and propagation
// scheduler for the duration of one analysis run. Construction
// (CreateNode, Connect, AddConsumer, Propagate) and dispatch (Run) are
// internally synchronized by a single mutex, giving the engine a
// single logical thread of control regardless of how many goroutines
// the embedder drives it from. The mutex only ever guards a short, self-contained
// critical section; it is never held across a call into Consumer.Deliver,
// so a consumer is free to call back into Propagate, Connect or
// AddConsumer without deadlocking the engine that is currently
// delivering to it.
type Engine struct {
	reg       *Registry
	hierarchy Hierarchy
	diag      Diagnostics
	filters   *filterCache
	opts      Options

	mu     sync.Mutex
	arena  []*nodeState
	wl     worklist
	locked bool
}

// NewEngine creates an Engine over reg, consulting hierarchy for
// subtype queries. hierarchy may be nil if the graph never declares a
// class bound.
func NewEngine(reg *Registry, hierarchy Hierarchy, opts Options) *Engine {
	diag := opts.Diagnostics
	if diag == nil {
		diag = noopDiagnostics{}
	}
	return &Engine{
		reg:       reg,
		hierarchy: hierarchy,
		diag:      diag,
		filters:   newFilterCache(hierarchy, diag),
		opts:      opts,
	}
}

func (e *Engine) maxDegree() int {
	if e.opts.MaxDegree > 0 {
		return e.opts.MaxDegree
	}
	return defaultMaxDegree
}

// CreateNode allocates a fresh Node with the given declared bound.
// Pass NoBound() for an unfiltered node.
func (e *Engine) CreateNode(bound Bound) Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Node{eng: e, idx: e.allocLocked(bound)}
}

// allocLocked appends a fresh node to the arena. Caller must hold
// e.mu.
func (e *Engine) allocLocked(bound Bound) int {
	st := newNodeState(bound)
	st.locked = e.locked
	e.arena = append(e.arena, st)
	return len(e.arena) - 1
}

// Lock transitions the engine to its post-quiescence locked state.
// After Lock, any pending type an
// applyPending pass encounters raises a LockViolationError; read
// operations continue to succeed. Call Lock only after Run reports
// quiescence — Lock itself does not drain anything.
func (e *Engine) Lock() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.locked = true
	for _, st := range e.arena {
		st.locked = true
	}
}

// Locked reports whether Lock has been called.
func (e *Engine) Locked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locked
}

// Registry returns the engine's Type Registry.
func (e *Engine) Registry() *Registry { return e.reg }

// NodeCount returns the number of nodes created so far, including
// satellites.
func (e *Engine) NodeCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.arena)
}

// Node returns the handle for arena index idx. It panics if idx is
// out of range, the same contract as Registry.Get: callers that
// accept externally supplied indices (e.g. a CLI flag) must
// bounds-check against NodeCount first.
func (e *Engine) Node(idx int) Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx < 0 || idx >= len(e.arena) {
		panic("typeflow: node index out of range")
	}
	return Node{eng: e, idx: idx}
}
