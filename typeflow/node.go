package typeflow

import (
	"fmt"
	"reflect"
)

// noIndex marks an arena slot reference as absent.
const noIndex = -1

// nodeState is the mutable arena entry for one vertex of the
// type-flow graph. It is referenced only through the Node handle;
// callers never see a *nodeState directly - the arena owns every
// entry and hands out stable integer handles instead.
type nodeState struct {
	declared Bound // as declared at CreateNode time (may be an array bound)
	pred     predicate

	types   typeSet
	pending typeSet

	forward    []*Transition
	forwardSet map[int]bool // destination idx -> edge exists, for idempotent Connect
	inbound    []*Transition

	consumers []Consumer

	arrayItem  int
	classValue int

	degree  int
	locked  bool
	method  string
	tag     string
}

func newNodeState(declared Bound) *nodeState {
	return &nodeState{
		declared:   declared,
		arrayItem:  noIndex,
		classValue: noIndex,
	}
}

// Node is a stable handle to a vertex in a type-flow graph, identified
// by an arena index. The zero Node is invalid; obtain one from
// Engine.CreateNode or a satellite accessor.
type Node struct {
	eng *Engine
	idx int
}

// Handle returns the node's arena index, stable for the engine's
// lifetime. Useful for debug output (e.g. a dot export) and for
// correlating log lines with a specific node.
func (n Node) Handle() int { return n.idx }

// Valid reports whether n refers to a real node.
func (n Node) Valid() bool { return n.eng != nil }

// Equal reports whether n and other are handles to the same node.
func (n Node) Equal(other Node) bool { return n.eng == other.eng && n.idx == other.idx }

func (n Node) state() *nodeState { return n.eng.arena[n.idx] }

// Degree reports the node's depth in the satellite chain.
func (n Node) Degree() int { return n.state().degree }

// Tag returns the node's debug tag, or "" if untagged.
func (n Node) Tag() string { return n.state().tag }

// SetTag sets the node's debug tag, used in diagnostics and by the
// LockViolationError raised for this node.
func (n Node) SetTag(tag string) { n.state().tag = tag }

// Method returns the originating method reference recorded for this
// node, or "" if none was set.
func (n Node) Method() string { return n.state().method }

// SetMethod records the originating method reference for diagnostics.
func (n Node) SetMethod(method string) { n.state().method = method }

func (n Node) predicate() predicate {
	st := n.state()
	if st.pred == nil {
		st.pred = n.eng.filters.predicateFor(st.declared.ownFilter())
	}
	return st.pred
}

// Propagate offers t to the node. It is ignored silently
// if the node's degree exceeds the engine's bound, if the node
// already holds t (authoritative or pending), or if t fails the
// node's filter; otherwise t is buffered into the pending set. The
// authoritative type set is only updated later, by the scheduler's
// applyPending phase.
func (n Node) Propagate(t Type) {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()

	st := n.state()
	if st.degree > eng.maxDegree() {
		return
	}
	n.offer(t)
}

// PropagateAll is the batch form of Propagate. The degree bound is
// checked once for the whole batch rather than once per element,
// since degree is a property of the node, not of any one type.
func (n Node) PropagateAll(ts []Type) {
	if len(ts) == 0 {
		return
	}
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()

	st := n.state()
	if st.degree > eng.maxDegree() {
		return
	}
	for _, t := range ts {
		n.offer(t)
	}
}

// offer buffers t into pending, assuming the degree check has already
// passed. Caller must hold eng.mu.
func (n Node) offer(t Type) {
	st := n.state()
	if st.types.contains(t.Index()) || st.pending.contains(t.Index()) {
		return
	}
	if !n.predicate()(n.eng.reg, t) {
		return
	}
	st.pending.add(t.Index(), n.eng.reg.Size())
	if n.eng.opts.ShouldLog {
		n.eng.diag.Debugf("typeflow: node %s offered %s", n.debugID(), t.Name())
	}
}

// applyPending drains the node's pending set into its authoritative
// set, returning the newly admitted types (the delta) or a
// LockViolationError if the node is locked and pending is non-empty.
func (n Node) applyPending() ([]Type, error) {
	st := n.state()
	if st.pending.size() == 0 {
		return nil, nil
	}

	if st.locked {
		var offending Type
		st.pending.enumerate(func(i int) { offending = n.eng.reg.Get(i) })
		return nil, &LockViolationError{TypeName: offending.Name(), Method: st.method, Tag: st.tag}
	}

	var delta []Type
	st.pending.enumerate(func(i int) {
		if st.types.add(i, n.eng.reg.Size()) {
			delta = append(delta, n.eng.reg.Get(i))
		}
	})
	st.pending = typeSet{}

	return delta, nil
}

// ArrayItem returns the node's array-element satellite, creating it
// on first call. The satellite's filter
// is the projected item bound if this node declared an array bound,
// otherwise it is unfiltered; its degree is this node's degree + 1.
func (n Node) ArrayItem() Node {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()

	st := n.state()
	if st.arrayItem != noIndex {
		return Node{eng: eng, idx: st.arrayItem}
	}

	idx := eng.allocLocked(st.declared.itemFilter())
	child := eng.arena[idx]
	child.degree = st.degree + 1
	if eng.opts.ShouldTag && st.tag != "" {
		child.tag = st.tag + "["
	}

	st.arrayItem = idx
	return Node{eng: eng, idx: idx}
}

// ClassValue returns the node's boxed-class-value satellite, creating
// it on first call. Degree is unchanged
// from the parent; the satellite's own ClassValue is itself, a
// fixed point.
func (n Node) ClassValue() Node {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()

	st := n.state()
	if st.classValue != noIndex {
		return Node{eng: eng, idx: st.classValue}
	}

	idx := eng.allocLocked(NoBound())
	child := eng.arena[idx]
	child.degree = st.degree
	child.classValue = idx // fixed point: a class-value node is its own class-value
	if eng.opts.ShouldTag && st.tag != "" {
		child.tag = st.tag + "@"
	}

	st.classValue = idx
	return Node{eng: eng, idx: idx}
}

// HasArrayType reports whether ArrayItem has been materialised for
// this node and currently holds at least one type.
func (n Node) HasArrayType() bool {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()

	st := n.state()
	if st.arrayItem == noIndex {
		return false
	}
	return eng.arena[st.arrayItem].types.size() > 0
}

// Connect adds a directed, optionally filtered edge from n to target.
// Self-loops are silently ignored. A nil (zero-value)
// target is a programmer error and returns ErrNilTarget. Connecting
// the same (n, target) pair twice is a no-op: the existing edge is
// kept, the second edgeFilter is discarded, and no duplicate catch-up
// delivery occurs.
func (n Node) Connect(target Node, edgeFilter Bound) error {
	if !target.Valid() {
		return ErrNilTarget
	}

	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()

	if target.eng == eng && target.idx == n.idx {
		return nil
	}

	st := n.state()
	if st.forwardSet == nil {
		st.forwardSet = make(map[int]bool)
	}
	if st.forwardSet[target.idx] {
		return nil
	}

	tr := &Transition{source: n, destination: target, edgeFilter: edgeFilter}
	st.forward = append(st.forward, tr)
	st.forwardSet[target.idx] = true

	tst := target.state()
	tst.inbound = append(tst.inbound, tr)

	if st.types.size() > 0 {
		eng.scheduleTransition(tr, n.snapshotTypes(st))
	}

	return nil
}

// AddConsumer registers c to receive every future delta this node
// learns. Registering the same consumer
// twice is a no-op. If the node already holds types, c is scheduled a
// catch-up delivery of the current set.
func (n Node) AddConsumer(c Consumer) {
	eng := n.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()

	st := n.state()
	for _, existing := range st.consumers {
		if sameConsumer(existing, c) {
			return
		}
	}
	st.consumers = append(st.consumers, c)

	if st.types.size() > 0 {
		eng.scheduleConsumer(c, n.snapshotTypes(st))
	}
}

func (n Node) snapshotTypes(st *nodeState) []Type {
	out := make([]Type, 0, st.types.size())
	st.types.enumerate(func(i int) { out = append(out, n.eng.reg.Get(i)) })
	return out
}

func (n Node) debugID() string {
	if tag := n.state().tag; tag != "" {
		return tag
	}
	if m := n.state().method; m != "" {
		return m
	}
	return fmt.Sprintf("#%d", n.idx)
}

// sameConsumer compares two Consumer values for identity. Func-backed
// consumers (ConsumerFunc) are not comparable with ==, so those are
// compared by code pointer instead; other implementations fall back
// to ordinary interface equality.
func sameConsumer(a, b Consumer) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.Func || bv.Kind() == reflect.Func {
		return av.Kind() == bv.Kind() && av.Pointer() == bv.Pointer()
	}
	defer func() { recover() }() //nolint:errcheck // a non-comparable Consumer just never matches
	return a == b
}
