package typeflow

// Transition is a directed, optionally filtered edge from a source
// Node to a destination Node. Edge filters compose with the
// destination's own filter: a type must satisfy both to be admitted.
type Transition struct {
	source      Node
	destination Node
	edgeFilter  Bound
	pred        predicate
}

// Source returns the transition's source node.
func (tr *Transition) Source() Node { return tr.source }

// Destination returns the transition's destination node.
func (tr *Transition) Destination() Node { return tr.destination }

func (tr *Transition) predicate() predicate {
	if tr.pred == nil {
		tr.pred = tr.destination.eng.filters.predicateFor(tr.edgeFilter)
	}
	return tr.pred
}

// deliver forwards delta through the transition: each type passing
// both the edge filter and the destination's own filter is offered to
// the destination node. Because Node.offer only buffers into pending,
// the destination's own consumers and outbound transitions fire in
// the scheduler's next round, preserving a clean breadth-first
// frontier.
//
// deliver is invoked by the scheduler with no lock held, so it takes
// eng.mu itself. It never calls
// user code directly — the destination's own filter and the Class
// Hierarchy Oracle are treated as synchronous, non-reentrant
// predicates, not callbacks that might propagate back into the engine
// — so it is safe to hold the lock for the whole delivery.
func (tr *Transition) deliver(delta []Type) {
	eng := tr.destination.eng
	eng.mu.Lock()
	defer eng.mu.Unlock()

	reg := eng.reg
	edgePred := tr.predicate()

	dst := tr.destination
	dstSt := dst.state()
	if dstSt.degree > eng.maxDegree() {
		return
	}

	for _, t := range delta {
		if !edgePred(reg, t) {
			continue
		}
		dst.offer(t)
	}
}
