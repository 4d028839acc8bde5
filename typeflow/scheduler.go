package typeflow

// task is the sum type the worklist holds: either a consumer delivery
// or a transition delivery.
type task struct {
	consumer   Consumer    // set for a consumer delivery
	transition *Transition // set for a transition delivery
	delta      []Type
}

func (t task) run() {
	if t.transition != nil {
		t.transition.deliver(t.delta)
		return
	}
	t.consumer.Deliver(t.delta)
}

// worklist is a simple FIFO queue of tasks: the scheduler owns it and
// drains it in FIFO order.
type worklist struct {
	items []task
	head  int
}

func (w *worklist) push(t task) {
	w.items = append(w.items, t)
}

func (w *worklist) empty() bool {
	return w.head >= len(w.items)
}

func (w *worklist) pop() (task, bool) {
	if w.empty() {
		return task{}, false
	}
	t := w.items[w.head]
	w.head++
	// Reclaim the backing array once fully drained so a long-running
	// engine doesn't hold onto an ever-growing slice.
	if w.head == len(w.items) {
		w.items = w.items[:0]
		w.head = 0
	}
	return t, true
}

// scheduleConsumer enqueues a consumer delivery. Caller must hold
// eng.mu.
func (e *Engine) scheduleConsumer(c Consumer, delta []Type) {
	if len(delta) == 0 {
		return
	}
	e.wl.push(task{consumer: c, delta: delta})
}

// scheduleTransition enqueues a transition delivery. Caller must hold
// eng.mu.
func (e *Engine) scheduleTransition(tr *Transition, delta []Type) {
	if len(delta) == 0 {
		return
	}
	e.wl.push(task{transition: tr, delta: delta})
}

// Run drives the graph to a fixed point: it alternates draining the worklist (firing consumer callbacks and transitions)
// with sweeping every node's pending set into its authoritative set,
// until one full sweep finds the worklist empty and no node pending.
// Run does not lock the graph; call Lock once satisfied with
// quiescence.
//
// A consumer's Deliver is invoked with no lock held, so it is free to
// call back into Propagate, Connect or AddConsumer on any node (the
// usual way a whole-program analysis grows the graph in reaction to
// what flows through it). Every other step below only ever holds
// eng.mu for a short, self-contained critical section; it never calls
// user code while holding it.
func (e *Engine) Run() error {
	for {
		e.drainWorklist()

		didWork, err := e.sweepPending()
		if err != nil {
			return err
		}
		if !didWork && e.worklistEmpty() {
			return nil
		}
	}
}

// drainWorklist pops and runs tasks one at a time, releasing eng.mu
// before invoking each task so a consumer's callback can safely
// reenter the engine.
func (e *Engine) drainWorklist() {
	for {
		e.mu.Lock()
		t, ok := e.wl.pop()
		e.mu.Unlock()
		if !ok {
			return
		}
		t.run()
	}
}

func (e *Engine) worklistEmpty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wl.empty()
}

func (e *Engine) sweepPending() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sweepPendingLocked()
}

// sweepPendingLocked calls applyPending on every node with a
// non-empty pending set, enqueueing whatever new deliveries each
// delta produces. It returns whether any node had pending work. It
// never invokes user code directly (only our own typeSet bookkeeping
// and worklist pushes), so holding eng.mu for the whole sweep is
// safe.
func (e *Engine) sweepPendingLocked() (bool, error) {
	didWork := false
	// The loop re-reads len(e.arena) each step. The sweep holds eng.mu
	// and runs no consumer callback, so no node is created while it
	// iterates; nodes created by callbacks in drainWorklist are picked
	// up by the next sweep.
	for i := 0; i < len(e.arena); i++ {
		st := e.arena[i]
		if st.pending.size() == 0 {
			continue
		}
		didWork = true

		n := Node{eng: e, idx: i}
		delta, err := n.applyPending()
		if err != nil {
			return didWork, err
		}
		if len(delta) == 0 {
			continue
		}

		for _, c := range st.consumers {
			e.scheduleConsumer(c, delta)
		}
		for _, tr := range st.forward {
			e.scheduleTransition(tr, delta)
		}
	}
	return didWork, nil
}
