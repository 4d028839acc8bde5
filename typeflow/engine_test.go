package typeflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// End-to-end scenarios
// ============================================================================

// Scenario 1: two-node chain, no filter.
func TestScenario_TwoNodeChainNoFilter(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})

	a := eng.CreateNode(NoBound())
	b := eng.CreateNode(NoBound())
	require.NoError(t, a.Connect(b, NoBound()))

	t0, t1 := reg.Intern("T0"), reg.Intern("T1")
	a.Propagate(t0)
	a.Propagate(t1)

	require.NoError(t, eng.Run())

	require.ElementsMatch(t, []string{"T0", "T1"}, a.TypeNames())
	require.ElementsMatch(t, []string{"T0", "T1"}, b.TypeNames())
}

// Scenario 2: filter rejects a type that fails the destination's
// upper bound.
func TestScenario_FilterRejects(t *testing.T) {
	h := newFakeHierarchy()
	h.declare("C")
	h.declare("T0", "C")
	h.declare("T1") // not a subtype of C

	reg := NewRegistry()
	eng := NewEngine(reg, h, Options{})

	a := eng.CreateNode(NoBound())
	b := eng.CreateNode(ClassBound("C"))
	require.NoError(t, a.Connect(b, NoBound()))

	t0, t1 := reg.Intern("T0"), reg.Intern("T1")
	a.Propagate(t0)
	a.Propagate(t1)

	require.NoError(t, eng.Run())

	require.ElementsMatch(t, []string{"T0", "T1"}, a.TypeNames())
	require.ElementsMatch(t, []string{"T0"}, b.TypeNames())
}

// Scenario 3: small-to-dense crossover on a live node.
func TestScenario_SmallToDenseCrossover(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})
	a := eng.CreateNode(NoBound())

	var names []string
	for i := 0; i < 7; i++ {
		name := "T" + string(rune('0'+i))
		names = append(names, name)
		a.Propagate(reg.Intern(name))
	}

	require.NoError(t, eng.Run())
	require.ElementsMatch(t, names, a.TypeNames())
	for _, name := range names {
		require.True(t, a.HasTypeNamed(name))
	}
}

// Scenario 4: array-item propagation, with a filter projected from
// the parent's array bound.
func TestScenario_ArrayItemPropagation(t *testing.T) {
	h := newFakeHierarchy()
	h.declare("C")
	h.declare("T0", "C")
	h.declare("T1")

	reg := NewRegistry()
	eng := NewEngine(reg, h, Options{})

	a := eng.CreateNode(ArrayBound("C"))
	item := a.ArrayItem()

	t0, t1 := reg.Intern("T0"), reg.Intern("T1")
	item.Propagate(t0)
	item.Propagate(t1)

	require.NoError(t, eng.Run())

	require.ElementsMatch(t, []string{"T0"}, item.TypeNames())
	require.True(t, a.HasArrayType())
	require.True(t, a.ArrayItem().Equal(item), "ArrayItem must return the same handle every call")
}

// Scenario 5: a consumer added after quiescence gets caught up with
// exactly the current set.
func TestScenario_CatchUpDelivery(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})

	a := eng.CreateNode(NoBound())
	b := eng.CreateNode(NoBound())
	require.NoError(t, a.Connect(b, NoBound()))

	t0 := reg.Intern("T0")
	a.Propagate(t0)
	require.NoError(t, eng.Run())

	var got []Type
	b.AddConsumer(ConsumerFunc(func(delta []Type) {
		got = append(got, delta...)
	}))
	require.NoError(t, eng.Run())

	require.Len(t, got, 1)
	require.Equal(t, "T0", got[0].Name())
}

// Scenario 6: a type offered after Lock raises a lock violation on
// the next applyPending pass.
func TestScenario_LockViolation(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})

	a := eng.CreateNode(NoBound())
	a.SetTag("A")
	b := eng.CreateNode(NoBound())
	require.NoError(t, a.Connect(b, NoBound()))

	a.Propagate(reg.Intern("T0"))
	require.NoError(t, eng.Run())

	eng.Lock()

	a.Propagate(reg.Intern("T2"))
	err := eng.Run()

	require.Error(t, err)
	var lockErr *LockViolationError
	require.ErrorAs(t, err, &lockErr)
	require.Equal(t, "T2", lockErr.TypeName)
	require.Equal(t, "A", lockErr.Tag)
}

// ============================================================================
// Additional invariants
// ============================================================================

func TestEngine_DegreeBoundStopsPropagation(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{MaxDegree: 2})

	root := eng.CreateNode(NoBound())
	lvl1 := root.ArrayItem()
	lvl2 := lvl1.ArrayItem()
	lvl3 := lvl2.ArrayItem() // degree 3, exceeds MaxDegree=2

	require.Equal(t, 3, lvl3.Degree())

	lvl3.Propagate(reg.Intern("T0"))
	require.NoError(t, eng.Run())

	require.Equal(t, 0, lvl3.Size(), "a node past the degree bound must never gain a type")
}

func TestEngine_RunTerminatesOnACycle(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})

	a := eng.CreateNode(NoBound())
	b := eng.CreateNode(NoBound())
	require.NoError(t, a.Connect(b, NoBound()))
	require.NoError(t, b.Connect(a, NoBound())) // cycle

	a.Propagate(reg.Intern("T0"))

	done := make(chan error, 1)
	go func() { done <- eng.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not terminate on a cyclic graph")
	}

	require.ElementsMatch(t, []string{"T0"}, a.TypeNames())
	require.ElementsMatch(t, []string{"T0"}, b.TypeNames())
}

func TestEngine_Stats(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})

	a := eng.CreateNode(NoBound())
	b := eng.CreateNode(NoBound())
	require.NoError(t, a.Connect(b, NoBound()))

	st := eng.Stats()
	require.Equal(t, 2, st.NodeCount)
	require.Equal(t, 1, st.TransitionCount)
	require.False(t, st.Locked)

	eng.Lock()
	require.True(t, eng.Stats().Locked)
}
