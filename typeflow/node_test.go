package typeflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNode_ConnectIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})
	a := eng.CreateNode(NoBound())
	b := eng.CreateNode(NoBound())

	require.NoError(t, a.Connect(b, NoBound()))
	require.NoError(t, a.Connect(b, NoBound()))

	require.Equal(t, 1, a.ForwardCount())
}

func TestNode_ConnectSelfLoopIsNoOp(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})
	a := eng.CreateNode(NoBound())

	require.NoError(t, a.Connect(a, NoBound()))
	require.Equal(t, 0, a.ForwardCount())
}

func TestNode_ConnectNilTargetIsFatal(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})
	a := eng.CreateNode(NoBound())

	err := a.Connect(Node{}, NoBound())
	require.ErrorIs(t, err, ErrNilTarget)
}

func TestNode_AddConsumerIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})
	a := eng.CreateNode(NoBound())

	calls := 0
	fn := ConsumerFunc(func(delta []Type) { calls++ })
	a.AddConsumer(fn)
	a.AddConsumer(fn)

	a.Propagate(reg.Intern("T0"))
	require.NoError(t, eng.Run())

	require.Equal(t, 1, calls, "a duplicate AddConsumer must not fire the delta twice")
}

func TestNode_ClassValueIsAFixedPoint(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})
	a := eng.CreateNode(NoBound())

	cv := a.ClassValue()
	require.True(t, cv.ClassValue().Equal(cv), "a class-value satellite's own ClassValue must be itself")
	require.Equal(t, a.Degree(), cv.Degree(), "class-value satellites don't change degree")
}

func TestNode_ArrayItemSatelliteIdentity(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{})
	a := eng.CreateNode(NoBound())

	first := a.ArrayItem()
	second := a.ArrayItem()
	require.True(t, first.Equal(second))
	require.Equal(t, a.Degree()+1, first.Degree())
}

func TestNode_TagsPropagateToSatellitesWhenEnabled(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{ShouldTag: true})
	a := eng.CreateNode(NoBound())
	a.SetTag("X")

	require.Equal(t, "X[", a.ArrayItem().Tag())
	require.Equal(t, "X@", a.ClassValue().Tag())
}

func TestNode_SatellitesUntaggedWhenDisabled(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{ShouldTag: false})
	a := eng.CreateNode(NoBound())
	a.SetTag("X")

	require.Equal(t, "", a.ArrayItem().Tag())
}

func TestNode_PropagateAllAdmitsWholeBatchWithinDegreeBound(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, nil, Options{MaxDegree: 0}) // 0 falls back to default of 2
	a := eng.CreateNode(NoBound())

	ts := []Type{reg.Intern("T0"), reg.Intern("T1"), reg.Intern("T2")}
	a.PropagateAll(ts)
	require.NoError(t, eng.Run())

	require.ElementsMatch(t, []string{"T0", "T1", "T2"}, a.TypeNames())
}
