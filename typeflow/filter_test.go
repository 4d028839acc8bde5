package typeflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterCache_UniversalBoundAcceptsEverything(t *testing.T) {
	fc := newFilterCache(nil, nil)
	reg := NewRegistry()
	p := fc.predicateFor(NoBound())

	require.True(t, p(reg, reg.Intern("anything")))
}

func TestFilterCache_ClassBoundConsultsHierarchy(t *testing.T) {
	h := newFakeHierarchy()
	h.declare("pkg.Dog", "pkg.Animal")
	h.declare("pkg.Cat", "pkg.Animal")
	h.declare("pkg.Animal")

	fc := newFilterCache(h, nil)
	reg := NewRegistry()
	p := fc.predicateFor(ClassBound("pkg.Animal"))

	require.True(t, p(reg, reg.Intern("pkg.Dog")))
	require.True(t, p(reg, reg.Intern("pkg.Animal")))
	require.False(t, p(reg, reg.Intern("pkg.Rock")))
}

func TestFilterCache_UnresolvableBoundDemotesToUniversal(t *testing.T) {
	h := newFakeHierarchy() // nothing declared: every ResolveClass is false

	var reported []string
	diag := DiagnosticsFunc(func(format string, args ...any) {
		reported = append(reported, format)
	})

	fc := newFilterCache(h, diag)
	reg := NewRegistry()
	p := fc.predicateFor(ClassBound("pkg.Missing"))

	require.True(t, p(reg, reg.Intern("pkg.Anything")), "unresolvable bound must accept everything")
	require.NotEmpty(t, reported, "unresolvable bound should be reported via diagnostics")
}

func TestFilterCache_PredicateIsMemoisedPerClass(t *testing.T) {
	h := newFakeHierarchy()
	h.declare("pkg.Animal")

	fc := newFilterCache(h, nil)
	p1 := fc.predicateFor(ClassBound("pkg.Animal"))
	p2 := fc.predicateFor(ClassBound("pkg.Animal"))

	require.Equal(t, len(fc.byCls), 1)
	// Both calls must have gone through the same cache slot (one
	// entry in byCls); invoke both and check they answer alike.
	reg := NewRegistry()
	require.Equal(t, p1(reg, reg.Intern("pkg.Animal")), p2(reg, reg.Intern("pkg.Animal")))
}
