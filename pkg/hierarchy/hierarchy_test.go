package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHierarchy_DirectSubclass(t *testing.T) {
	h := New()
	h.Declare("pkg.Animal", "")
	h.Declare("pkg.Dog", "pkg.Animal")

	require.True(t, h.IsSubtype("pkg.Dog", "pkg.Animal"))
	require.True(t, h.IsSubtype("pkg.Dog", "pkg.Dog"))
	require.False(t, h.IsSubtype("pkg.Animal", "pkg.Dog"))
}

func TestHierarchy_TransitiveChain(t *testing.T) {
	h := New()
	h.Declare("pkg.Object", "")
	h.Declare("pkg.Animal", "pkg.Object")
	h.Declare("pkg.Dog", "pkg.Animal")
	h.Declare("pkg.Poodle", "pkg.Dog")

	require.True(t, h.IsSubtype("pkg.Poodle", "pkg.Object"))
	require.True(t, h.IsSubtype("pkg.Poodle", "pkg.Animal"))
	require.False(t, h.IsSubtype("pkg.Object", "pkg.Poodle"))
}

func TestHierarchy_Interfaces(t *testing.T) {
	h := New()
	h.Declare("pkg.Comparable", "")
	h.Declare("pkg.Serializable", "")
	h.Declare("pkg.Widget", "", "pkg.Comparable", "pkg.Serializable")

	require.True(t, h.IsSubtype("pkg.Widget", "pkg.Comparable"))
	require.True(t, h.IsSubtype("pkg.Widget", "pkg.Serializable"))
}

func TestHierarchy_UndeclaredDescendantIsOnlyItself(t *testing.T) {
	h := New()
	h.Declare("pkg.Animal", "")

	require.False(t, h.IsSubtype("pkg.Ghost", "pkg.Animal"))
	require.True(t, h.IsSubtype("pkg.Ghost", "pkg.Ghost"))
	require.False(t, h.ResolveClass("pkg.Ghost"))
}

func TestHierarchy_RedeclareInvalidatesCache(t *testing.T) {
	h := New()
	h.Declare("pkg.Animal", "")
	h.Declare("pkg.Dog", "pkg.Animal")
	require.True(t, h.IsSubtype("pkg.Dog", "pkg.Animal")) // populate the cache

	h.Declare("pkg.Dog", "") // Dog no longer extends Animal

	require.False(t, h.IsSubtype("pkg.Dog", "pkg.Animal"))
}

func TestHierarchy_CyclicDeclarationDoesNotLoopForever(t *testing.T) {
	h := New()
	h.Declare("pkg.A", "pkg.B")
	h.Declare("pkg.B", "pkg.A") // malformed, but must terminate

	require.True(t, h.IsSubtype("pkg.A", "pkg.B"))
	require.True(t, h.IsSubtype("pkg.B", "pkg.A"))
}
