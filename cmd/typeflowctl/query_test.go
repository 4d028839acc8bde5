package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterByPrefix_IsCaseInsensitive(t *testing.T) {
	names := []string{"pkg.Animal", "pkg.Rock", "PKG.ANTLER"}
	got := filterByPrefix(names, "pkg.an")
	require.ElementsMatch(t, []string{"pkg.Animal", "PKG.ANTLER"}, got)
}

func TestFilterByPrefix_EmptyPrefixKeepsNothingFiltered(t *testing.T) {
	names := []string{"pkg.Animal", "pkg.Rock"}
	got := filterByPrefix(names, "")
	require.ElementsMatch(t, names, got)
}
