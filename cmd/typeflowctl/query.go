package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
)

var (
	queryNode   string
	queryPrefix string
)

func init() {
	cmd := newQueryCmd()
	cmd.Flags().StringVar(&queryNode, "node", "", "Node ID to query (required)")
	cmd.Flags().StringVar(&queryPrefix, "prefix", "", "Only show types whose name starts with this prefix (case-insensitive)")
	_ = cmd.MarkFlagRequired("node")
	rootCmd.AddCommand(cmd)
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <graph.json>",
		Short: "Print the resolved type set of one node",
		Long: `The query command builds and runs a graph, then prints the
resolved types of a single node (the answer to "which concrete types
can flow into this value slot" for the node named by --node).

Example:
  typeflowctl query testdata/diamond.json --node b
  typeflowctl query testdata/diamond.json --node b --prefix pkg.an`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args)
		},
	}
}

type queryResult struct {
	Node  string   `json:"node"`
	Size  int      `json:"size"`
	Types []string `json:"types"`
}

func runQuery(args []string) error {
	g, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}

	n, ok := g.Nodes[queryNode]
	if !ok {
		return fmt.Errorf("no such node %q", queryNode)
	}

	names := n.TypeNames()
	if queryPrefix != "" {
		names = filterByPrefix(names, queryPrefix)
	}
	sort.Strings(names)

	result := queryResult{Node: queryNode, Size: len(names), Types: names}
	if jsonOut {
		return printJSON(result)
	}

	printInfo("Node %s resolves to %d type(s):\n", queryNode, len(names))
	for _, name := range names {
		printInfo("  %s\n", name)
	}
	return nil
}

// filterByPrefix keeps only the names whose case-folded form starts
// with the case-folded prefix, so "--prefix pkg.an" matches both
// "pkg.Animal" and "PKG.ANT" regardless of how the front end spelled
// its class names.
func filterByPrefix(names []string, prefix string) []string {
	fold := cases.Fold()
	folded := fold.String(prefix)

	out := make([]string, 0, len(names))
	for _, name := range names {
		if hasFoldedPrefix(fold.String(name), folded) {
			out = append(out, name)
		}
	}
	return out
}

func hasFoldedPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
