package main

import (
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <graph.json>",
		Short: "Show per-node type-set sizes for a graph",
		Long: `The stats command builds and runs a graph, then reports, for every
node in the graph description, how many concrete types its own Query
Surface resolved to. Use "build" instead for engine-level totals
(registry size, transition count, locked state).

Example:
  typeflowctl stats testdata/diamond.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
}

type nodeStat struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

func runStats(args []string) error {
	g, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	stats := make([]nodeStat, 0, len(ids))
	for _, id := range ids {
		stats = append(stats, nodeStat{ID: id, Size: g.Nodes[id].Size()})
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("Per-node type-set sizes:\n")
	for _, s := range stats {
		printInfo("  %-20s %d\n", s.ID, s.Size)
	}
	return nil
}
