package main

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(newDotCmd())
}

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <graph.json>",
		Short: "Export a graph as Graphviz source",
		Long: `The dot command builds and runs a graph, then prints its Graphviz
(.dot) representation: one node per arena entry, labelled with its
tag and resolved type count, and one edge per transition.

Example:
  typeflowctl dot testdata/diamond.json | dot -Tpng -o diamond.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(args)
		},
	}
}

func runDot(args []string) error {
	g, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}
	printInfo("%s", g.Engine.Dot())
	return nil
}
