package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/typeflow/cmd/typeflowexplorer/logger"
	"github.com/joshuapare/typeflow/pkg/graphfile"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if err := logger.Init(logger.Options{Enabled: debugMode, Level: slog.LevelDebug}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch filteredArgs[0] {
	case "--help", "-h":
		printHelp()
		os.Exit(0)
	case "--version", "-v":
		fmt.Printf("typeflowexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	graphPath := filteredArgs[0]
	logger.Info("starting typeflowexplorer", "path", graphPath, "debug", debugMode)

	f, err := graphfile.Load(graphPath)
	if err != nil {
		logger.Error("failed to load graph file", "path", graphPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := f.BuildWithDiagnostics(logger.Diagnostics(), debugMode)
	if err != nil {
		logger.Error("failed to build graph", "path", graphPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := NewModel(graphPath, g)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("typeflowexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: typeflowexplorer [options] <graph.json>\n")
	fmt.Fprintf(os.Stderr, "Try 'typeflowexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("typeflowexplorer - Interactive TUI for type-flow graphs")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  typeflowexplorer [options] <graph.json>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Loads a graph description, runs it to a fixed point, and lets you")
	fmt.Println("  browse every node's resolved type set interactively.")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.typeflowexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'typeflowctl' command instead.")
}
