// Package graphfile loads a declarative JSON description of a
// type-flow graph — classes, nodes with their declared bounds,
// transitions, and a seed set of types — and builds it against a real
// typeflow.Engine. It has no bearing on how an embedding compiler
// would actually drive the engine in process (that happens through
// direct typeflow.Node calls as bytecode is parsed and linked); it
// exists so typeflowctl and typeflowexplorer can exercise the engine
// from a plain file instead of a real front end.
package graphfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/typeflow/pkg/hierarchy"
	"github.com/joshuapare/typeflow/typeflow"
)

// File is the on-disk graph description.
type File struct {
	Classes []ClassDecl `json:"classes"`
	Nodes   []NodeDecl  `json:"nodes"`
	Edges   []EdgeDecl  `json:"edges"`
	Seed    []SeedDecl  `json:"seed"`
}

// ClassDecl declares one class's direct superclass and implemented
// interfaces, the shape a Class Hierarchy Oracle builds from.
type ClassDecl struct {
	Name       string   `json:"name"`
	Super      string   `json:"super,omitempty"`
	Interfaces []string `json:"interfaces,omitempty"`
}

// NodeDecl declares one node of the graph.
type NodeDecl struct {
	ID    string    `json:"id"`
	Bound BoundDecl `json:"bound"`
	Tag   string    `json:"tag,omitempty"`
}

// BoundDecl mirrors typeflow.Bound's three shapes in a JSON-friendly
// form: Kind is one of "none", "class" or "array".
type BoundDecl struct {
	Kind  string `json:"kind"`
	Class string `json:"class,omitempty"`
}

// ToBound converts a BoundDecl to a typeflow.Bound.
func (b BoundDecl) ToBound() (typeflow.Bound, error) {
	switch b.Kind {
	case "", "none":
		return typeflow.NoBound(), nil
	case "class":
		return typeflow.ClassBound(b.Class), nil
	case "array":
		return typeflow.ArrayBound(b.Class), nil
	default:
		return typeflow.Bound{}, fmt.Errorf("unknown bound kind %q", b.Kind)
	}
}

// EdgeDecl declares a transition from one node to another.
type EdgeDecl struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Filter BoundDecl `json:"filter,omitempty"`
}

// SeedDecl declares one type offered to one node before the engine
// runs.
type SeedDecl struct {
	Node string `json:"node"`
	Type string `json:"type"`
}

// Graph is the result of loading and running a File: the engine and
// the node-ID-to-handle mapping a caller needs to resolve IDs back to
// typeflow.Node handles.
type Graph struct {
	Engine *typeflow.Engine
	Nodes  map[string]typeflow.Node
	// NodeOrder preserves the declaration order of File.Nodes, handy
	// for deterministic listings (e.g. a tree view) that a map alone
	// can't give.
	NodeOrder []string
}

// Load reads and parses a graph description from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse graph file: %w", err)
	}
	return &f, nil
}

// Build constructs the engine described by f, seeds it, runs it to a
// fixed point and locks it. Nodes are tagged from their declared ID
// (or NodeDecl.Tag), but the engine otherwise uses typeflow's default
// Options: no per-edge/per-delta tracing. Use BuildWithDiagnostics to
// enable that.
func (f *File) Build() (*Graph, error) {
	return f.build(typeflow.Options{ShouldTag: true})
}

// BuildWithDiagnostics behaves like Build but also routes the engine's
// non-fatal reports through diag, enabling per-edge and per-delta
// tracing when shouldLog is true. typeflowexplorer uses this so its
// --debug flag traces both the TUI's own decisions and the embedded
// engine's propagation into the same log.
func (f *File) BuildWithDiagnostics(diag typeflow.Diagnostics, shouldLog bool) (*Graph, error) {
	return f.build(typeflow.Options{ShouldTag: true, ShouldLog: shouldLog, Diagnostics: diag})
}

func (f *File) build(opts typeflow.Options) (*Graph, error) {
	h := hierarchy.New()
	for _, c := range f.Classes {
		h.Declare(c.Name, c.Super, c.Interfaces...)
	}

	reg := typeflow.NewRegistry()
	eng := typeflow.NewEngine(reg, h, opts)

	nodes := make(map[string]typeflow.Node, len(f.Nodes))
	order := make([]string, 0, len(f.Nodes))
	for _, nd := range f.Nodes {
		bound, err := nd.Bound.ToBound()
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", nd.ID, err)
		}
		n := eng.CreateNode(bound)
		if nd.Tag != "" {
			n.SetTag(nd.Tag)
		} else {
			n.SetTag(nd.ID)
		}
		nodes[nd.ID] = n
		order = append(order, nd.ID)
	}

	for _, e := range f.Edges {
		src, ok := nodes[e.From]
		if !ok {
			return nil, fmt.Errorf("edge references unknown node %q", e.From)
		}
		dst, ok := nodes[e.To]
		if !ok {
			return nil, fmt.Errorf("edge references unknown node %q", e.To)
		}
		filter, err := e.Filter.ToBound()
		if err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
		if err := src.Connect(dst, filter); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}

	for _, s := range f.Seed {
		n, ok := nodes[s.Node]
		if !ok {
			return nil, fmt.Errorf("seed references unknown node %q", s.Node)
		}
		n.Propagate(reg.Intern(s.Type))
	}

	if err := eng.Run(); err != nil {
		return nil, fmt.Errorf("propagation failed: %w", err)
	}
	eng.Lock()

	return &Graph{Engine: eng, Nodes: nodes, NodeOrder: order}, nil
}
