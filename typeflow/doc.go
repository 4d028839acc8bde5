// Package typeflow implements the type-flow graph and propagation engine
// used by a whole-program devirtualization analysis.
//
// # Overview
//
// The engine answers one question for every value slot in a compiled
// program (parameters, returns, fields, array elements, locals): which
// set of concrete runtime types can actually reach that slot? The
// answer is produced by a directed graph of Nodes connected by
// Transitions, seeded with the types of allocation sites and driven to
// a fixed point by the Engine's propagation scheduler.
//
// # Key Types
//
//   - Engine: owns the node arena, the worklist, and the lock state
//     for a single analysis run.
//   - Node: a vertex holding a monotonically growing TypeSet, an
//     optional upper Bound, and satellite nodes for array
//     elements and boxed class values.
//   - Transition: a directed, optionally filtered edge between two
//     Nodes.
//   - Registry: interns type names into dense integer indices.
//
// # Building a graph
//
//	reg := typeflow.NewRegistry()
//	eng := typeflow.NewEngine(reg, hierarchy, typeflow.Options{})
//	a := eng.CreateNode(typeflow.NoBound())
//	b := eng.CreateNode(typeflow.NoBound())
//	a.Connect(b, typeflow.NoBound())
//	a.Propagate(reg.Intern("java.lang.String"))
//	eng.Run()
//	eng.Lock()
//
// After Run returns, the graph is at a fixed point; Lock freezes it so
// later compilation phases can read node type sets without racing
// further mutation.
package typeflow
