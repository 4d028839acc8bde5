package typeflow

import "fmt"

// LockViolationError is raised when a type is added to a Node after
// the Engine has locked the graph. It carries enough context for the
// embedder to report a useful
// diagnostic: the type that was rejected and the node's debug
// identity.
type LockViolationError struct {
	TypeName string
	Method   string
	Tag      string
}

func (e *LockViolationError) Error() string {
	id := e.Tag
	if id == "" {
		id = e.Method
	}
	if id == "" {
		id = "<untagged node>"
	}
	return fmt.Sprintf("typeflow: lock violation: attempted to add type %q to locked node %s", e.TypeName, id)
}

// ErrNilTarget is returned by Node.Connect when target is nil: a null
// connect target is a fatal programmer error.
var ErrNilTarget = fmt.Errorf("typeflow: connect target must not be nil")
