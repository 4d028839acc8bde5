package typeflow

import "sync"

// Type is an interned type descriptor. The zero value is not a valid
// Type; always obtain one from Registry.Intern or Registry.Get.
type Type struct {
	index int
	name  string
}

// Index returns the dense, non-negative, stable index for this type.
func (t Type) Index() int { return t.index }

// Name returns the interned name.
func (t Type) Name() string { return t.name }

// Registry interns type names into dense, contiguous, non-negative
// indices. Interning is idempotent: interning the same name twice
// returns the same Type. Indices are stable for the lifetime of the
// Registry and never reused or shrunk.
//
// Registry is safe for concurrent use so that graph construction may
// proceed from multiple goroutines; lookups take the read lock,
// interning a new name takes the write lock.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]int
	byIndex []Type
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]int, 256),
	}
}

// Intern returns the Type for name, creating and assigning it the next
// dense index if this is the first time name has been seen.
func (r *Registry) Intern(name string) Type {
	r.mu.RLock()
	if idx, ok := r.byName[name]; ok {
		t := r.byIndex[idx]
		r.mu.RUnlock()
		return t
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another goroutine may have
	// interned name while we waited.
	if idx, ok := r.byName[name]; ok {
		return r.byIndex[idx]
	}

	t := Type{index: len(r.byIndex), name: name}
	r.byIndex = append(r.byIndex, t)
	r.byName[name] = t.index
	return t
}

// Get returns the Type previously assigned to index. It panics if
// index is out of range; callers that query with an externally
// supplied index should bounds-check via Size first.
func (r *Registry) Get(index int) Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byIndex[index]
}

// Lookup returns the Type for name and reports whether it has been
// interned, without creating it.
func (r *Registry) Lookup(name string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byName[name]
	if !ok {
		return Type{}, false
	}
	return r.byIndex[idx], true
}

// Size returns the number of interned types. It only ever grows.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byIndex)
}
