package resource

import (
	"fmt"
	"sort"
)

// Resource is a named, immutable grouping of operations sharing a tag. It is
// created once during Build and never mutated afterwards; the operations map
// is stored verbatim and must be treated as frozen by callers.
type Resource struct {
	name        string
	description string
	ops         map[string]*Operation
}

// NewResource wraps a tag name and its operations, keyed by operation id.
func NewResource(name string, ops map[string]*Operation) *Resource {
	if ops == nil {
		ops = make(map[string]*Operation)
	}
	return &Resource{name: name, ops: ops}
}

// Name returns the tag this resource groups operations under.
func (r *Resource) Name() string {
	return r.name
}

// Description returns the description of the matching top-level tag
// declaration, when the document carries one.
func (r *Resource) Description() string {
	return r.description
}

// Operation returns the operation registered under the given id. A miss is a
// *OperationNotFoundError naming both the resource and the operation.
func (r *Resource) Operation(name string) (*Operation, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, &OperationNotFoundError{Resource: r.name, Operation: name}
	}
	return op, nil
}

// Operations returns the underlying operations map, keyed by operation id.
// Callers must not mutate it.
func (r *Resource) Operations() map[string]*Operation {
	return r.ops
}

// OperationNames returns the sorted ids of the operations this resource holds.
func (r *Resource) OperationNames() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Resource) String() string {
	return fmt.Sprintf("Resource(%s)", r.name)
}
