package resource

import "fmt"

// MappingError reports a path from which no resource name could be derived.
// It aborts the build for the whole document.
type MappingError struct {
	Path string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("could not extract resource name from path %q", e.Path)
}

// OperationNotFoundError reports a lookup of an operation that a resource
// does not hold. Callers may recover from it to implement fallback lookup.
type OperationNotFoundError struct {
	Resource  string
	Operation string
}

func (e *OperationNotFoundError) Error() string {
	return fmt.Sprintf("resource %q has no operation %q", e.Resource, e.Operation)
}

// DuplicateOperationError reports two operations sharing an id under the same
// tag. Only returned when Options.StrictIDs is set; the default policy keeps
// the later operation.
type DuplicateOperationError struct {
	Tag string
	ID  string
}

func (e *DuplicateOperationError) Error() string {
	return fmt.Sprintf("duplicate operation id %q under tag %q", e.ID, e.Tag)
}
