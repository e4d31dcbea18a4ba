package resource

import (
	"strings"
	"unicode"

	"go.yaml.in/yaml/v4"
)

// Operation is a single callable unit corresponding to one (path, HTTP
// method) pair in the document. Operations are built fresh per pair; an
// operation tagged N times is shared between N resources, not duplicated.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool
}

// OperationFactory builds an Operation from its document fragment. The
// fragment is already resolved to its concrete form.
type OperationFactory interface {
	NewOperation(doc Document, path, method string, fragment *yaml.Node) (*Operation, error)
}

// OperationFactoryFunc adapts a function to the OperationFactory interface.
type OperationFactoryFunc func(doc Document, path, method string, fragment *yaml.Node) (*Operation, error)

func (f OperationFactoryFunc) NewOperation(doc Document, path, method string, fragment *yaml.Node) (*Operation, error) {
	return f(doc, path, method, fragment)
}

// DefaultFactory decodes the standard operation fields from the fragment.
// When the fragment declares no operationId, one is derived from the method
// and path (e.g. GET /pet/{petId} -> get_pet_petId).
func DefaultFactory() OperationFactory {
	return OperationFactoryFunc(newOperation)
}

func newOperation(doc Document, path, method string, fragment *yaml.Node) (*Operation, error) {
	// Tags are not decoded here: they may carry references, and Build
	// assigns the resolved (or synthesized) tag list to the operation.
	var decoded struct {
		OperationID string `yaml:"operationId"`
		Summary     string `yaml:"summary"`
		Description string `yaml:"description"`
		Deprecated  bool   `yaml:"deprecated"`
	}
	if fragment != nil {
		if err := fragment.Decode(&decoded); err != nil {
			return nil, err
		}
	}

	id := decoded.OperationID
	if id == "" {
		id = deriveOperationID(method, path)
	}

	return &Operation{
		ID:          id,
		Method:      strings.ToUpper(method),
		Path:        path,
		Summary:     decoded.Summary,
		Description: decoded.Description,
		Deprecated:  decoded.Deprecated,
	}, nil
}

// deriveOperationID builds a stable identifier from a method and path by
// collapsing every run of non-alphanumeric characters to one underscore.
func deriveOperationID(method, path string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(method) + " " + path {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		} else {
			pending = true
		}
	}
	return b.String()
}
