package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/kolah/resourcery/resource"
)

type resourceView struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Operations  []operationView `json:"operations" yaml:"operations"`
}

type operationView struct {
	ID         string `json:"id" yaml:"id"`
	Method     string `json:"method" yaml:"method"`
	Path       string `json:"path" yaml:"path"`
	Summary    string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

func viewOf(r *resource.Resource) resourceView {
	view := resourceView{
		Name:        r.Name(),
		Description: r.Description(),
	}
	for _, id := range r.OperationNames() {
		op, err := r.Operation(id)
		if err != nil {
			continue
		}
		view.Operations = append(view.Operations, operationView{
			ID:         op.ID,
			Method:     op.Method,
			Path:       op.Path,
			Summary:    op.Summary,
			Deprecated: op.Deprecated,
		})
	}
	return view
}

func writeResources(w io.Writer, resources map[string]*resource.Resource, format string) error {
	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]resourceView, 0, len(names))
	for _, name := range names {
		views = append(views, viewOf(resources[name]))
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(views)
	default:
		for _, view := range views {
			if view.Description != "" {
				fmt.Fprintf(w, "%s: %s (%d operations)\n", view.Name, view.Description, len(view.Operations))
			} else {
				fmt.Fprintf(w, "%s (%d operations)\n", view.Name, len(view.Operations))
			}
			for _, op := range view.Operations {
				writeOperationLine(w, op)
			}
		}
		return nil
	}
}

func writeOperation(w io.Writer, op *resource.Operation, format string) error {
	view := operationView{
		ID:         op.ID,
		Method:     op.Method,
		Path:       op.Path,
		Summary:    op.Summary,
		Deprecated: op.Deprecated,
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(view)
	default:
		writeOperationLine(w, view)
		return nil
	}
}

func writeOperationLine(w io.Writer, op operationView) {
	line := fmt.Sprintf("  %-7s %-32s %s", op.Method, op.Path, op.ID)
	if op.Deprecated {
		line += " (deprecated)"
	}
	fmt.Fprintln(w, line)
}
