// Package resource groups the operations of a parsed API description into
// named resources. Operations are grouped by their declared tags; an
// operation with several tags belongs to several resources, and an operation
// with none is filed under a name derived from its path.
package resource

import (
	"fmt"
	"log/slog"

	"go.yaml.in/yaml/v4"
)

// httpMethods are the path-item keys that name operations.
var httpMethods = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
	"trace":   true,
	"query":   true, // OpenAPI 3.2
}

// Build walks the document's paths and returns its operations grouped by tag
// name. The result is owned by the caller; building twice from the same
// document yields equal groupings. Any resolution, construction, or mapping
// error aborts the whole build.
func Build(doc Document, opts *Options) (map[string]*Resource, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	factory := opts.Factory
	if factory == nil {
		factory = DefaultFactory()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	paths, err := doc.Lookup(doc.Root(), "paths")
	if err != nil {
		return nil, fmt.Errorf("resolving paths: %w", err)
	}

	pathEntries, err := doc.Entries(paths)
	if err != nil {
		return nil, fmt.Errorf("iterating paths: %w", err)
	}

	byTag := make(map[string]map[string]*Operation)
	for _, pathEntry := range pathEntries {
		methods, err := doc.Entries(pathEntry.Value)
		if err != nil {
			return nil, fmt.Errorf("iterating path %s: %w", pathEntry.Key, err)
		}
		for _, method := range methods {
			// A path item also carries shared metadata at this level
			// (parameters, summary, description, servers, extensions);
			// only method-keyed entries are operations.
			if !httpMethods[method.Key] {
				continue
			}

			op, err := factory.NewOperation(doc, pathEntry.Key, method.Key, method.Value)
			if err != nil {
				return nil, fmt.Errorf("building operation %s %s: %w", method.Key, pathEntry.Key, err)
			}

			tagsNode, err := doc.Lookup(method.Value, "tags")
			if err != nil {
				return nil, err
			}
			tags, err := doc.StringList(tagsNode)
			if err != nil {
				return nil, err
			}
			if len(tags) == 0 {
				name, err := NameFromPath(pathEntry.Key)
				if err != nil {
					return nil, err
				}
				tags = []string{name}
			}
			op.Tags = tags

			for _, tag := range tags {
				bucket := byTag[tag]
				if bucket == nil {
					bucket = make(map[string]*Operation)
					byTag[tag] = bucket
				}
				if _, taken := bucket[op.ID]; taken && opts.StrictIDs {
					return nil, &DuplicateOperationError{Tag: tag, ID: op.ID}
				}
				bucket[op.ID] = op
			}
		}
	}

	descriptions, err := tagDescriptions(doc)
	if err != nil {
		return nil, err
	}

	resources := make(map[string]*Resource, len(byTag))
	for tag, ops := range byTag {
		logger.Debug("building resource", "name", tag, "operations", len(ops))
		r := NewResource(tag, ops)
		r.description = descriptions[tag]
		resources[tag] = r
	}
	return resources, nil
}

// tagDescriptions reads the document's top-level tag declarations.
func tagDescriptions(doc Document) (map[string]string, error) {
	node, err := doc.Lookup(doc.Root(), "tags")
	if err != nil || node == nil || node.Kind != yaml.SequenceNode {
		return nil, err
	}

	descriptions := make(map[string]string)
	for _, item := range node.Content {
		name, err := doc.Lookup(item, "name")
		if err != nil {
			return nil, err
		}
		if name == nil || name.Kind != yaml.ScalarNode {
			continue
		}
		description, err := doc.Lookup(item, "description")
		if err != nil {
			return nil, err
		}
		if description != nil && description.Kind == yaml.ScalarNode {
			descriptions[name.Value] = description.Value
		}
	}
	return descriptions, nil
}
