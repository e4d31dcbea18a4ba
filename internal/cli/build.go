package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolah/resourcery/internal/config"
	"github.com/kolah/resourcery/internal/loader"
	"github.com/kolah/resourcery/resource"
)

// buildResources runs the shared pipeline of every command: load config,
// load the spec, group its operations, drop filtered-out tags.
func buildResources(cmd *cobra.Command) (*config.Config, *loader.Result, map[string]*resource.Resource, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	result, err := loader.LoadFile(cfg.Spec, cfg.ValidateDoc)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	opts := resource.DefaultOptions()
	opts.StrictIDs = cfg.StrictIDs
	opts.Logger = newLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	resources, err := resource.Build(result.Spec, opts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("building resources: %w", err)
	}

	for tag := range resources {
		if !cfg.Allowed(tag) {
			delete(resources, tag)
		}
	}

	return cfg, result, resources, nil
}
