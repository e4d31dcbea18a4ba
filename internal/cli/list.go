package cli

import (
	"github.com/spf13/cobra"

	"github.com/kolah/resourcery/internal/config"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the resources of an OpenAPI spec and their operations",
		RunE:  runList,
	}

	config.BindCommonFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, result, resources, err := buildResources(cmd)
	if err != nil {
		return err
	}

	if info := result.Document.Model.Info; info != nil {
		cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, info.Title, info.Version)
	}
	cmd.PrintErrf("  Resources: %d\n", len(resources))

	return writeResources(cmd.OutOrStdout(), resources, cfg.Output.Format)
}
