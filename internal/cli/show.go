package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolah/resourcery/internal/config"
	"github.com/kolah/resourcery/resource"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <resource>",
		Short: "Show a single resource and its operations",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	config.BindCommonFlags(cmd)
	cmd.Flags().String("operation", "", "Show a single operation by id")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, _, resources, err := buildResources(cmd)
	if err != nil {
		return err
	}

	r, ok := resources[args[0]]
	if !ok {
		names := make([]string, 0, len(resources))
		for name := range resources {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown resource %q (have: %s)", args[0], strings.Join(names, ", "))
	}

	if opName, _ := cmd.Flags().GetString("operation"); opName != "" {
		op, err := r.Operation(opName)
		if err != nil {
			return err
		}
		return writeOperation(cmd.OutOrStdout(), op, cfg.Output.Format)
	}

	return writeResources(cmd.OutOrStdout(), map[string]*resource.Resource{r.Name(): r}, cfg.Output.Format)
}
