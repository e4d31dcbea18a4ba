package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "resourcery",
		Short:   "Resourcery - group OpenAPI operations into named resources",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(ListCommand(), ShowCommand())

	return root
}
