package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/housebuilder/pkg/housebuilder"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the housebuilder version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "housebuilder v%s\nmodule: %s\n", housebuilder.Version, housebuilder.ModulePath)
			return nil
		},
	}
}
