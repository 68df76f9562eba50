package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/housebuilder/internal/builder"
	"github.com/mesh-intelligence/housebuilder/internal/director"
	"github.com/mesh-intelligence/housebuilder/internal/session"
)

func newCompareCmd(a *app) *cobra.Command {
	var planName string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Apply one plan to every builder and show the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if planName == "" {
				planName = a.cfg.DefaultPlan
			}
			plan, err := director.Lookup(planName)
			if err != nil {
				return err
			}

			p := session.NewPrinter(cmd.OutOrStdout(), a.cfg.Color)
			p.Heading(fmt.Sprintf("%s with every builder:", plan.Title))
			for _, c := range director.New().Compare(plan) {
				p.Line(fmt.Sprintf("%s Result: %s", builder.Title(c.Builder), c.House.Describe()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&planName, "plan", "p", "", "plan name: basic or family")
	return cmd
}
