package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/housebuilder/internal/builder"
	"github.com/mesh-intelligence/housebuilder/internal/director"
	"github.com/mesh-intelligence/housebuilder/internal/session"
	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

// buildResult is the JSON shape printed by "build --json".
type buildResult struct {
	BuildID     string      `json:"build_id"`
	Builder     string      `json:"builder"`
	Plan        string      `json:"plan"`
	House       types.House `json:"house"`
	Description string      `json:"description"`
}

func newBuildCmd(a *app) *cobra.Command {
	var (
		kind     string
		planName string
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one house from a pre-made plan",
		Long: `Build one house by applying a pre-made plan to a builder, without prompts.
The builder and plan default to default_builder and default_plan from config.yaml.`,
		Example: `  housebuilder build --builder fancy --plan family
  housebuilder build --plan basic --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" {
				kind = a.cfg.DefaultBuilder
			}
			if planName == "" {
				planName = a.cfg.DefaultPlan
			}

			b, err := builder.New(kind)
			if err != nil {
				return err
			}
			plan, err := director.Lookup(planName)
			if err != nil {
				return err
			}

			house := director.New().Apply(plan, b)

			id, err := uuid.NewV7()
			if err != nil {
				return sysErr(fmt.Errorf("generate build id: %w", err))
			}
			a.logger.Info("house built",
				zap.String("build_id", id.String()),
				zap.String("builder", kind),
				zap.String("plan", plan.Name),
				zap.String("house", house.Describe()))

			out := cmd.OutOrStdout()
			if jsonMode {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(buildResult{
					BuildID:     id.String(),
					Builder:     kind,
					Plan:        plan.Name,
					House:       house,
					Description: house.Describe(),
				})
			}

			p := session.NewPrinter(out, a.cfg.Color)
			p.OK("%s built the %s", builder.Title(kind), plan.Title)
			p.Card("Your house", house.Describe())
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "builder", "b", "", "builder kind: simple or fancy")
	cmd.Flags().StringVarP(&planName, "plan", "p", "", "plan name: basic or family")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output as JSON")
	return cmd
}
