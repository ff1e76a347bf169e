package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func plansCmd() *cobra.Command {
	var trainerID string

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List plans, optionally for a single trainer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if trainerID != "" {
				plans, err := client.Plans.GetByTrainer(ctx, trainerID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), plans)
			}
			plans, err := client.Plans.GetAll(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), plans)
		},
	}
	cmd.Flags().StringVar(&trainerID, "trainer", "", "only list plans of this trainer ID")
	return cmd
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [id]",
		Short: "Show one plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := client.Plans.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if plan == nil {
				return fmt.Errorf("plan %q not found", args[0])
			}
			return printJSON(cmd.OutOrStdout(), plan)
		},
	}
}
