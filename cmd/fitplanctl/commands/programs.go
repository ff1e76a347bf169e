package commands

import (
	"github.com/spf13/cobra"
)

func workoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workouts [plan-id]",
		Short: "List the workouts of a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts, err := client.Programs.GetWorkouts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), workouts)
		},
	}
}

func dietCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diet [plan-id]",
		Short: "List the meals of a plan's diet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meals, err := client.Programs.GetDiet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), meals)
		},
	}
}

func progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress [user-id]",
		Short: "Show a user's weight and BMI log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := client.Progress.GetProgress(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), entries)
		},
	}
}
