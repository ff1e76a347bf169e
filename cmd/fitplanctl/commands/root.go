// Package commands implements fitplanctl, which runs the API facade
// in-process over a freshly seeded in-memory store.
package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository/memory"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/service"
)

var client *service.Client

// NewRootCmd builds the command tree. Each invocation gets its own seeded store.
func NewRootCmd() *cobra.Command {
	var withLatency bool

	root := &cobra.Command{
		Use:          "fitplanctl",
		Short:        "Browse the FitPlan Hub sample data",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			latency := service.Latency{}
			if withLatency {
				latency = service.DefaultLatency()
			}
			store := memory.NewSeededDataStore()
			client = service.NewClient(store.Repositories(), nil, latency)
		},
	}
	root.PersistentFlags().BoolVar(&withLatency, "latency", false, "simulate the default per-operation delays")

	root.AddCommand(plansCmd(), planCmd(), loginCmd(), subscriptionsCmd(),
		workoutsCmd(), dietCmd(), progressCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
