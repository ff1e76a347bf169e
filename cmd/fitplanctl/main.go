package main

import (
	"os"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/cmd/fitplanctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
