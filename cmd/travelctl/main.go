// Package main is the entry point for the travelctl CLI, a local frontend
// to the itinerary engine for planning, matching, and pricing without a
// running server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/travel-platform/itinerary-engine/cmd/travelctl/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "travelctl",
		Short: "Itinerary engine CLI - plan trips, score content, and quote prices",
		Long:  "A local-first CLI that runs the itinerary engine against JSON content catalogs: generate day-by-day plans from a YAML preference file, score content, and compute dynamic price quotes.",
	}

	root.PersistentFlags().String("catalog-dir", "data/catalog", "Directory holding the catalog JSON files")

	root.AddCommand(commands.PlanCmd())
	root.AddCommand(commands.MatchCmd())
	root.AddCommand(commands.QuoteCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print travelctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("travelctl v1.0.0")
		},
	}
}
