package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/travel-platform/itinerary-engine/internal/adapter/catalog/cityguide"
	"github.com/travel-platform/itinerary-engine/internal/adapter/catalog/daytrip"
	"github.com/travel-platform/itinerary-engine/internal/adapter/export"
	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/usecase"
)

// PlanCmd generates an itinerary from a YAML preference file.
func PlanCmd() *cobra.Command {
	var (
		prefsPath string
		pdfPath   string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an itinerary from a preference file",
		Example: `  travelctl plan --prefs trip.yaml
  travelctl plan --prefs trip.yaml --catalog-dir ./data/catalog --pdf itinerary.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prefsPath == "" {
				return cmd.Help()
			}

			prefs, err := loadPreferences(prefsPath)
			if err != nil {
				return err
			}

			catalogDir, _ := cmd.Flags().GetString("catalog-dir")
			engine := buildEngine(catalogDir)

			itinerary, err := engine.Generate(context.Background(), prefs, usecase.DefaultGenerateOptions())
			if err != nil {
				return fmt.Errorf("generate itinerary: %w", err)
			}

			if pdfPath != "" {
				document, err := export.NewPDFRenderer().Render(itinerary)
				if err != nil {
					return fmt.Errorf("render pdf: %w", err)
				}
				if err := os.WriteFile(pdfPath, document, 0o644); err != nil {
					return fmt.Errorf("write pdf: %w", err)
				}
				fmt.Fprintf(os.Stderr, "wrote %s\n", pdfPath)
			}

			return printJSON(itinerary)
		},
	}

	cmd.Flags().StringVar(&prefsPath, "prefs", "", "Path to the YAML preference file (required)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write the itinerary as a PDF to this path")

	return cmd
}

// buildEngine wires the engine components against the catalog directory.
// The CLI runs without a result cache; every invocation is a fresh plan.
func buildEngine(catalogDir string) usecase.ItineraryUseCase {
	sources := []domain.CatalogSource{
		cityguide.NewAdapter(filepath.Join(catalogDir, "cityguide_catalog.json")),
		daytrip.NewAdapter(filepath.Join(catalogDir, "daytrip_catalog.json")),
	}

	return usecase.NewItineraryUseCase(
		sources,
		usecase.NewMatcher(nil),
		usecase.NewPlanner(nil),
		usecase.NewPricingEngine(nil),
		nil,
		nil,
		nil,
	)
}
