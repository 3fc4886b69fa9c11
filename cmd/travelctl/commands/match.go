package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/travel-platform/itinerary-engine/internal/adapter/catalog/cityguide"
	"github.com/travel-platform/itinerary-engine/internal/adapter/catalog/daytrip"
	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/usecase"
)

// MatchCmd scores catalog content against a preference file.
func MatchCmd() *cobra.Command {
	var (
		prefsPath string
		top       int
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score catalog content against a preference file",
		Example: `  travelctl match --prefs trip.yaml
  travelctl match --prefs trip.yaml --top 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prefsPath == "" {
				return cmd.Help()
			}

			prefs, err := loadPreferences(prefsPath)
			if err != nil {
				return err
			}

			catalogDir, _ := cmd.Flags().GetString("catalog-dir")
			items, err := fetchCatalogItems(cmd.Context(), catalogDir, prefs)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no catalog content found for destinations %v", prefs.Destinations)
			}

			matcher := usecase.NewMatcher(nil)
			scores := matcher.ScoreBatch(cmd.Context(), items, prefs, usecase.DefaultBatchSize)

			sort.SliceStable(scores, func(i, j int) bool {
				return scores[i].Score > scores[j].Score
			})
			if top > 0 && top < len(scores) {
				scores = scores[:top]
			}

			return printJSON(scores)
		},
	}

	cmd.Flags().StringVar(&prefsPath, "prefs", "", "Path to the YAML preference file (required)")
	cmd.Flags().IntVar(&top, "top", 10, "Number of top matches to print (0 = all)")

	return cmd
}

// fetchCatalogItems gathers content from all catalog files for the
// preferred destinations. A missing catalog file is skipped.
func fetchCatalogItems(ctx context.Context, catalogDir string, prefs domain.TravelPreferences) ([]domain.ContentItem, error) {
	sources := []domain.CatalogSource{
		cityguide.NewAdapter(filepath.Join(catalogDir, "cityguide_catalog.json")),
		daytrip.NewAdapter(filepath.Join(catalogDir, "daytrip_catalog.json")),
	}

	query := domain.CatalogQuery{
		Destinations: prefs.Destinations,
		Interests:    prefs.Interests,
	}

	var items []domain.ContentItem
	var lastErr error
	for _, source := range sources {
		fetched, err := source.Fetch(ctx, query)
		if err != nil {
			lastErr = err
			continue
		}
		items = append(items, fetched...)
	}
	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}
