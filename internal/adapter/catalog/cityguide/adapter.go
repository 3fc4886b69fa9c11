package cityguide

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/logger"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/retry"
)

// Adapter implements domain.CatalogSource backed by a CityGuide JSON
// catalog file. File loads are retried; unmarshal failures are permanent.
type Adapter struct {
	filePath string
	log      *logger.Logger
}

// NewAdapter creates a CityGuide adapter reading from the given file.
// Skipped-item diagnostics are discarded; use NewAdapterWithLogger to
// capture them.
func NewAdapter(filePath string) *Adapter {
	return NewAdapterWithLogger(filePath, logger.Nop())
}

// NewAdapterWithLogger creates a CityGuide adapter that reports catalog
// places it has to skip through the given logger.
func NewAdapterWithLogger(filePath string, log *logger.Logger) *Adapter {
	return &Adapter{
		filePath: filePath,
		log:      log.WithSource(SourceName),
	}
}

// Name returns the source identifier.
func (a *Adapter) Name() string {
	return SourceName
}

// Fetch loads the catalog and returns items matching the query.
// Items whose location matches none of the query destinations are
// filtered out; with no destinations everything is returned.
func (a *Adapter) Fetch(ctx context.Context, query domain.CatalogQuery) ([]domain.ContentItem, error) {
	doc, err := retry.DoWithResult(ctx, func() (cityGuideDocument, error) {
		return a.load()
	}, retry.CatalogConfig)
	if err != nil {
		return nil, fmt.Errorf("cityguide: load catalog: %w", err)
	}

	items := a.normalize(doc.Catalog.Places)
	return filterByDestination(items, query.Destinations), nil
}

// load reads and parses the catalog file.
func (a *Adapter) load() (cityGuideDocument, error) {
	raw, err := os.ReadFile(a.filePath)
	if err != nil {
		return cityGuideDocument{}, err
	}

	var doc cityGuideDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		// A malformed file will not fix itself between attempts.
		return cityGuideDocument{}, retry.NewPermanent(err)
	}
	return doc, nil
}

// filterByDestination keeps items located at any of the destinations.
func filterByDestination(items []domain.ContentItem, destinations []string) []domain.ContentItem {
	if len(destinations) == 0 {
		return items
	}

	result := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		for _, dest := range destinations {
			if item.MatchesLocation(dest) {
				result = append(result, item)
				break
			}
		}
	}
	return result
}

// Ensure Adapter implements domain.CatalogSource at compile time.
var _ domain.CatalogSource = (*Adapter)(nil)
