package domain

import "context"

// CatalogQuery narrows a catalog fetch to the places and interests
// relevant for one generation request.
type CatalogQuery struct {
	// Destinations limits results to items located at these places.
	// Empty means no destination filtering.
	Destinations []string

	// Interests hints which tags the caller cares about. Sources may use
	// it to pre-filter; the matcher re-scores everything regardless.
	Interests []string
}

// CatalogSource supplies content items for itinerary generation.
// Implementations must honor context cancellation and are expected to
// skip (not fail on) individual malformed items.
type CatalogSource interface {
	// Name returns the unique identifier of this source.
	Name() string

	// Fetch returns the content items matching the query.
	Fetch(ctx context.Context, query CatalogQuery) ([]ContentItem, error)
}
