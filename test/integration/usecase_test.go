package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-platform/itinerary-engine/internal/adapter/catalog/cityguide"
	"github.com/travel-platform/itinerary-engine/internal/adapter/catalog/daytrip"
	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/usecase"
	"github.com/travel-platform/itinerary-engine/test/mock"
	"github.com/travel-platform/itinerary-engine/test/testutil"
)

// catalogSources builds the two real file-backed catalog adapters over the
// seed data shipped with the repository.
func catalogSources(t *testing.T) []domain.CatalogSource {
	t.Helper()
	return []domain.CatalogSource{
		cityguide.NewAdapter(testutil.CatalogPath(t, "cityguide_catalog.json")),
		daytrip.NewAdapter(testutil.CatalogPath(t, "daytrip_catalog.json")),
	}
}

// TestEngine_GenerateFromSeedCatalogs runs the full generation pipeline over
// the real catalog adapters and the seed data files.
func TestEngine_GenerateFromSeedCatalogs(t *testing.T) {
	uc := CreateEngine(catalogSources(t))

	itinerary, err := uc.Generate(context.Background(), testutil.BasePreferences(), usecase.DefaultGenerateOptions())
	require.NoError(t, err)
	require.NotNil(t, itinerary)

	assert.NotEmpty(t, itinerary.ID)
	require.Len(t, itinerary.Days, 3, "one plan per trip date")
	assert.Equal(t, "2026-09-10", itinerary.Days[0].Date)
	assert.Equal(t, "2026-09-12", itinerary.Days[2].Date)

	for _, day := range itinerary.Days {
		assert.Equal(t, "Bali", day.Destination)
		assert.NotEmpty(t, day.Activities, "each planned day has at least one activity")
	}

	// Both catalogs contribute Bali content; the cityguide catalog carries
	// five Bali places and the day-trip feed another five.
	assert.ElementsMatch(t, []string{"cityguide", "daytrip"}, itinerary.Metadata.SourcesQueried)
	assert.Empty(t, itinerary.Metadata.SourcesFailed)
	assert.Equal(t, 10, itinerary.Metadata.CandidatesEvaluated)
	assert.False(t, itinerary.Metadata.CacheHit)

	assert.Greater(t, itinerary.TotalCost.Amount, 0.0)
	assert.Equal(t, "USD", itinerary.TotalCost.Currency)
	assert.Greater(t, itinerary.Feasibility, 0.0)
	assert.LessOrEqual(t, itinerary.Feasibility, 1.0)
}

// TestEngine_NoItemScheduledTwice verifies that consuming candidates across
// days never schedules the same content item on two dates.
func TestEngine_NoItemScheduledTwice(t *testing.T) {
	uc := CreateEngine(catalogSources(t))

	itinerary, err := uc.Generate(context.Background(), testutil.BasePreferences(), usecase.DefaultGenerateOptions())
	require.NoError(t, err)

	seen := make(map[string]string)
	for _, day := range itinerary.Days {
		for _, act := range day.Activities {
			if firstDate, dup := seen[act.Item.ID]; dup {
				t.Errorf("item %s scheduled on both %s and %s", act.Item.ID, firstDate, day.Date)
			}
			seen[act.Item.ID] = day.Date
		}
	}
}

// TestEngine_PricingAndBudgetAttached checks that the generated itinerary
// carries a price breakdown and a budget report against budgetMax.
func TestEngine_PricingAndBudgetAttached(t *testing.T) {
	uc := CreateEngine(catalogSources(t))

	itinerary, err := uc.Generate(context.Background(), testutil.BasePreferences(), usecase.DefaultGenerateOptions())
	require.NoError(t, err)

	require.NotNil(t, itinerary.Pricing)
	assert.Equal(t, itinerary.TotalCost.Amount, itinerary.Pricing.BasePrice)
	assert.Equal(t, 1.10, itinerary.Pricing.SeasonalMultiplier, "September is shoulder season")
	assert.Greater(t, itinerary.Pricing.FinalPrice, 0.0)

	require.NotNil(t, itinerary.Budget)
	assert.Equal(t, 1200.0, itinerary.Budget.Target)
}

// TestEngine_TargetBudgetProducesSuggestions forces an impossible target
// budget and expects cost-reduction suggestions.
func TestEngine_TargetBudgetProducesSuggestions(t *testing.T) {
	uc := CreateEngine(catalogSources(t))

	opts := usecase.DefaultGenerateOptions()
	opts.TargetBudget = testutil.FloatPtr(10)

	itinerary, err := uc.Generate(context.Background(), testutil.BasePreferences(), opts)
	require.NoError(t, err)

	require.NotNil(t, itinerary.Budget)
	assert.Equal(t, 10.0, itinerary.Budget.Target)
	assert.False(t, itinerary.Budget.WithinBudget())
	assert.NotEmpty(t, itinerary.Budget.Suggestions)
}

// TestEngine_MultiDestinationRoundRobin rotates trip days through the
// requested destinations.
func TestEngine_MultiDestinationRoundRobin(t *testing.T) {
	uc := CreateEngine(catalogSources(t))

	prefs := testutil.BasePreferences()
	prefs.Destinations = []string{"Bali", "Kyoto"}

	itinerary, err := uc.Generate(context.Background(), prefs, usecase.DefaultGenerateOptions())
	require.NoError(t, err)

	require.Len(t, itinerary.Days, 3)
	assert.Equal(t, "Bali", itinerary.Days[0].Destination)
	assert.Equal(t, "Kyoto", itinerary.Days[1].Destination)
	assert.Equal(t, "Bali", itinerary.Days[2].Destination)
}

// TestEngine_UnknownDestination yields no candidates.
func TestEngine_UnknownDestination(t *testing.T) {
	uc := CreateEngine(catalogSources(t))

	prefs := testutil.BasePreferences()
	prefs.Destinations = []string{"Reykjavik"}

	itinerary, err := uc.Generate(context.Background(), prefs, usecase.DefaultGenerateOptions())
	assert.ErrorIs(t, err, domain.ErrNoCandidates)
	assert.ErrorIs(t, err, domain.ErrDestinationUnknown, "no catalog covers Reykjavik")
	assert.Nil(t, itinerary)
}

// TestEngine_PartialSourceFailure keeps generating when one catalog fails.
func TestEngine_PartialSourceFailure(t *testing.T) {
	sources := []domain.CatalogSource{
		cityguide.NewAdapter(testutil.CatalogPath(t, "cityguide_catalog.json")),
		daytrip.NewAdapter(testutil.CatalogPath(t, "missing_feed.json")),
	}
	uc := CreateEngine(sources)

	itinerary, err := uc.Generate(context.Background(), testutil.BasePreferences(), usecase.DefaultGenerateOptions())
	require.NoError(t, err)

	assert.Contains(t, itinerary.Metadata.SourcesFailed, "daytrip")
	assert.Equal(t, 5, itinerary.Metadata.CandidatesEvaluated, "only cityguide content remains")
}

// TestEngine_SlowSourceTimesOut drops a source that exceeds the per-source
// timeout while the fast source still serves the request.
func TestEngine_SlowSourceTimesOut(t *testing.T) {
	slow := mock.NewSource("slowpoke").
		WithDelay(500 * time.Millisecond).
		WithItems(mock.SampleItems("slowpoke", "Ubud, Bali", 4))
	fast := mock.NewSource("speedy").
		WithItems(mock.SampleItems("speedy", "Ubud, Bali", 6))

	uc := CreateEngineWithConfig([]domain.CatalogSource{slow, fast}, &usecase.Config{
		SourceTimeout: 50 * time.Millisecond,
	})

	itinerary, err := uc.Generate(context.Background(), testutil.BasePreferences(), usecase.DefaultGenerateOptions())
	require.NoError(t, err)

	assert.Contains(t, itinerary.Metadata.SourcesFailed, "slowpoke")
	assert.Equal(t, 6, itinerary.Metadata.CandidatesEvaluated)
}

// TestEngine_AllSourcesFail surfaces ErrAllCatalogsFailed.
func TestEngine_AllSourcesFail(t *testing.T) {
	sources := []domain.CatalogSource{
		mock.NewSource("broken-a").WithError(errors.New("disk on fire")),
		mock.NewSource("broken-b").WithError(errors.New("schema drift")),
	}
	uc := CreateEngine(sources)

	itinerary, err := uc.Generate(context.Background(), testutil.BasePreferences(), usecase.DefaultGenerateOptions())
	assert.ErrorIs(t, err, domain.ErrAllCatalogsFailed)
	assert.Nil(t, itinerary)
}
