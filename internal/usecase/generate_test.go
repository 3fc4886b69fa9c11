package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/cache"
	"github.com/travel-platform/itinerary-engine/test/mock"
)

// newGenerateUseCase wires a use case with real collaborators around the
// given sources. resultCache may be nil to disable caching.
func newGenerateUseCase(sources []domain.CatalogSource, resultCache ResultCache) ItineraryUseCase {
	var keyFn KeyFunc
	if resultCache != nil {
		keyFn = cache.PreferenceKey
	}
	return NewItineraryUseCase(
		sources,
		NewMatcher(nil),
		NewPlanner(nil),
		NewPricingEngine(nil),
		resultCache,
		keyFn,
		nil,
	)
}

// generateTestPreferences returns a three-day Bali trip.
func generateTestPreferences() domain.TravelPreferences {
	return domain.TravelPreferences{
		Adults:       2,
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-12",
		BudgetMax:    900,
		Currency:     "USD",
		Destinations: []string{"Bali"},
		Interests:    []string{"food", "culture"},
		Pace:         domain.PaceModerate,
	}
}

func TestGenerate_Success(t *testing.T) {
	sources := []domain.CatalogSource{
		mock.NewSource("cityguide").WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 4)),
		mock.NewSource("daytrip").WithItems(mock.SampleItems("daytrip", "Seminyak, Bali", 4)),
	}

	uc := newGenerateUseCase(sources, nil)
	itinerary, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})

	require.NoError(t, err)
	require.NotNil(t, itinerary)

	assert.NotEmpty(t, itinerary.ID)
	assert.Len(t, itinerary.Days, 3, "one plan per trip day")
	assert.Greater(t, itinerary.TotalCost.Amount, 0.0)
	assert.Equal(t, "USD", itinerary.TotalCost.Currency)

	require.NotNil(t, itinerary.Pricing)
	assert.Greater(t, itinerary.Pricing.FinalPrice, 0.0)

	assert.ElementsMatch(t, []string{"cityguide", "daytrip"}, itinerary.Metadata.SourcesQueried)
	assert.Empty(t, itinerary.Metadata.SourcesFailed)
	assert.Equal(t, 8, itinerary.Metadata.CandidatesEvaluated)
	assert.False(t, itinerary.Metadata.CacheHit)

	assert.GreaterOrEqual(t, itinerary.Feasibility, 0.0)
	assert.LessOrEqual(t, itinerary.Feasibility, 1.0)
}

func TestGenerate_NoItemScheduledTwice(t *testing.T) {
	sources := []domain.CatalogSource{
		mock.NewSource("cityguide").WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 6)),
	}

	uc := newGenerateUseCase(sources, nil)
	itinerary, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, day := range itinerary.Days {
		for _, act := range day.Activities {
			assert.False(t, seen[act.Item.ID], "item %s scheduled twice", act.Item.ID)
			seen[act.Item.ID] = true
		}
	}
}

func TestGenerate_CacheHit(t *testing.T) {
	source := mock.NewSource("cityguide").WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 6))

	resultCache := cache.New[*domain.Itinerary](cache.Config{TTL: time.Hour})
	defer resultCache.Close()

	uc := newGenerateUseCase([]domain.CatalogSource{source}, resultCache)
	prefs := generateTestPreferences()

	first, err := uc.Generate(context.Background(), prefs, GenerateOptions{})
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)
	assert.Equal(t, 1, source.CallCount())

	second, err := uc.Generate(context.Background(), prefs, GenerateOptions{})
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.ID, second.ID, "cached itinerary is returned as-is")
	assert.Equal(t, 1, source.CallCount(), "catalog must not be re-queried on a hit")
}

func TestGenerate_CacheHitWithPermutedPreferences(t *testing.T) {
	source := mock.NewSource("cityguide").WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 6))

	resultCache := cache.New[*domain.Itinerary](cache.Config{TTL: time.Hour})
	defer resultCache.Close()

	uc := newGenerateUseCase([]domain.CatalogSource{source}, resultCache)

	prefs := generateTestPreferences()
	_, err := uc.Generate(context.Background(), prefs, GenerateOptions{})
	require.NoError(t, err)

	permuted := generateTestPreferences()
	permuted.Interests = []string{"culture", "food"}

	second, err := uc.Generate(context.Background(), permuted, GenerateOptions{})
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit, "permuted interests must hash to the same key")
	assert.Equal(t, 1, source.CallCount())
}

func TestGenerate_SkipCache(t *testing.T) {
	source := mock.NewSource("cityguide").WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 6))

	resultCache := cache.New[*domain.Itinerary](cache.Config{TTL: time.Hour})
	defer resultCache.Close()

	uc := newGenerateUseCase([]domain.CatalogSource{source}, resultCache)
	prefs := generateTestPreferences()

	_, err := uc.Generate(context.Background(), prefs, GenerateOptions{})
	require.NoError(t, err)

	fresh, err := uc.Generate(context.Background(), prefs, GenerateOptions{SkipCache: true})
	require.NoError(t, err)
	assert.False(t, fresh.Metadata.CacheHit)
	assert.Equal(t, 2, source.CallCount(), "SkipCache must force regeneration")
}

func TestGenerate_AllSourcesFail(t *testing.T) {
	sources := []domain.CatalogSource{
		mock.NewSource("cityguide").WithError(errors.New("file unreadable")),
		mock.NewSource("daytrip").WithError(errors.New("malformed json")),
	}

	uc := newGenerateUseCase(sources, nil)
	itinerary, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})

	assert.ErrorIs(t, err, domain.ErrAllCatalogsFailed)
	assert.Nil(t, itinerary)
}

func TestGenerate_PartialSourceFailure(t *testing.T) {
	sources := []domain.CatalogSource{
		mock.NewSource("cityguide").WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 6)),
		mock.NewSource("daytrip").WithError(errors.New("file unreadable")),
	}

	uc := newGenerateUseCase(sources, nil)
	itinerary, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})

	require.NoError(t, err, "one healthy source is enough")
	assert.Contains(t, itinerary.Metadata.SourcesFailed, "daytrip")
	assert.ElementsMatch(t, []string{"cityguide", "daytrip"}, itinerary.Metadata.SourcesQueried)
}

func TestGenerate_NoSources(t *testing.T) {
	uc := newGenerateUseCase(nil, nil)
	_, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrAllCatalogsFailed)
}

func TestGenerate_NoCandidates(t *testing.T) {
	// Far away, off-interest, over budget, and far too long: every factor
	// bottoms out and the score lands under the acceptance threshold.
	offItems := []domain.ContentItem{
		{
			ID:       "ski-1",
			Kind:     domain.KindActivity,
			Name:     "Glacier Ski Expedition",
			Location: "Reykjavik, Iceland",
			Tags:     []string{"skiing"},
			Cost:     domain.Money{Amount: 5000, Currency: "USD"},
			Activity: &domain.ActivityDetails{
				DurationMinutes:      600,
				Difficulty:           domain.DifficultyChallenging,
				WheelchairAccessible: false,
			},
		},
	}

	uc := newGenerateUseCase([]domain.CatalogSource{
		mock.NewSource("cityguide").WithItems(offItems),
	}, nil)

	_, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrNoCandidates)
	assert.NotErrorIs(t, err, domain.ErrDestinationUnknown,
		"content was evaluated, it just scored too low")
}

func TestGenerate_UncoveredDestination(t *testing.T) {
	// A healthy source with no content at all for the requested
	// destinations is a coverage gap, not a scoring miss.
	uc := newGenerateUseCase([]domain.CatalogSource{mock.NewSource("cityguide")}, nil)

	_, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrDestinationUnknown)
	assert.ErrorIs(t, err, domain.ErrNoCandidates,
		"the handler keeps mapping it to the no-candidates response")
}

func TestGenerate_InvalidPreferences(t *testing.T) {
	uc := newGenerateUseCase([]domain.CatalogSource{mock.NewSource("cityguide")}, nil)

	prefs := generateTestPreferences()
	prefs.Destinations = nil

	_, err := uc.Generate(context.Background(), prefs, GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestGenerate_SlowSourceTimesOut(t *testing.T) {
	slow := mock.NewSource("cityguide").
		WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 4)).
		WithDelay(500 * time.Millisecond)

	uc := NewItineraryUseCase(
		[]domain.CatalogSource{slow},
		NewMatcher(nil),
		NewPlanner(nil),
		NewPricingEngine(nil),
		nil,
		nil,
		&Config{SourceTimeout: 50 * time.Millisecond},
	)

	_, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrAllCatalogsFailed)
}

func TestGenerate_TargetBudgetOverride(t *testing.T) {
	sources := []domain.CatalogSource{
		mock.NewSource("cityguide").WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 6)),
	}

	uc := newGenerateUseCase(sources, nil)

	target := 10.0
	itinerary, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{
		TargetBudget: &target,
	})
	require.NoError(t, err)

	require.NotNil(t, itinerary.Budget)
	assert.Equal(t, target, itinerary.Budget.Target)
	assert.False(t, itinerary.Budget.WithinBudget(), "a 10 target must be exceeded")
	assert.NotEmpty(t, itinerary.Budget.Suggestions)
}

func TestGenerate_UnplannableDayReportedAsIssue(t *testing.T) {
	// Two items fill the first day; later days have nothing left.
	sources := []domain.CatalogSource{
		mock.NewSource("cityguide").WithItems(mock.SampleItems("cityguide", "Ubud, Bali", 2)),
	}

	uc := newGenerateUseCase(sources, nil)
	itinerary, err := uc.Generate(context.Background(), generateTestPreferences(), GenerateOptions{})

	require.NoError(t, err)
	assert.Less(t, len(itinerary.Days), 3)

	sparse := 0
	for _, issue := range itinerary.Issues {
		if issue.Code == domain.IssueScheduleSparse {
			sparse++
		}
	}
	assert.Greater(t, sparse, 0, "unplannable days must surface as issues")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultGlobalTimeout, cfg.GlobalTimeout)
	assert.Equal(t, DefaultSourceTimeout, cfg.SourceTimeout)
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, 0.25, cfg.MinScore)
}
