package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/logger"
)

// Default timeout values.
const (
	DefaultGlobalTimeout = 10 * time.Second
	DefaultSourceTimeout = 3 * time.Second
)

// ItineraryUseCase defines the interface for itinerary generation.
type ItineraryUseCase interface {
	// Generate builds a complete itinerary from travel preferences.
	// It gathers content from all registered catalog sources with the
	// Scatter-Gather pattern, scores it, plans each day, and prices the result.
	Generate(ctx context.Context, prefs domain.TravelPreferences, opts GenerateOptions) (*domain.Itinerary, error)
}

// ResultCache caches generated itineraries keyed by a preference fingerprint.
// The cache package provides the in-memory TTL implementation.
type ResultCache interface {
	Get(key string) (*domain.Itinerary, bool)
	Set(key string, value *domain.Itinerary)
}

// KeyFunc derives a stable cache key from travel preferences.
type KeyFunc func(domain.TravelPreferences) string

// Config contains configuration options for the use case.
type Config struct {
	GlobalTimeout time.Duration
	SourceTimeout time.Duration
	BatchSize     int
	MinScore      float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		SourceTimeout: DefaultSourceTimeout,
		BatchSize:     DefaultBatchSize,
		MinScore:      0.25,
	}
}

// itineraryUseCase implements ItineraryUseCase.
type itineraryUseCase struct {
	sources []domain.CatalogSource
	matcher *Matcher
	planner *Planner
	pricer  *PricingEngine
	cache   ResultCache
	keyFn   KeyFunc

	globalTimeout time.Duration
	sourceTimeout time.Duration
	batchSize     int
	minScore      float64
}

// NewItineraryUseCase creates the generation use case.
// cache and keyFn may be nil together to disable result caching.
// If config is nil, default values are used.
func NewItineraryUseCase(
	sources []domain.CatalogSource,
	matcher *Matcher,
	planner *Planner,
	pricer *PricingEngine,
	cache ResultCache,
	keyFn KeyFunc,
	config *Config,
) ItineraryUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.SourceTimeout > 0 {
			cfg.SourceTimeout = config.SourceTimeout
		}
		if config.BatchSize > 0 {
			cfg.BatchSize = config.BatchSize
		}
		if config.MinScore > 0 {
			cfg.MinScore = config.MinScore
		}
	}

	return &itineraryUseCase{
		sources:       sources,
		matcher:       matcher,
		planner:       planner,
		pricer:        pricer,
		cache:         cache,
		keyFn:         keyFn,
		globalTimeout: cfg.GlobalTimeout,
		sourceTimeout: cfg.SourceTimeout,
		batchSize:     cfg.BatchSize,
		minScore:      cfg.MinScore,
	}
}

// sourceResult holds the result from a single catalog source query.
type sourceResult struct {
	Source string
	Items  []domain.ContentItem
	Error  error
}

// Generate implements ItineraryUseCase.Generate.
func (uc *itineraryUseCase) Generate(ctx context.Context, prefs domain.TravelPreferences, opts GenerateOptions) (*domain.Itinerary, error) {
	startTime := time.Now()

	prefs.SetDefaults()
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	// Cache lookup before any catalog work.
	var cacheKey string
	if uc.cache != nil && uc.keyFn != nil {
		cacheKey = uc.keyFn(prefs)
		if !opts.SkipCache {
			if cached, ok := uc.cache.Get(cacheKey); ok {
				hit := *cached
				hit.Metadata.CacheHit = true
				hit.Metadata.GenerationTimeMs = time.Since(startTime).Milliseconds()
				return &hit, nil
			}
		}
	}

	if len(uc.sources) == 0 {
		return nil, domain.ErrAllCatalogsFailed
	}

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	candidates, queried, failed, err := uc.gatherContent(ctx, prefs)
	if err != nil {
		return nil, err
	}

	// Score everything and keep candidates above the threshold.
	scores := uc.matcher.ScoreBatch(ctx, candidates, prefs, uc.batchSize)

	scored := make([]ScoredCandidate, 0, len(candidates))
	for i, item := range candidates {
		if scores[i].Score >= uc.minScore {
			scored = append(scored, ScoredCandidate{Item: item, Score: scores[i].Score})
		}
	}
	if len(scored) == 0 {
		if len(candidates) == 0 {
			// Every source answered and none carries content for these
			// destinations.
			return nil, fmt.Errorf("%w: %v", domain.ErrDestinationUnknown, prefs.Destinations)
		}
		return nil, fmt.Errorf("%w: %d items evaluated", domain.ErrNoCandidates, len(candidates))
	}

	itinerary := &domain.Itinerary{
		ID:          uuid.New().String(),
		Preferences: prefs,
		Metadata: domain.GenerationMetadata{
			SourcesQueried:      queried,
			SourcesFailed:       failed,
			CandidatesEvaluated: len(candidates),
		},
	}

	uc.planDays(itinerary, prefs, scored)
	if len(itinerary.Days) == 0 {
		return nil, fmt.Errorf("%w: no day could be planned", domain.ErrNoCandidates)
	}

	uc.priceItinerary(itinerary, prefs, opts)

	itinerary.Feasibility = FeasibilityScore(itinerary.Issues)
	itinerary.Metadata.GenerationTimeMs = time.Since(startTime).Milliseconds()

	if uc.cache != nil && cacheKey != "" {
		uc.cache.Set(cacheKey, itinerary)
	}

	return itinerary, nil
}

// gatherContent queries all catalog sources concurrently (Scatter-Gather)
// and aggregates their items. Returns ErrAllCatalogsFailed when every
// source failed.
func (uc *itineraryUseCase) gatherContent(ctx context.Context, prefs domain.TravelPreferences) (items []domain.ContentItem, queried, failed []string, err error) {
	query := domain.CatalogQuery{
		Destinations: prefs.Destinations,
		Interests:    prefs.Interests,
	}

	// Buffered channel to prevent goroutine blocking
	resultsChan := make(chan sourceResult, len(uc.sources))

	var wg sync.WaitGroup
	for _, source := range uc.sources {
		wg.Add(1)
		go func(s domain.CatalogSource) {
			defer wg.Done()
			uc.querySource(ctx, s, query, resultsChan)
		}(source)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for result := range resultsChan {
		queried = append(queried, result.Source)
		if result.Error != nil {
			logger.Warn().
				Str("source", result.Source).
				Err(result.Error).
				Msg("Catalog source failed")
			failed = append(failed, result.Source)
			continue
		}
		items = append(items, result.Items...)
	}

	if len(failed) == len(uc.sources) {
		return nil, queried, failed, domain.ErrAllCatalogsFailed
	}

	return items, queried, failed, nil
}

// querySource queries a single catalog source with timeout and panic recovery.
func (uc *itineraryUseCase) querySource(ctx context.Context, source domain.CatalogSource, query domain.CatalogQuery, results chan<- sourceResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.sourceTimeout)
	defer cancel()

	name := source.Name()

	// Panic recovery so one source cannot crash the whole generation
	defer func() {
		if r := recover(); r != nil {
			results <- sourceResult{
				Source: name,
				Error:  fmt.Errorf("catalog source panic: %v", r),
			}
		}
	}()

	items, err := source.Fetch(ctx, query)

	results <- sourceResult{
		Source: name,
		Items:  items,
		Error:  err,
	}
}

// planDays builds one day plan per trip date, rotating through the
// requested destinations and consuming candidates so the same item is
// not scheduled twice.
func (uc *itineraryUseCase) planDays(itinerary *domain.Itinerary, prefs domain.TravelPreferences, scored []ScoredCandidate) {
	dates := prefs.TripDates()
	used := make(map[string]bool)

	dayBudget := 0.0
	if prefs.BudgetMax > 0 && len(dates) > 0 {
		dayBudget = prefs.BudgetMax / float64(len(dates))
	}

	currency := prefs.Currency
	for i, date := range dates {
		destination := prefs.Destinations[i%len(prefs.Destinations)]

		// Candidates for this destination that are still unscheduled.
		var pool []ScoredCandidate
		for _, cand := range scored {
			if used[cand.Item.ID] {
				continue
			}
			if cand.Item.MatchesLocation(destination) {
				pool = append(pool, cand)
			}
		}

		plan, err := uc.planner.BuildDayPlan(destination, date, pool)
		if err != nil {
			// An unplannable day is reported as an issue, not a failure.
			itinerary.Issues = append(itinerary.Issues, domain.PlanIssue{
				Severity: domain.SeverityWarning,
				Code:     domain.IssueScheduleSparse,
				Message:  fmt.Sprintf("no activities available for %s", destination),
				Date:     date,
			})
			continue
		}

		for _, act := range plan.Activities {
			used[act.Item.ID] = true
		}

		itinerary.Issues = append(itinerary.Issues, ValidateDayPlan(plan, dayBudget)...)
		itinerary.TotalCost.Amount += plan.TotalCost.Amount
		if plan.TotalCost.Currency != "" {
			currency = plan.TotalCost.Currency
		}
		itinerary.Days = append(itinerary.Days, plan)
	}
	itinerary.TotalCost.Amount = roundCents(itinerary.TotalCost.Amount)
	itinerary.TotalCost.Currency = currency
}

// priceItinerary attaches the price breakdown and budget report.
func (uc *itineraryUseCase) priceItinerary(itinerary *domain.Itinerary, prefs domain.TravelPreferences, opts GenerateOptions) {
	quote, err := uc.pricer.Quote(QuoteRequest{
		BasePrice:  itinerary.TotalCost.Amount,
		Currency:   itinerary.TotalCost.Currency,
		TravelDate: prefs.StartDate,
		GroupSize:  prefs.Travelers(),
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Pricing failed; itinerary returned without breakdown")
	} else {
		itinerary.Pricing = &quote
	}

	target := prefs.BudgetMax
	if opts.TargetBudget != nil {
		target = *opts.TargetBudget
	}
	if target > 0 {
		itinerary.Budget = BuildBudgetReport(itinerary, target)
	}
}

// Ensure itineraryUseCase implements ItineraryUseCase at compile time.
var _ ItineraryUseCase = (*itineraryUseCase)(nil)
