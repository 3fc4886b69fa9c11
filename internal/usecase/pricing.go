package usecase

import (
	"fmt"
	"time"

	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/timeutil"
)

// Seasonal multipliers by month band.
const (
	highSeasonMultiplier     = 1.25
	shoulderSeasonMultiplier = 1.10
	lowSeasonMultiplier      = 0.90
)

// Demand multipliers.
const (
	peakDemandMultiplier   = 1.15
	normalDemandMultiplier = 1.00
	softDemandMultiplier   = 0.90
)

// Day-of-week multipliers.
const (
	weekendPremiumMultiplier  = 1.10
	midweekDiscountMultiplier = 0.95
	standardDayMultiplier     = 1.00
)

// Group-size multiplier tiers. Groups of ten or more always get the
// deepest tier.
const (
	smallGroupMultiplier  = 1.00
	mediumGroupMultiplier = 0.95
	largeGroupMultiplier  = 0.90
	bulkGroupMultiplier   = 0.85
)

// Advance-booking discount tiers, in percent.
const (
	advance90DaysPct = 15.0
	advance60DaysPct = 10.0
	advance30DaysPct = 5.0
)

// QuoteRequest is the input to a pricing quote.
type QuoteRequest struct {
	// BasePrice is the undiscounted price to quote from
	BasePrice float64

	// Currency is the ISO 4217 currency code
	Currency string

	// TravelDate is the first travel day in YYYY-MM-DD format
	TravelDate string

	// GroupSize is the number of travelers
	GroupSize int
}

// Validate checks the quote request.
func (q *QuoteRequest) Validate() error {
	if q.BasePrice < 0 {
		return fmt.Errorf("%w: basePrice cannot be negative", domain.ErrInvalidRequest)
	}
	if q.GroupSize < 1 {
		return fmt.Errorf("%w: groupSize must be at least 1", domain.ErrInvalidRequest)
	}
	if _, err := time.Parse("2006-01-02", q.TravelDate); err != nil {
		return fmt.Errorf("%w: travelDate must be a valid YYYY-MM-DD date, got %q", domain.ErrInvalidRequest, q.TravelDate)
	}
	return nil
}

// PricingEngine computes dynamic prices from a base price and travel context.
// The clock is injected so advance-booking windows are testable.
type PricingEngine struct {
	clock timeutil.Clock
}

// NewPricingEngine creates a PricingEngine.
// If clock is nil, the real system clock is used.
func NewPricingEngine(clock timeutil.Clock) *PricingEngine {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &PricingEngine{clock: clock}
}

// Quote computes the full price breakdown for a request.
//
// FinalPrice = BasePrice × seasonal × demand × day-of-week × group,
// then reduced by the advance-booking discount percentage.
//
// Guarantees:
//   - GroupSize >= 10 always yields a group multiplier <= 0.85
//   - Booking >= 90 days ahead always yields >= 15% advance discount
func (e *PricingEngine) Quote(req QuoteRequest) (domain.PriceBreakdown, error) {
	if err := req.Validate(); err != nil {
		return domain.PriceBreakdown{}, err
	}

	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return domain.PriceBreakdown{}, fmt.Errorf("%w: travelDate: %v", domain.ErrInvalidRequest, err)
	}

	breakdown := domain.PriceBreakdown{
		BasePrice:           req.BasePrice,
		Currency:            req.Currency,
		SeasonalMultiplier:  seasonalMultiplier(travelDate.Month()),
		DemandMultiplier:    demandMultiplier(travelDate),
		DayOfWeekMultiplier: dayOfWeekMultiplier(travelDate.Weekday()),
		GroupMultiplier:     groupMultiplier(req.GroupSize),
		AdvanceDiscountPct:  e.advanceDiscountPct(travelDate),
	}

	price := req.BasePrice *
		breakdown.SeasonalMultiplier *
		breakdown.DemandMultiplier *
		breakdown.DayOfWeekMultiplier *
		breakdown.GroupMultiplier

	price -= price * breakdown.AdvanceDiscountPct / 100

	breakdown.FinalPrice = roundCents(price)
	if breakdown.BasePrice > breakdown.FinalPrice {
		breakdown.Savings = roundCents(breakdown.BasePrice - breakdown.FinalPrice)
	}

	return breakdown, nil
}

// seasonalMultiplier maps a month to its season band.
// June-August and December are high season; April, May, September, and
// October are shoulder season; the rest is low season.
func seasonalMultiplier(month time.Month) float64 {
	switch month {
	case time.June, time.July, time.August, time.December:
		return highSeasonMultiplier
	case time.April, time.May, time.September, time.October:
		return shoulderSeasonMultiplier
	default:
		return lowSeasonMultiplier
	}
}

// demandMultiplier estimates demand for the travel date: weekend starts
// in high season run hot, midweek low-season starts run soft.
func demandMultiplier(date time.Time) float64 {
	weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
	high := seasonalMultiplier(date.Month()) == highSeasonMultiplier

	switch {
	case weekend && high:
		return peakDemandMultiplier
	case !weekend && !high:
		return softDemandMultiplier
	default:
		return normalDemandMultiplier
	}
}

// dayOfWeekMultiplier prices Friday/Saturday at a premium and
// Tuesday/Wednesday at a discount.
func dayOfWeekMultiplier(day time.Weekday) float64 {
	switch day {
	case time.Friday, time.Saturday:
		return weekendPremiumMultiplier
	case time.Tuesday, time.Wednesday:
		return midweekDiscountMultiplier
	default:
		return standardDayMultiplier
	}
}

// groupMultiplier applies tiered group-size discounts.
func groupMultiplier(size int) float64 {
	switch {
	case size >= 10:
		return bulkGroupMultiplier
	case size >= 7:
		return largeGroupMultiplier
	case size >= 4:
		return mediumGroupMultiplier
	default:
		return smallGroupMultiplier
	}
}

// advanceDiscountPct returns the tiered advance-booking discount based
// on full days between now and the travel date.
func (e *PricingEngine) advanceDiscountPct(travelDate time.Time) float64 {
	now := e.clock.Now().Truncate(24 * time.Hour)
	days := int(travelDate.Sub(now).Hours() / 24)

	switch {
	case days >= 90:
		return advance90DaysPct
	case days >= 60:
		return advance60DaysPct
	case days >= 30:
		return advance30DaysPct
	default:
		return 0
	}
}

// roundCents rounds a price to two decimal places.
func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
