// Package daytrip adapts the DayTrip experiences feed to the engine's
// CatalogSource interface. DayTrip publishes a flat JSON array of
// experiences with a schema unlike CityGuide's, so it has its own
// normalizer.
package daytrip

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/logger"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/retry"
)

// SourceName is the unique identifier for the DayTrip catalog source.
const SourceName = "daytrip"

// dayTripExperience is one entry in the DayTrip feed.
type dayTripExperience struct {
	// ID is the DayTrip identifier
	ID string `json:"id"`

	// Category is one of: experience, stay, ride
	Category string `json:"category"`

	// Name is the display name
	Name string `json:"name"`

	// Desc is a short description
	Desc string `json:"desc,omitempty"`

	// Location is a free-form location string (e.g., "Ubud, Bali")
	Location string `json:"location"`

	// Tags are free-form category labels
	Tags []string `json:"tags,omitempty"`

	// CostAmount and CostCurrency give the per-person cost
	CostAmount   float64 `json:"cost_amount"`
	CostCurrency string  `json:"cost_currency"`

	// Minutes is the typical duration
	Minutes int `json:"minutes,omitempty"`

	// Level is the difficulty: easy, moderate, challenging
	Level string `json:"level,omitempty"`

	// Accessible indicates step-free access
	Accessible bool `json:"accessible,omitempty"`

	// Indoor indicates a weather-independent experience
	Indoor bool `json:"indoor,omitempty"`

	// Rating is the star rating (stays)
	Rating float64 `json:"rating,omitempty"`

	// LodgingType is hotel, hostel, villa, guesthouse (stays)
	LodgingType string `json:"lodging_type,omitempty"`

	// Mode is car, train, bus, ferry, flight (rides)
	Mode string `json:"mode,omitempty"`
}

// Adapter implements domain.CatalogSource backed by a DayTrip JSON feed file.
type Adapter struct {
	filePath string
	log      *logger.Logger
}

// NewAdapter creates a DayTrip adapter reading from the given file.
// Skipped-entry diagnostics are discarded; use NewAdapterWithLogger to
// capture them.
func NewAdapter(filePath string) *Adapter {
	return NewAdapterWithLogger(filePath, logger.Nop())
}

// NewAdapterWithLogger creates a DayTrip adapter that reports feed
// entries it has to skip through the given logger.
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

// Fetch loads the feed and returns items matching the query.
func (a *Adapter) Fetch(ctx context.Context, query domain.CatalogQuery) ([]domain.ContentItem, error) {
	experiences, err := retry.DoWithResult(ctx, func() ([]dayTripExperience, error) {
		return a.load()
	}, retry.CatalogConfig)
	if err != nil {
		return nil, fmt.Errorf("daytrip: load feed: %w", err)
	}

	items := a.normalize(experiences)

	if len(query.Destinations) == 0 {
		return items, nil
	}
	result := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		for _, dest := range query.Destinations {
			if item.MatchesLocation(dest) {
				result = append(result, item)
				break
			}
		}
	}
	return result, nil
}

// load reads and parses the feed file.
func (a *Adapter) load() ([]dayTripExperience, error) {
	raw, err := os.ReadFile(a.filePath)
	if err != nil {
		return nil, err
	}

	var experiences []dayTripExperience
	if err := json.Unmarshal(raw, &experiences); err != nil {
		return nil, retry.NewPermanent(err)
	}
	return experiences, nil
}

// normalize converts DayTrip experiences to domain content items.
// Entries that cannot be normalized are skipped and logged.
func (a *Adapter) normalize(experiences []dayTripExperience) []domain.ContentItem {
	result := make([]domain.ContentItem, 0, len(experiences))
	for _, e := range experiences {
		item, err := normalizeExperience(e)
		if err != nil {
			a.log.Warn().
				Str("experience_id", e.ID).
				Err(err).
				Msg("Skipping malformed feed entry")
			continue
		}
		result = append(result, item)
	}
	return result
}

// normalizeExperience converts a single DayTrip experience.
func normalizeExperience(e dayTripExperience) (domain.ContentItem, error) {
	item := domain.ContentItem{
		ID:          SourceName + "-" + e.ID,
		Name:        e.Name,
		Description: e.Desc,
		Location:    e.Location,
		Tags:        e.Tags,
		Cost: domain.Money{
			Amount:   e.CostAmount,
			Currency: strings.ToUpper(e.CostCurrency),
		},
		Source: SourceName,
	}

	switch strings.ToLower(strings.TrimSpace(e.Category)) {
	case "experience":
		item.Kind = domain.KindActivity
		item.Activity = &domain.ActivityDetails{
			DurationMinutes:      e.Minutes,
			Difficulty:           strings.ToLower(e.Level),
			WheelchairAccessible: e.Accessible,
			Indoor:               e.Indoor,
		}
	case "stay":
		item.Kind = domain.KindAccommodation
		item.Accommodation = &domain.AccommodationDetails{
			Type:                 strings.ToLower(e.LodgingType),
			StarRating:           e.Rating,
			WheelchairAccessible: e.Accessible,
		}
	case "ride":
		item.Kind = domain.KindTransportation
		item.Transportation = &domain.TransportationDetails{
			Mode:            strings.ToLower(e.Mode),
			DurationMinutes: e.Minutes,
		}
	default:
		return domain.ContentItem{}, fmt.Errorf("unknown category %q", e.Category)
	}

	if err := item.Validate(); err != nil {
		return domain.ContentItem{}, err
	}
	return item, nil
}

// Ensure Adapter implements domain.CatalogSource at compile time.
var _ domain.CatalogSource = (*Adapter)(nil)
