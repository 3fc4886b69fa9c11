// Package domain contains the core business entities and rules for the itinerary engine.
// These entities are catalog-agnostic and form the foundation upon which all other
// components are built.
package domain

import "strings"

// ContentKind identifies the type of a content item.
type ContentKind string

// Supported content kinds.
const (
	KindActivity       ContentKind = "activity"
	KindAccommodation  ContentKind = "accommodation"
	KindTransportation ContentKind = "transportation"
	KindDestination    ContentKind = "destination"
)

// IsValid checks if the content kind is a known value.
func (k ContentKind) IsValid() bool {
	switch k {
	case KindActivity, KindAccommodation, KindTransportation, KindDestination:
		return true
	default:
		return false
	}
}

// Money represents a monetary amount with its currency.
type Money struct {
	// Amount is the numeric value
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD", "EUR")
	Currency string `json:"currency"`
}

// ContentItem is a single piece of bookable or visitable travel content.
// Exactly one of the kind-specific detail structs is populated, matching Kind.
type ContentItem struct {
	// ID is a unique identifier for this item (catalog-scoped or generated)
	ID string `json:"id"`

	// Kind identifies the content type
	Kind ContentKind `json:"kind"`

	// Name is the display name (e.g., "Uluwatu Temple Sunset Tour")
	Name string `json:"name"`

	// Description is an optional free-text description
	Description string `json:"description,omitempty"`

	// Location is a human-readable location string (e.g., "Ubud, Bali")
	Location string `json:"location"`

	// Tags are free-form category labels used for interest matching
	Tags []string `json:"tags,omitempty"`

	// Cost is the estimated cost per traveler
	Cost Money `json:"cost"`

	// Source identifies which catalog this item came from
	Source string `json:"source,omitempty"`

	// Activity holds activity-specific fields (Kind == activity)
	Activity *ActivityDetails `json:"activity,omitempty"`

	// Accommodation holds accommodation-specific fields (Kind == accommodation)
	Accommodation *AccommodationDetails `json:"accommodation,omitempty"`

	// Transportation holds transportation-specific fields (Kind == transportation)
	Transportation *TransportationDetails `json:"transportation,omitempty"`

	// Destination holds destination-specific fields (Kind == destination)
	Destination *DestinationDetails `json:"destination,omitempty"`
}

// ActivityDetails contains fields specific to activities.
type ActivityDetails struct {
	// DurationMinutes is the typical duration of the activity
	DurationMinutes int `json:"durationMinutes"`

	// Difficulty is the physical difficulty: easy, moderate, or challenging
	Difficulty string `json:"difficulty,omitempty"`

	// WheelchairAccessible indicates step-free access
	WheelchairAccessible bool `json:"wheelchairAccessible"`

	// Indoor indicates the activity is weather-independent
	Indoor bool `json:"indoor"`
}

// AccommodationDetails contains fields specific to accommodations.
type AccommodationDetails struct {
	// Type is the accommodation type (hotel, hostel, villa, guesthouse)
	Type string `json:"type,omitempty"`

	// StarRating is the star rating (0 when unrated)
	StarRating float64 `json:"starRating,omitempty"`

	// WheelchairAccessible indicates step-free access
	WheelchairAccessible bool `json:"wheelchairAccessible"`
}

// TransportationDetails contains fields specific to transportation.
type TransportationDetails struct {
	// Mode is the transport mode (car, train, bus, ferry, flight)
	Mode string `json:"mode,omitempty"`

	// DurationMinutes is the typical journey duration
	DurationMinutes int `json:"durationMinutes"`
}

// DestinationDetails contains fields specific to destinations.
type DestinationDetails struct {
	// Country is the country name
	Country string `json:"country,omitempty"`

	// Region is an optional region or province
	Region string `json:"region,omitempty"`
}

// Difficulty levels for activities.
const (
	DifficultyEasy        = "easy"
	DifficultyModerate    = "moderate"
	DifficultyChallenging = "challenging"
)

// DifficultyLevel maps a difficulty string to a numeric level (1-3).
// Unknown or empty strings map to easy.
func DifficultyLevel(difficulty string) int {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case DifficultyChallenging:
		return 3
	case DifficultyModerate:
		return 2
	default:
		return 1
	}
}

// DurationMinutes returns the schedulable duration of the item.
// Returns 0 for kinds that do not occupy a time slot.
func (c *ContentItem) DurationMinutes() int {
	switch {
	case c.Activity != nil:
		return c.Activity.DurationMinutes
	case c.Transportation != nil:
		return c.Transportation.DurationMinutes
	default:
		return 0
	}
}

// WheelchairAccessible reports whether the item offers step-free access.
// Kinds without an accessibility flag are treated as accessible.
func (c *ContentItem) WheelchairAccessible() bool {
	switch {
	case c.Activity != nil:
		return c.Activity.WheelchairAccessible
	case c.Accommodation != nil:
		return c.Accommodation.WheelchairAccessible
	default:
		return true
	}
}

// MatchesLocation checks if the item's location contains the given
// destination (case-insensitive substring match).
func (c *ContentItem) MatchesLocation(destination string) bool {
	if destination == "" {
		return true
	}
	return strings.Contains(
		strings.ToLower(c.Location),
		strings.ToLower(strings.TrimSpace(destination)),
	)
}

// Validate checks that the item carries the minimum fields the engine needs.
// Invalid items are skipped by catalog normalizers rather than aborting a batch.
func (c *ContentItem) Validate() error {
	if c.ID == "" {
		return wrapInvalid("content item id is required")
	}
	if c.Name == "" {
		return wrapInvalid("content item name is required")
	}
	if !c.Kind.IsValid() {
		return wrapInvalid("unknown content kind %q", string(c.Kind))
	}
	if c.Cost.Amount < 0 {
		return wrapInvalid("content item cost cannot be negative")
	}
	return nil
}
