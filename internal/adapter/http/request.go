// Package http provides the HTTP handler layer for the itinerary engine API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// GenerateItineraryRequest represents the request body for itinerary generation.
type GenerateItineraryRequest struct {
	// Preferences describes what the traveler wants
	Preferences PreferencesDTO `json:"preferences"`

	// Options contains optional generation flags
	Options *GenerateOptionsDTO `json:"options,omitempty"`
}

// PreferencesDTO represents travel preferences in the request body.
type PreferencesDTO struct {
	// Adults is the number of adult travelers (default 1)
	Adults int `json:"adults"`

	// Children is the number of child travelers
	Children int `json:"children,omitempty"`

	// Seniors is the number of senior travelers
	Seniors int `json:"seniors,omitempty"`

	// StartDate is the first travel day in YYYY-MM-DD format
	StartDate string `json:"startDate"`

	// EndDate is the last travel day in YYYY-MM-DD format (inclusive)
	EndDate string `json:"endDate"`

	// BudgetMin is the lower bound of the total budget
	BudgetMin float64 `json:"budgetMin,omitempty"`

	// BudgetMax is the upper bound of the total budget
	BudgetMax float64 `json:"budgetMax,omitempty"`

	// Currency is the ISO 4217 currency code (default USD)
	Currency string `json:"currency,omitempty"`

	// Destinations is the list of places to visit
	Destinations []string `json:"destinations"`

	// Interests is a list of interest tags (e.g., "food", "hiking")
	Interests []string `json:"interests,omitempty"`

	// AccommodationType is the preferred accommodation: hotel, hostel, villa, guesthouse
	AccommodationType string `json:"accommodationType,omitempty"`

	// TransportMode is the preferred transport: car, train, bus, ferry, flight
	TransportMode string `json:"transportMode,omitempty"`

	// Pace is the desired schedule density: relaxed, moderate, packed
	Pace string `json:"pace,omitempty"`

	// RequiresWheelchairAccess requires all scheduled content to be step-free
	RequiresWheelchairAccess bool `json:"requiresWheelchairAccess,omitempty"`

	// LimitedMobility limits activities to easy difficulty
	LimitedMobility bool `json:"limitedMobility,omitempty"`
}

// GenerateOptionsDTO represents optional generation flags.
type GenerateOptionsDTO struct {
	// SkipCache forces a fresh generation even when a cached result exists
	SkipCache bool `json:"skipCache,omitempty"`

	// TargetBudget overrides budgetMax as the budget-report target
	TargetBudget *float64 `json:"targetBudget,omitempty"`
}

// MatchContentRequest represents the request body for scoring inline content.
type MatchContentRequest struct {
	// Preferences describes what the traveler wants
	Preferences PreferencesDTO `json:"preferences"`

	// Items is the content to score against the preferences
	Items []domain.ContentItem `json:"items"`
}

// QuotePriceRequest represents the request body for a pricing quote.
type QuotePriceRequest struct {
	// BasePrice is the undiscounted price to quote from
	BasePrice float64 `json:"basePrice"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// TravelDate is the first travel day in YYYY-MM-DD format
	TravelDate string `json:"travelDate"`

	// GroupSize is the number of travelers (1-20)
	GroupSize int `json:"groupSize"`
}

// ExportItineraryRequest represents the request body for PDF export.
// The itinerary is the full document previously returned by the generate
// endpoint.
type ExportItineraryRequest struct {
	Itinerary domain.Itinerary `json:"itinerary"`
}

// Validation regex patterns.
var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Valid pace values.
var validPaces = map[string]bool{
	"relaxed":  true,
	"moderate": true,
	"packed":   true,
	"":         true, // Empty is valid (defaults to moderate)
}

// Valid accommodation types.
var validAccommodationTypes = map[string]bool{
	"hotel":      true,
	"hostel":     true,
	"villa":      true,
	"guesthouse": true,
	"":           true,
}

// Valid transport modes.
var validTransportModes = map[string]bool{
	"car":    true,
	"train":  true,
	"bus":    true,
	"ferry":  true,
	"flight": true,
	"":       true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the generation request and returns any validation errors.
func (r *GenerateItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Preferences.validate("preferences", errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the match request and returns any validation errors.
func (r *MatchContentRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Preferences.validate("preferences", errs)

	if len(r.Items) == 0 {
		errs.Add("items", "at least one content item is required")
	}
	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			errs.Add(fmt.Sprintf("items[%d]", i), err.Error())
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the quote request and returns any validation errors.
func (r *QuotePriceRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.BasePrice < 0 {
		errs.Add("basePrice", "basePrice must be a non-negative number")
	}

	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		errs.Add("currency", "currency is required")
	} else if !currencyPattern.MatchString(currency) {
		errs.Add("currency", "currency must be a 3-letter ISO 4217 code")
	} else {
		r.Currency = currency // Normalize to uppercase
	}

	validateDateField(errs, "travelDate", r.TravelDate)

	if r.GroupSize < 1 {
		errs.Add("groupSize", "groupSize must be at least 1")
	} else if r.GroupSize > 20 {
		errs.Add("groupSize", "groupSize cannot exceed 20")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the export request and returns any validation errors.
func (r *ExportItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Itinerary.ID == "" {
		errs.Add("itinerary.id", "itinerary id is required")
	}
	if len(r.Itinerary.Days) == 0 {
		errs.Add("itinerary.days", "itinerary must contain at least one day")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validate runs field-level checks on the preferences under the given prefix.
func (p *PreferencesDTO) validate(prefix string, errs *ValidationErrors) {
	field := func(name string) string { return prefix + "." + name }

	if p.Adults < 1 {
		errs.Add(field("adults"), "at least one adult traveler is required")
	}
	if p.Children < 0 {
		errs.Add(field("children"), "children cannot be negative")
	}
	if p.Seniors < 0 {
		errs.Add(field("seniors"), "seniors cannot be negative")
	}
	if p.Adults+p.Children+p.Seniors > 20 {
		errs.Add(field("adults"), "total travelers cannot exceed 20")
	}

	start := validateDateField(errs, field("startDate"), p.StartDate)
	end := validateDateField(errs, field("endDate"), p.EndDate)
	if !start.IsZero() && !end.IsZero() {
		if end.Before(start) {
			errs.Add(field("endDate"), "endDate must not be before startDate")
		} else if end.Sub(start) > 30*24*time.Hour {
			errs.Add(field("endDate"), "trips longer than 31 days are not supported")
		}
	}

	if p.BudgetMin < 0 {
		errs.Add(field("budgetMin"), "budgetMin must be a non-negative number")
	}
	if p.BudgetMax < 0 {
		errs.Add(field("budgetMax"), "budgetMax must be a non-negative number")
	}
	if p.BudgetMax > 0 && p.BudgetMin > p.BudgetMax {
		errs.Add(field("budgetMin"), "budgetMin must not exceed budgetMax")
	}

	if len(p.Destinations) == 0 {
		errs.Add(field("destinations"), "at least one destination is required")
	}
	for i, d := range p.Destinations {
		if strings.TrimSpace(d) == "" {
			errs.Add(fmt.Sprintf("%s[%d]", field("destinations"), i), "destination cannot be empty")
		}
	}

	if !validPaces[strings.ToLower(p.Pace)] {
		errs.Add(field("pace"), "pace must be one of: relaxed, moderate, packed")
	}
	if !validAccommodationTypes[strings.ToLower(p.AccommodationType)] {
		errs.Add(field("accommodationType"), "accommodationType must be one of: hotel, hostel, villa, guesthouse")
	}
	if !validTransportModes[strings.ToLower(p.TransportMode)] {
		errs.Add(field("transportMode"), "transportMode must be one of: car, train, bus, ferry, flight")
	}
}

// validateDateField checks a YYYY-MM-DD date field and returns the parsed
// date, or the zero time when invalid.
func validateDateField(errs *ValidationErrors, field, value string) time.Time {
	if value == "" {
		errs.Add(field, field+" is required")
		return time.Time{}
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}
	}
	return t
}
