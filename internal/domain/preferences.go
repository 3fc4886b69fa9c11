package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// TravelPreferences defines what a traveler wants from a generated itinerary.
type TravelPreferences struct {
	// Adults is the number of adult travelers (default: 1)
	Adults int `json:"adults"`

	// Children is the number of child travelers
	Children int `json:"children,omitempty"`

	// Seniors is the number of senior travelers
	Seniors int `json:"seniors,omitempty"`

	// StartDate is the first travel day in YYYY-MM-DD format
	StartDate string `json:"startDate"`

	// EndDate is the last travel day in YYYY-MM-DD format (inclusive)
	EndDate string `json:"endDate"`

	// BudgetMin is the lower bound of the total budget (0 = no lower bound)
	BudgetMin float64 `json:"budgetMin,omitempty"`

	// BudgetMax is the upper bound of the total budget (0 = no upper bound)
	BudgetMax float64 `json:"budgetMax,omitempty"`

	// Currency is the ISO 4217 currency code for the budget (default: USD)
	Currency string `json:"currency,omitempty"`

	// Destinations is the list of places to visit, in order of preference
	Destinations []string `json:"destinations"`

	// Interests is a list of interest tags (e.g., "food", "hiking", "museums")
	Interests []string `json:"interests,omitempty"`

	// AccommodationType is the preferred accommodation (hotel, hostel, villa, guesthouse)
	AccommodationType string `json:"accommodationType,omitempty"`

	// TransportMode is the preferred transport mode (car, train, bus, ferry, flight)
	TransportMode string `json:"transportMode,omitempty"`

	// Pace is the desired schedule density: relaxed, moderate, or packed (default: moderate)
	Pace string `json:"pace,omitempty"`

	// RequiresWheelchairAccess requires all scheduled content to be step-free
	RequiresWheelchairAccess bool `json:"requiresWheelchairAccess,omitempty"`

	// LimitedMobility limits activities to easy difficulty
	LimitedMobility bool `json:"limitedMobility,omitempty"`
}

// Pace values.
const (
	PaceRelaxed  = "relaxed"
	PaceModerate = "moderate"
	PacePacked   = "packed"
)

// prefsDateRegex matches dates in YYYY-MM-DD format.
var prefsDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validPaces defines the allowed pace values.
var validPaces = map[string]bool{
	PaceRelaxed:  true,
	PaceModerate: true,
	PacePacked:   true,
}

// Validate checks if the preferences are valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (p *TravelPreferences) Validate() error {
	if p.Adults < 1 {
		return wrapInvalid("at least one adult traveler is required")
	}
	if p.Children < 0 || p.Seniors < 0 {
		return wrapInvalid("traveler counts cannot be negative")
	}
	if p.Travelers() > 20 {
		return wrapInvalid("total travelers cannot exceed 20")
	}

	if p.StartDate == "" {
		return wrapInvalid("startDate is required")
	}
	if !prefsDateRegex.MatchString(p.StartDate) {
		return wrapInvalid("startDate must be in YYYY-MM-DD format, got %q", p.StartDate)
	}
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return wrapInvalid("startDate is not a valid date: %s", p.StartDate)
	}

	if p.EndDate == "" {
		return wrapInvalid("endDate is required")
	}
	if !prefsDateRegex.MatchString(p.EndDate) {
		return wrapInvalid("endDate must be in YYYY-MM-DD format, got %q", p.EndDate)
	}
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil {
		return wrapInvalid("endDate is not a valid date: %s", p.EndDate)
	}

	if end.Before(start) {
		return wrapInvalid("endDate must not be before startDate")
	}
	if end.Sub(start) > 30*24*time.Hour {
		return wrapInvalid("trips longer than 31 days are not supported")
	}

	if p.BudgetMin < 0 || p.BudgetMax < 0 {
		return wrapInvalid("budget bounds cannot be negative")
	}
	if p.BudgetMax > 0 && p.BudgetMin > p.BudgetMax {
		return wrapInvalid("budgetMin must not exceed budgetMax")
	}

	if len(p.Destinations) == 0 {
		return wrapInvalid("at least one destination is required")
	}
	for _, d := range p.Destinations {
		if strings.TrimSpace(d) == "" {
			return wrapInvalid("destinations cannot contain empty entries")
		}
	}

	if p.Pace != "" && !validPaces[strings.ToLower(p.Pace)] {
		return wrapInvalid("pace must be one of: relaxed, moderate, packed; got %q", p.Pace)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *TravelPreferences) SetDefaults() {
	if p.Adults == 0 {
		p.Adults = 1
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Pace == "" {
		p.Pace = PaceModerate
	}
}

// Travelers returns the total number of travelers.
func (p *TravelPreferences) Travelers() int {
	return p.Adults + p.Children + p.Seniors
}

// TripDates returns one date per trip day, from StartDate through EndDate
// inclusive. The preferences must already be validated.
func (p *TravelPreferences) TripDates() []string {
	start, err := time.Parse("2006-01-02", p.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil || end.Before(start) {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}

// Normalized returns a canonical copy of the preferences suitable for
// fingerprinting: string fields are trimmed and lowercased (currency is
// uppercased) and array-valued fields are sorted so that permuted inputs
// produce an identical value.
func (p *TravelPreferences) Normalized() TravelPreferences {
	out := *p

	out.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	out.AccommodationType = strings.ToLower(strings.TrimSpace(p.AccommodationType))
	out.TransportMode = strings.ToLower(strings.TrimSpace(p.TransportMode))
	out.Pace = strings.ToLower(strings.TrimSpace(p.Pace))

	out.Destinations = normalizeSet(p.Destinations)
	out.Interests = normalizeSet(p.Interests)

	return out
}

// normalizeSet trims, lowercases, deduplicates, and sorts a string slice.
func normalizeSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		norm := strings.ToLower(strings.TrimSpace(v))
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, norm)
	}
	sort.Strings(out)
	return out
}
