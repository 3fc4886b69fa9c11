// Package cityguide adapts the CityGuide content catalog to the
// engine's CatalogSource interface. The catalog is a JSON document with
// its own place schema that is normalized into domain content items.
package cityguide

// cityGuideDocument is the top-level structure of a CityGuide catalog file.
type cityGuideDocument struct {
	Catalog cityGuideCatalog `json:"catalog"`
}

// cityGuideCatalog holds the catalog version and its places.
type cityGuideCatalog struct {
	Version string           `json:"version"`
	Places  []cityGuidePlace `json:"places"`
}

// cityGuidePlace is one entry in the CityGuide schema.
type cityGuidePlace struct {
	// PlaceID is the CityGuide identifier
	PlaceID string `json:"place_id"`

	// Type is one of: activity, stay, transfer, destination
	Type string `json:"type"`

	// Title is the display name
	Title string `json:"title"`

	// Summary is a short description
	Summary string `json:"summary,omitempty"`

	// City and Country locate the place
	City    string `json:"city"`
	Country string `json:"country,omitempty"`

	// Labels are free-form category labels
	Labels []string `json:"labels,omitempty"`

	// Price is the estimated cost per person
	Price cityGuidePrice `json:"price"`

	// DurationMin is the typical duration in minutes (activities, transfers)
	DurationMin int `json:"duration_min,omitempty"`

	// Difficulty is easy, moderate, or challenging (activities)
	Difficulty string `json:"difficulty,omitempty"`

	// WheelchairOK indicates step-free access
	WheelchairOK bool `json:"wheelchair_ok,omitempty"`

	// Indoor indicates a weather-independent activity
	Indoor bool `json:"indoor,omitempty"`

	// Stars is the star rating (stays)
	Stars float64 `json:"stars,omitempty"`

	// StayType is hotel, hostel, villa, or guesthouse (stays)
	StayType string `json:"stay_type,omitempty"`

	// TransportMode is car, train, bus, ferry, or flight (transfers)
	TransportMode string `json:"transport_mode,omitempty"`
}

// cityGuidePrice is the CityGuide price representation.
type cityGuidePrice struct {
	Value        float64 `json:"value"`
	CurrencyCode string  `json:"currency_code"`
}
