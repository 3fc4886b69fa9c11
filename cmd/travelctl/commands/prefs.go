// Package commands implements the travelctl subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// prefsFile is the YAML schema of a preference file.
type prefsFile struct {
	Adults                   int      `yaml:"adults"`
	Children                 int      `yaml:"children"`
	Seniors                  int      `yaml:"seniors"`
	StartDate                string   `yaml:"start_date"`
	EndDate                  string   `yaml:"end_date"`
	BudgetMin                float64  `yaml:"budget_min"`
	BudgetMax                float64  `yaml:"budget_max"`
	Currency                 string   `yaml:"currency"`
	Destinations             []string `yaml:"destinations"`
	Interests                []string `yaml:"interests"`
	AccommodationType        string   `yaml:"accommodation_type"`
	TransportMode            string   `yaml:"transport_mode"`
	Pace                     string   `yaml:"pace"`
	RequiresWheelchairAccess bool     `yaml:"requires_wheelchair_access"`
	LimitedMobility          bool     `yaml:"limited_mobility"`
}

// loadPreferences reads and validates a YAML preference file.
func loadPreferences(path string) (domain.TravelPreferences, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.TravelPreferences{}, fmt.Errorf("read preferences file: %w", err)
	}

	var file prefsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return domain.TravelPreferences{}, fmt.Errorf("parse preferences file: %w", err)
	}

	prefs := domain.TravelPreferences{
		Adults:                   file.Adults,
		Children:                 file.Children,
		Seniors:                  file.Seniors,
		StartDate:                file.StartDate,
		EndDate:                  file.EndDate,
		BudgetMin:                file.BudgetMin,
		BudgetMax:                file.BudgetMax,
		Currency:                 file.Currency,
		Destinations:             file.Destinations,
		Interests:                file.Interests,
		AccommodationType:        file.AccommodationType,
		TransportMode:            file.TransportMode,
		Pace:                     file.Pace,
		RequiresWheelchairAccess: file.RequiresWheelchairAccess,
		LimitedMobility:          file.LimitedMobility,
	}
	prefs.SetDefaults()
	if err := prefs.Validate(); err != nil {
		return domain.TravelPreferences{}, err
	}
	return prefs, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
