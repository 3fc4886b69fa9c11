// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// LoadCatalogJSON loads a JSON file from the data/catalog directory.
// This is a convenience function for loading the seed catalogs in tests.
func LoadCatalogJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	catalogPath := filepath.Join(projectRoot, "data", "catalog", filename)

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		t.Fatalf("Failed to load catalog file %s: %v", filename, err)
	}
	return data
}

// CatalogPath returns the absolute path of a file in data/catalog.
func CatalogPath(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "data", "catalog", filename)
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
func FloatPtr(f float64) *float64 {
	return &f
}

// BasePreferences returns a valid preference set tests can tweak.
func BasePreferences() domain.TravelPreferences {
	return domain.TravelPreferences{
		Adults:       2,
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-12",
		BudgetMax:    1200,
		Currency:     "USD",
		Destinations: []string{"Bali"},
		Interests:    []string{"food", "culture"},
		Pace:         domain.PaceModerate,
	}
}
