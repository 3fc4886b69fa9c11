// Package mock provides test doubles for the itinerary engine.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// Source is a configurable mock implementation of domain.CatalogSource.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Source struct {
	name      string
	items     []domain.ContentItem
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewSource creates a new mock catalog source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{
		name: name,
	}
}

// WithItems configures the source to return the given content items.
func (s *Source) WithItems(items []domain.ContentItem) *Source {
	s.items = items
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *Source) Name() string {
	return s.name
}

// Fetch implements domain.CatalogSource.Fetch.
// It respects context cancellation, applies configured delay,
// and returns configured items or error.
func (s *Source) Fetch(ctx context.Context, query domain.CatalogQuery) ([]domain.ContentItem, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}

	return s.items, nil
}

// CallCount returns the number of times Fetch was called.
// This is useful for verifying source interactions.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Source implements domain.CatalogSource at compile time.
var _ domain.CatalogSource = (*Source)(nil)

// SampleItems returns a slice of sample activities for testing.
// The items have all required fields populated with realistic values.
func SampleItems(source, location string, count int) []domain.ContentItem {
	items := make([]domain.ContentItem, count)

	for i := 0; i < count; i++ {
		items[i] = domain.ContentItem{
			ID:       source + "-" + intToString(i+1),
			Kind:     domain.KindActivity,
			Name:     "Sample Activity " + intToString(i+1),
			Location: location,
			Tags:     []string{"culture", "food"},
			Cost: domain.Money{
				Amount:   20 + float64(i*10),
				Currency: "USD",
			},
			Source: source,
			Activity: &domain.ActivityDetails{
				DurationMinutes:      120,
				Difficulty:           domain.DifficultyEasy,
				WheelchairAccessible: true,
				Indoor:               i%2 == 0,
			},
		}
	}

	return items
}

// intToString converts an integer to string without importing strconv.
func intToString(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + intToString(-n)
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
