package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the itinerary engine.
// Wrap these with fmt.Errorf("%w: details") to add context while
// keeping errors.Is checks working at the handler layer.
var (
	// ErrInvalidRequest indicates the request failed domain validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAllCatalogsFailed indicates every catalog source failed or timed out.
	ErrAllCatalogsFailed = errors.New("all catalog sources failed")

	// ErrNoCandidates indicates no content item survived scoring for the
	// requested destinations.
	ErrNoCandidates = errors.New("no candidate content matched the preferences")

	// ErrDestinationUnknown is the ErrNoCandidates case where the
	// catalogs returned nothing at all for the requested destinations.
	// errors.Is against ErrNoCandidates still matches, so handlers need
	// no extra mapping.
	ErrDestinationUnknown = fmt.Errorf("%w: no catalog covers the requested destinations", ErrNoCandidates)

	// ErrEmptyPlan indicates day planning produced no schedulable activities.
	ErrEmptyPlan = errors.New("day plan has no activities")
)

// wrapInvalid wraps ErrInvalidRequest with a formatted detail message.
func wrapInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidRequest}, args...)...)
}
