package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// PreferenceKey derives a stable cache key from travel preferences.
// The preferences are normalized first (array fields sorted, string fields
// canonicalized), so permuted interests or destinations hash identically.
func PreferenceKey(prefs domain.TravelPreferences) string {
	normalized := prefs.Normalized()
	return Key(normalized)
}

// Key derives a SHA-256 hex key from any JSON-serializable value.
// Map-free struct values serialize deterministically with encoding/json,
// which keeps the key stable across processes.
func Key(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		// Marshal only fails on unsupported types; fall back to the
		// type's string form so callers still get a usable key.
		raw = []byte(fmt.Sprintf("%#v", v))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
