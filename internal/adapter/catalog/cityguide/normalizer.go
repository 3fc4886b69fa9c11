package cityguide

import (
	"fmt"
	"strings"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// SourceName is the unique identifier for the CityGuide catalog source.
const SourceName = "cityguide"

// normalize converts CityGuide places to domain content items.
// Places that cannot be normalized are skipped and logged rather than
// failing the batch.
func (a *Adapter) normalize(places []cityGuidePlace) []domain.ContentItem {
	result := make([]domain.ContentItem, 0, len(places))

	for _, p := range places {
		item, err := normalizePlace(p)
		if err != nil {
			a.log.Warn().
				Str("place_id", p.PlaceID).
				Err(err).
				Msg("Skipping malformed catalog place")
			continue
		}
		result = append(result, item)
	}

	return result
}

// normalizePlace converts a single CityGuide place to a domain content item.
func normalizePlace(p cityGuidePlace) (domain.ContentItem, error) {
	kind, err := normalizeKind(p.Type)
	if err != nil {
		return domain.ContentItem{}, err
	}

	item := domain.ContentItem{
		ID:          SourceName + "-" + p.PlaceID,
		Kind:        kind,
		Name:        p.Title,
		Description: p.Summary,
		Location:    formatLocation(p.City, p.Country),
		Tags:        p.Labels,
		Cost: domain.Money{
			Amount:   p.Price.Value,
			Currency: strings.ToUpper(p.Price.CurrencyCode),
		},
		Source: SourceName,
	}

	switch kind {
	case domain.KindActivity:
		item.Activity = &domain.ActivityDetails{
			DurationMinutes:      p.DurationMin,
			Difficulty:           strings.ToLower(p.Difficulty),
			WheelchairAccessible: p.WheelchairOK,
			Indoor:               p.Indoor,
		}
	case domain.KindAccommodation:
		item.Accommodation = &domain.AccommodationDetails{
			Type:                 strings.ToLower(p.StayType),
			StarRating:           p.Stars,
			WheelchairAccessible: p.WheelchairOK,
		}
	case domain.KindTransportation:
		item.Transportation = &domain.TransportationDetails{
			Mode:            strings.ToLower(p.TransportMode),
			DurationMinutes: p.DurationMin,
		}
	case domain.KindDestination:
		item.Destination = &domain.DestinationDetails{
			Country: p.Country,
		}
	}

	if err := item.Validate(); err != nil {
		return domain.ContentItem{}, err
	}
	return item, nil
}

// normalizeKind maps a CityGuide place type to a domain content kind.
func normalizeKind(placeType string) (domain.ContentKind, error) {
	switch strings.ToLower(strings.TrimSpace(placeType)) {
	case "activity", "experience", "tour":
		return domain.KindActivity, nil
	case "stay", "lodging":
		return domain.KindAccommodation, nil
	case "transfer", "transport":
		return domain.KindTransportation, nil
	case "destination", "city":
		return domain.KindDestination, nil
	default:
		return "", fmt.Errorf("unknown place type %q", placeType)
	}
}

// formatLocation joins city and country into a single location string.
func formatLocation(city, country string) string {
	if country == "" {
		return city
	}
	return city + ", " + country
}
