// Package http provides the HTTP handler layer for the itinerary engine API.
package http

import (
	"strings"

	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/usecase"
)

// ToDomainPreferences converts a PreferencesDTO to domain.TravelPreferences.
func ToDomainPreferences(dto *PreferencesDTO) domain.TravelPreferences {
	adults := dto.Adults
	if adults < 1 {
		adults = 1
	}

	return domain.TravelPreferences{
		Adults:                   adults,
		Children:                 dto.Children,
		Seniors:                  dto.Seniors,
		StartDate:                dto.StartDate,
		EndDate:                  dto.EndDate,
		BudgetMin:                dto.BudgetMin,
		BudgetMax:                dto.BudgetMax,
		Currency:                 strings.ToUpper(strings.TrimSpace(dto.Currency)),
		Destinations:             dto.Destinations,
		Interests:                dto.Interests,
		AccommodationType:        strings.ToLower(dto.AccommodationType),
		TransportMode:            strings.ToLower(dto.TransportMode),
		Pace:                     strings.ToLower(dto.Pace),
		RequiresWheelchairAccess: dto.RequiresWheelchairAccess,
		LimitedMobility:          dto.LimitedMobility,
	}
}

// ToGenerateOptions converts a GenerateOptionsDTO to usecase.GenerateOptions.
func ToGenerateOptions(dto *GenerateOptionsDTO) usecase.GenerateOptions {
	if dto == nil {
		return usecase.DefaultGenerateOptions()
	}
	return usecase.GenerateOptions{
		SkipCache:    dto.SkipCache,
		TargetBudget: dto.TargetBudget,
	}
}

// ToQuoteRequest converts a QuotePriceRequest to a usecase.QuoteRequest.
func ToQuoteRequest(req *QuotePriceRequest) usecase.QuoteRequest {
	return usecase.QuoteRequest{
		BasePrice:  req.BasePrice,
		Currency:   strings.ToUpper(strings.TrimSpace(req.Currency)),
		TravelDate: req.TravelDate,
		GroupSize:  req.GroupSize,
	}
}
