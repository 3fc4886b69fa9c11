package http

import (
	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// ItineraryDTO is the data transfer object for generated itineraries.
// It matches the expected API output format with snake_case fields.
type ItineraryDTO struct {
	ID          string             `json:"id"`
	Days        []DayPlanDTO       `json:"days"`
	TotalCost   MoneyDTO           `json:"total_cost"`
	Pricing     *PriceBreakdownDTO `json:"pricing,omitempty"`
	Budget      *BudgetReportDTO   `json:"budget,omitempty"`
	Issues      []PlanIssueDTO     `json:"issues,omitempty"`
	Feasibility float64            `json:"feasibility"`
	Metadata    MetadataDTO        `json:"metadata"`
}

// DayPlanDTO represents one planned day in the response.
type DayPlanDTO struct {
	Destination string          `json:"destination"`
	Date        string          `json:"date"`
	Activities  []ActivityDTO   `json:"activities"`
	Meals       []MealDTO       `json:"meals"`
	FreeSlots   []string        `json:"free_slots,omitempty"`
	TotalCost   MoneyDTO        `json:"total_cost"`
}

// ActivityDTO represents a scheduled activity in the response.
type ActivityDTO struct {
	ContentID string   `json:"content_id"`
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Location  string   `json:"location"`
	TimeSlot  string   `json:"time_slot"`
	Cost      MoneyDTO `json:"cost"`
	Score     float64  `json:"score"`
	Priority  int      `json:"priority"`
}

// MealDTO represents a fixed meal block in the response.
type MealDTO struct {
	Name     string `json:"name"`
	TimeSlot string `json:"time_slot"`
}

// MoneyDTO represents a monetary amount.
type MoneyDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PriceBreakdownDTO represents the dynamic pricing breakdown.
type PriceBreakdownDTO struct {
	BasePrice           float64 `json:"base_price"`
	Currency            string  `json:"currency"`
	SeasonalMultiplier  float64 `json:"seasonal_multiplier"`
	DemandMultiplier    float64 `json:"demand_multiplier"`
	DayOfWeekMultiplier float64 `json:"day_of_week_multiplier"`
	GroupMultiplier     float64 `json:"group_multiplier"`
	AdvanceDiscountPct  float64 `json:"advance_discount_pct"`
	FinalPrice          float64 `json:"final_price"`
	Savings             float64 `json:"savings"`
}

// BudgetReportDTO represents the budget comparison.
type BudgetReportDTO struct {
	Total          float64         `json:"total"`
	Target         float64         `json:"target"`
	OverBudgetBy   float64         `json:"over_budget_by"`
	WithinBudget   bool            `json:"within_budget"`
	ExpensiveItems []string        `json:"expensive_items,omitempty"`
	Suggestions    []SuggestionDTO `json:"suggestions,omitempty"`
}

// SuggestionDTO represents one cost-reduction suggestion.
type SuggestionDTO struct {
	Kind             string  `json:"kind"`
	Message          string  `json:"message"`
	EstimatedSavings float64 `json:"estimated_savings"`
}

// PlanIssueDTO represents a validation issue found in the plan.
type PlanIssueDTO struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Date     string `json:"date,omitempty"`
}

// MetadataDTO contains metadata about the generation execution.
type MetadataDTO struct {
	SourcesQueried      []string `json:"sources_queried"`
	SourcesFailed       []string `json:"sources_failed,omitempty"`
	CandidatesEvaluated int      `json:"candidates_evaluated"`
	GenerationTimeMs    int64    `json:"generation_time_ms"`
	CacheHit            bool     `json:"cache_hit"`
}

// MatchScoreDTO represents one scored content item.
type MatchScoreDTO struct {
	ContentID string   `json:"content_id"`
	Score     float64  `json:"score"`
	Category  string   `json:"category"`
	Reasons   []string `json:"reasons,omitempty"`
}

// ToItineraryDTO converts a domain Itinerary to an ItineraryDTO.
func ToItineraryDTO(itinerary *domain.Itinerary) *ItineraryDTO {
	if itinerary == nil {
		return nil
	}

	dto := &ItineraryDTO{
		ID:          itinerary.ID,
		Days:        make([]DayPlanDTO, len(itinerary.Days)),
		TotalCost:   toMoneyDTO(itinerary.TotalCost),
		Feasibility: itinerary.Feasibility,
		Metadata: MetadataDTO{
			SourcesQueried:      itinerary.Metadata.SourcesQueried,
			SourcesFailed:       itinerary.Metadata.SourcesFailed,
			CandidatesEvaluated: itinerary.Metadata.CandidatesEvaluated,
			GenerationTimeMs:    itinerary.Metadata.GenerationTimeMs,
			CacheHit:            itinerary.Metadata.CacheHit,
		},
	}

	for i, day := range itinerary.Days {
		dto.Days[i] = toDayPlanDTO(day)
	}
	for _, issue := range itinerary.Issues {
		dto.Issues = append(dto.Issues, PlanIssueDTO{
			Severity: issue.Severity,
			Code:     issue.Code,
			Message:  issue.Message,
			Date:     issue.Date,
		})
	}

	if itinerary.Pricing != nil {
		dto.Pricing = toPriceBreakdownDTO(itinerary.Pricing)
	}
	if itinerary.Budget != nil {
		dto.Budget = toBudgetReportDTO(itinerary.Budget)
	}

	return dto
}

// toDayPlanDTO converts a domain DayPlan to a DayPlanDTO.
func toDayPlanDTO(day domain.DayPlan) DayPlanDTO {
	dto := DayPlanDTO{
		Destination: day.Destination,
		Date:        day.Date,
		Activities:  make([]ActivityDTO, len(day.Activities)),
		Meals:       make([]MealDTO, len(day.Meals)),
		TotalCost:   toMoneyDTO(day.TotalCost),
	}

	for i, act := range day.Activities {
		dto.Activities[i] = ActivityDTO{
			ContentID: act.Item.ID,
			Name:      act.Item.Name,
			Kind:      string(act.Item.Kind),
			Location:  act.Item.Location,
			TimeSlot:  act.Slot.String(),
			Cost:      toMoneyDTO(act.Item.Cost),
			Score:     act.Score,
			Priority:  act.Priority,
		}
	}
	for i, meal := range day.Meals {
		dto.Meals[i] = MealDTO{
			Name:     meal.Name,
			TimeSlot: meal.Slot.String(),
		}
	}
	for _, slot := range day.FreeSlots {
		dto.FreeSlots = append(dto.FreeSlots, slot.String())
	}

	return dto
}

// toPriceBreakdownDTO converts a domain PriceBreakdown to its DTO.
func toPriceBreakdownDTO(p *domain.PriceBreakdown) *PriceBreakdownDTO {
	return &PriceBreakdownDTO{
		BasePrice:           p.BasePrice,
		Currency:            p.Currency,
		SeasonalMultiplier:  p.SeasonalMultiplier,
		DemandMultiplier:    p.DemandMultiplier,
		DayOfWeekMultiplier: p.DayOfWeekMultiplier,
		GroupMultiplier:     p.GroupMultiplier,
		AdvanceDiscountPct:  p.AdvanceDiscountPct,
		FinalPrice:          p.FinalPrice,
		Savings:             p.Savings,
	}
}

// toBudgetReportDTO converts a domain BudgetReport to its DTO.
// Expensive items are reduced to their display names.
func toBudgetReportDTO(b *domain.BudgetReport) *BudgetReportDTO {
	dto := &BudgetReportDTO{
		Total:        b.Total,
		Target:       b.Target,
		OverBudgetBy: b.OverBudgetBy,
		WithinBudget: b.WithinBudget(),
	}
	for _, item := range b.ExpensiveItems {
		dto.ExpensiveItems = append(dto.ExpensiveItems, item.Name)
	}
	for _, s := range b.Suggestions {
		dto.Suggestions = append(dto.Suggestions, SuggestionDTO{
			Kind:             s.Kind,
			Message:          s.Message,
			EstimatedSavings: s.EstimatedSavings,
		})
	}
	return dto
}

// toMoneyDTO converts a domain Money to a MoneyDTO.
func toMoneyDTO(m domain.Money) MoneyDTO {
	return MoneyDTO{Amount: m.Amount, Currency: m.Currency}
}

// ToMatchScoreDTOs converts domain match scores to their DTOs.
func ToMatchScoreDTOs(scores []domain.MatchScore) []MatchScoreDTO {
	dtos := make([]MatchScoreDTO, len(scores))
	for i, s := range scores {
		dtos[i] = MatchScoreDTO{
			ContentID: s.ContentID,
			Score:     s.Score,
			Category:  string(s.Category),
			Reasons:   s.Reasons,
		}
	}
	return dtos
}
