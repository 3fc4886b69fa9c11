package usecase

import (
	"fmt"
	"sort"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// maxExpensiveItems caps how many line items a budget report flags.
const maxExpensiveItems = 3

// Estimated savings fractions for suggestions.
const (
	dateShiftSavingsShare = 0.15
	swapItemSavingsShare  = 0.60
)

// BuildBudgetReport compares an itinerary's total cost against a target
// budget and, when over budget, flags the most expensive line items and
// emits cost-reduction suggestions.
//
// Behavior:
//   - Target <= 0 returns a report with no suggestions
//   - At most three expensive items are flagged, most expensive first
//   - Suggestions carry rough estimated savings, not guarantees
func BuildBudgetReport(itinerary *domain.Itinerary, target float64) *domain.BudgetReport {
	report := &domain.BudgetReport{
		Total:  itinerary.TotalCost.Amount,
		Target: target,
	}
	if target <= 0 {
		return report
	}

	if report.Total > target {
		report.OverBudgetBy = roundCents(report.Total - target)
	} else {
		return report
	}

	// Collect all scheduled items, most expensive first.
	var items []domain.ContentItem
	for _, day := range itinerary.Days {
		for _, act := range day.Activities {
			items = append(items, act.Item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Cost.Amount > items[j].Cost.Amount
	})

	limit := maxExpensiveItems
	if len(items) < limit {
		limit = len(items)
	}
	report.ExpensiveItems = items[:limit]

	report.Suggestions = buildSuggestions(itinerary, report)
	return report
}

// buildSuggestions derives cost-reduction suggestions for an over-budget report.
func buildSuggestions(itinerary *domain.Itinerary, report *domain.BudgetReport) []domain.BudgetSuggestion {
	var suggestions []domain.BudgetSuggestion

	// Swapping the single most expensive item for a cheaper alternative
	// usually recovers the most.
	if len(report.ExpensiveItems) > 0 {
		top := report.ExpensiveItems[0]
		suggestions = append(suggestions, domain.BudgetSuggestion{
			Kind: domain.SuggestSwapItem,
			Message: fmt.Sprintf("Replace %q (%.0f %s) with a lower-cost alternative",
				top.Name, top.Cost.Amount, top.Cost.Currency),
			EstimatedSavings: roundCents(top.Cost.Amount * swapItemSavingsShare),
		})
	}

	// Moving off weekend/high-season dates trims the multipliers.
	if itinerary.Pricing != nil && itinerary.Pricing.SeasonalMultiplier > 1.0 {
		suggestions = append(suggestions, domain.BudgetSuggestion{
			Kind:             domain.SuggestShiftDates,
			Message:          "Travel dates fall in high season; shifting to shoulder season lowers prices",
			EstimatedSavings: roundCents(report.Total * dateShiftSavingsShare),
		})
	}

	// Larger groups unlock deeper tier discounts.
	travelers := itinerary.Preferences.Travelers()
	if travelers > 0 && travelers < 10 {
		perHead := report.Total / float64(travelers)
		suggestions = append(suggestions, domain.BudgetSuggestion{
			Kind: domain.SuggestReduceGroup,
			Message: fmt.Sprintf("Groups of 10+ get a 15%% group discount; current group of %d pays %.0f per traveler",
				travelers, perHead),
			EstimatedSavings: roundCents(report.Total * (1 - bulkGroupMultiplier)),
		})
	}

	return suggestions
}
