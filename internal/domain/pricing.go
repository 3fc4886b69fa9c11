package domain

// PriceBreakdown decomposes a final price into its pricing factors.
//
// FinalPrice = BasePrice × Seasonal × Demand × DayOfWeek × Group,
// then reduced by AdvanceDiscountPct percent. Savings is the difference
// between BasePrice and FinalPrice when positive, 0 otherwise.
type PriceBreakdown struct {
	// BasePrice is the undiscounted price before any multiplier
	BasePrice float64 `json:"basePrice"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// SeasonalMultiplier reflects high/shoulder/low season
	SeasonalMultiplier float64 `json:"seasonalMultiplier"`

	// DemandMultiplier reflects expected demand for the travel date
	DemandMultiplier float64 `json:"demandMultiplier"`

	// DayOfWeekMultiplier reflects weekday vs weekend pricing
	DayOfWeekMultiplier float64 `json:"dayOfWeekMultiplier"`

	// GroupMultiplier reflects group-size discounts
	GroupMultiplier float64 `json:"groupMultiplier"`

	// AdvanceDiscountPct is the advance-booking discount percentage (0-100)
	AdvanceDiscountPct float64 `json:"advanceDiscountPct"`

	// FinalPrice is the price after all multipliers and discounts
	FinalPrice float64 `json:"finalPrice"`

	// Savings is max(BasePrice - FinalPrice, 0)
	Savings float64 `json:"savings"`
}

// BudgetSuggestion is a single cost-reduction recommendation.
type BudgetSuggestion struct {
	// Kind categorizes the suggestion (shift_dates, reduce_group, swap_item)
	Kind string `json:"kind"`

	// Message is a human-readable recommendation
	Message string `json:"message"`

	// EstimatedSavings is the rough savings if the suggestion is followed
	EstimatedSavings float64 `json:"estimatedSavings"`
}

// Suggestion kinds.
const (
	SuggestShiftDates  = "shift_dates"
	SuggestReduceGroup = "reduce_group"
	SuggestSwapItem    = "swap_item"
)

// BudgetReport summarizes how an itinerary total compares to a target
// budget, with the most expensive line items and reduction suggestions.
type BudgetReport struct {
	// Total is the itinerary total cost
	Total float64 `json:"total"`

	// Target is the budget the total is compared against
	Target float64 `json:"target"`

	// OverBudgetBy is max(Total - Target, 0)
	OverBudgetBy float64 `json:"overBudgetBy"`

	// ExpensiveItems lists the most expensive line items (at most three)
	ExpensiveItems []ContentItem `json:"expensiveItems,omitempty"`

	// Suggestions lists cost-reduction recommendations
	Suggestions []BudgetSuggestion `json:"suggestions,omitempty"`
}

// WithinBudget reports whether the total fits the target.
func (b *BudgetReport) WithinBudget() bool {
	return b.OverBudgetBy == 0
}
