package domain

// Itinerary is a fully generated multi-day travel plan.
type Itinerary struct {
	// ID is a unique identifier for this generated itinerary
	ID string `json:"id"`

	// Preferences echoes the preferences the itinerary was generated from
	Preferences TravelPreferences `json:"preferences"`

	// Days is the ordered list of day plans
	Days []DayPlan `json:"days"`

	// TotalCost is the summed per-traveler cost across all days
	TotalCost Money `json:"totalCost"`

	// Pricing is the price breakdown for the whole itinerary
	Pricing *PriceBreakdown `json:"pricing,omitempty"`

	// Budget compares the total against the traveler's budget, when one was set
	Budget *BudgetReport `json:"budget,omitempty"`

	// Issues lists problems found during plan validation
	Issues []PlanIssue `json:"issues,omitempty"`

	// Feasibility is an overall plan quality score in [0,1]
	Feasibility float64 `json:"feasibility"`

	// Metadata describes how the itinerary was generated
	Metadata GenerationMetadata `json:"metadata"`
}

// GenerationMetadata describes the execution of one generation request.
type GenerationMetadata struct {
	// SourcesQueried lists the catalog sources that were queried
	SourcesQueried []string `json:"sources_queried"`

	// SourcesFailed lists the catalog sources that failed or timed out
	SourcesFailed []string `json:"sources_failed,omitempty"`

	// CandidatesEvaluated is the number of content items scored
	CandidatesEvaluated int `json:"candidates_evaluated"`

	// GenerationTimeMs is the total generation duration in milliseconds
	GenerationTimeMs int64 `json:"generation_time_ms"`

	// CacheHit indicates the itinerary came from the result cache
	CacheHit bool `json:"cache_hit"`
}

// HasErrors reports whether any validation issue has error severity.
func (i *Itinerary) HasErrors() bool {
	for _, issue := range i.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
