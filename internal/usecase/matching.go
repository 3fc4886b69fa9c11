// Package usecase contains the business logic for itinerary generation.
// It scores content against traveler preferences, builds day schedules,
// prices itineraries, and orchestrates catalog fetches.
package usecase

import (
	"fmt"
	"strings"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// Matching weights. These determine the importance of each factor in the
// weighted score; they are normalized so their sum is 1.0 before use.
type MatchWeights struct {
	// Interest is the weight for interest/tag overlap
	Interest float64

	// Budget is the weight for budget fit
	Budget float64

	// Location is the weight for destination match
	Location float64

	// Duration is the weight for duration fit against the traveler's pace
	Duration float64

	// Difficulty is the weight for difficulty fit to the traveler group
	Difficulty float64

	// Accessibility is the weight for accessibility fit
	Accessibility float64
}

// DefaultMatchWeights returns the hand-tuned default weighting.
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		Interest:      0.30,
		Budget:        0.25,
		Location:      0.15,
		Duration:      0.10,
		Difficulty:    0.10,
		Accessibility: 0.10,
	}
}

// sum returns the total of all weights.
func (w MatchWeights) sum() float64 {
	return w.Interest + w.Budget + w.Location + w.Duration + w.Difficulty + w.Accessibility
}

// normalized scales the weights so they sum to 1.0.
// A zero weight set falls back to the defaults.
func (w MatchWeights) normalized() MatchWeights {
	total := w.sum()
	if total <= 0 {
		return DefaultMatchWeights()
	}
	return MatchWeights{
		Interest:      w.Interest / total,
		Budget:        w.Budget / total,
		Location:      w.Location / total,
		Duration:      w.Duration / total,
		Difficulty:    w.Difficulty / total,
		Accessibility: w.Accessibility / total,
	}
}

// neutralScore is used when a factor has no signal to score against
// (no interests given, no budget set, and so on).
const neutralScore = 0.5

// Ideal activity minutes per pace, used for duration fit.
const (
	relaxedIdealMinutes  = 90
	moderateIdealMinutes = 150
	packedIdealMinutes   = 210
)

// Matcher scores content items against travel preferences using a
// weighted sum of six factors.
type Matcher struct {
	weights MatchWeights
}

// NewMatcher creates a Matcher with the given weights.
// If weights is nil, the default weighting is used.
func NewMatcher(weights *MatchWeights) *Matcher {
	w := DefaultMatchWeights()
	if weights != nil {
		w = *weights
	}
	return &Matcher{weights: w.normalized()}
}

// Score scores a single content item against the preferences.
//
// Behavior:
//   - The returned score is always in [0, 1]
//   - Budget fit is monotonically non-increasing in cost beyond the budget floor
//   - A wheelchair requirement zeroes the accessibility factor for
//     inaccessible items and records a reason
//   - Factors without signal (empty interests, no budget) score neutral (0.5)
func (m *Matcher) Score(item domain.ContentItem, prefs domain.TravelPreferences) domain.MatchScore {
	var reasons []string

	interest, reason := scoreInterests(item, prefs)
	if reason != "" {
		reasons = append(reasons, reason)
	}

	budget, reason := scoreBudget(item, prefs)
	if reason != "" {
		reasons = append(reasons, reason)
	}

	location, reason := scoreLocation(item, prefs)
	if reason != "" {
		reasons = append(reasons, reason)
	}

	duration, reason := scoreDuration(item, prefs)
	if reason != "" {
		reasons = append(reasons, reason)
	}

	difficulty, reason := scoreDifficulty(item, prefs)
	if reason != "" {
		reasons = append(reasons, reason)
	}

	accessibility, reason := scoreAccessibility(item, prefs)
	if reason != "" {
		reasons = append(reasons, reason)
	}

	score := m.weights.Interest*interest +
		m.weights.Budget*budget +
		m.weights.Location*location +
		m.weights.Duration*duration +
		m.weights.Difficulty*difficulty +
		m.weights.Accessibility*accessibility

	score = clamp01(score)

	return domain.MatchScore{
		ContentID: item.ID,
		Score:     score,
		Reasons:   reasons,
		Category:  domain.CategoryForScore(score),
	}
}

// scoreInterests scores tag overlap between the item and the traveler's interests.
func scoreInterests(item domain.ContentItem, prefs domain.TravelPreferences) (float64, string) {
	if len(prefs.Interests) == 0 {
		return neutralScore, ""
	}

	wanted := make(map[string]bool, len(prefs.Interests))
	for _, interest := range prefs.Interests {
		wanted[strings.ToLower(strings.TrimSpace(interest))] = true
	}

	matched := 0
	var matchedTags []string
	for _, tag := range item.Tags {
		norm := strings.ToLower(strings.TrimSpace(tag))
		if wanted[norm] {
			matched++
			matchedTags = append(matchedTags, norm)
		}
	}

	if matched == 0 {
		return 0, ""
	}

	score := float64(matched) / float64(len(prefs.Interests))
	return clamp01(score), fmt.Sprintf("matches interests: %s", strings.Join(matchedTags, ", "))
}

// scoreBudget scores how well the item's cost fits the traveler's budget.
//
// The score is 1.0 for costs at or below the budget ceiling, then decays
// linearly to 0 at twice the ceiling. Free items always score 1.0. With no
// ceiling set the factor is neutral.
func scoreBudget(item domain.ContentItem, prefs domain.TravelPreferences) (float64, string) {
	cost := item.Cost.Amount
	if cost <= 0 {
		return 1.0, "free or no-cost item"
	}
	if prefs.BudgetMax <= 0 {
		return neutralScore, ""
	}

	// Per-item share of the total budget: budget spread over the trip days,
	// with a few activities per day.
	days := len(prefs.TripDates())
	if days == 0 {
		days = 1
	}
	perItemBudget := prefs.BudgetMax / float64(days*3)

	switch {
	case cost <= perItemBudget:
		return 1.0, "fits the budget"
	case cost >= 2*perItemBudget:
		return 0, fmt.Sprintf("well above budget (%.0f %s)", cost, item.Cost.Currency)
	default:
		// Linear decay between 1x and 2x the per-item budget.
		score := 1.0 - (cost-perItemBudget)/perItemBudget
		return clamp01(score), "stretches the budget"
	}
}

// scoreLocation scores whether the item is located at a requested destination.
func scoreLocation(item domain.ContentItem, prefs domain.TravelPreferences) (float64, string) {
	if len(prefs.Destinations) == 0 {
		return neutralScore, ""
	}

	for _, dest := range prefs.Destinations {
		if item.MatchesLocation(dest) {
			return 1.0, fmt.Sprintf("located in %s", strings.TrimSpace(dest))
		}
	}
	return 0, ""
}

// scoreDuration scores the item's duration against the pace-implied ideal.
func scoreDuration(item domain.ContentItem, prefs domain.TravelPreferences) (float64, string) {
	minutes := item.DurationMinutes()
	if minutes <= 0 {
		return neutralScore, ""
	}

	ideal := moderateIdealMinutes
	switch strings.ToLower(prefs.Pace) {
	case domain.PaceRelaxed:
		ideal = relaxedIdealMinutes
	case domain.PacePacked:
		ideal = packedIdealMinutes
	}

	// Linear falloff around the ideal; zero at 2x deviation.
	deviation := float64(minutes-ideal) / float64(ideal)
	if deviation < 0 {
		deviation = -deviation
	}
	score := clamp01(1.0 - deviation)

	var reason string
	if score >= 0.75 {
		reason = fmt.Sprintf("duration suits a %s pace", prefs.Pace)
	}
	return score, reason
}

// scoreDifficulty scores the item's physical difficulty against the group.
// Children, seniors, and limited mobility all lower the acceptable level.
func scoreDifficulty(item domain.ContentItem, prefs domain.TravelPreferences) (float64, string) {
	if item.Activity == nil {
		return neutralScore, ""
	}

	level := domain.DifficultyLevel(item.Activity.Difficulty)

	acceptable := 3
	if prefs.Children > 0 || prefs.Seniors > 0 {
		acceptable = 2
	}
	if prefs.LimitedMobility {
		acceptable = 1
	}

	switch {
	case level <= acceptable:
		return 1.0, ""
	case level == acceptable+1:
		return 0.4, fmt.Sprintf("%s difficulty may not suit the whole group", item.Activity.Difficulty)
	default:
		return 0, fmt.Sprintf("%s difficulty unsuitable for the group", item.Activity.Difficulty)
	}
}

// scoreAccessibility scores step-free access when it is required.
func scoreAccessibility(item domain.ContentItem, prefs domain.TravelPreferences) (float64, string) {
	if !prefs.RequiresWheelchairAccess {
		return 1.0, ""
	}
	if item.WheelchairAccessible() {
		return 1.0, "wheelchair accessible"
	}
	return 0, "not wheelchair accessible"
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
