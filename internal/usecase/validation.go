package usecase

import (
	"fmt"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// Validation thresholds.
const (
	// budgetOutlierShare flags one activity consuming more than this
	// share of the day budget.
	budgetOutlierShare = 0.5

	// denseScheduleShare flags a day with more than this share of the
	// schedulable window occupied.
	denseScheduleShare = 0.8

	// Feasibility penalties per issue severity.
	errorPenalty   = 0.30
	warningPenalty = 0.10
	infoPenalty    = 0.02
)

// ValidateDayPlan checks a day plan for scheduling and budget problems.
//
// Issues reported:
//   - time_overlap (error): two activities share any minute
//   - meal_conflict (error): an activity overlaps a meal block
//   - budget_outlier (warning): one activity consumes most of the day budget
//   - schedule_dense (warning): the schedulable window is mostly occupied
//   - schedule_sparse (info): a single short activity on a full day
//
// dayBudget is the per-day budget share; 0 disables the budget check.
func ValidateDayPlan(plan domain.DayPlan, dayBudget float64) []domain.PlanIssue {
	var issues []domain.PlanIssue

	// Pairwise overlap check between scheduled activities.
	for i := 0; i < len(plan.Activities); i++ {
		for j := i + 1; j < len(plan.Activities); j++ {
			a, b := plan.Activities[i], plan.Activities[j]
			if a.Slot.Overlaps(b.Slot) {
				issues = append(issues, domain.PlanIssue{
					Severity: domain.SeverityError,
					Code:     domain.IssueTimeOverlap,
					Message: fmt.Sprintf("%q (%s) overlaps %q (%s)",
						a.Item.Name, a.Slot, b.Item.Name, b.Slot),
					Date: plan.Date,
				})
			}
		}
	}

	// Activities must route around meal blocks.
	for _, act := range plan.Activities {
		for _, meal := range plan.Meals {
			if act.Slot.Overlaps(meal.Slot) {
				issues = append(issues, domain.PlanIssue{
					Severity: domain.SeverityError,
					Code:     domain.IssueMealConflict,
					Message: fmt.Sprintf("%q (%s) conflicts with %s (%s)",
						act.Item.Name, act.Slot, meal.Name, meal.Slot),
					Date: plan.Date,
				})
			}
		}
	}

	// Budget outliers.
	if dayBudget > 0 {
		for _, act := range plan.Activities {
			if act.Item.Cost.Amount > dayBudget*budgetOutlierShare {
				issues = append(issues, domain.PlanIssue{
					Severity: domain.SeverityWarning,
					Code:     domain.IssueBudgetOutlier,
					Message: fmt.Sprintf("%q costs %.0f, more than half the day budget of %.0f",
						act.Item.Name, act.Item.Cost.Amount, dayBudget),
					Date: plan.Date,
				})
			}
		}
	}

	// Schedule density.
	window := schedulableMinutes(plan)
	if window > 0 {
		occupied := float64(plan.ScheduledMinutes()) / float64(window)
		switch {
		case occupied > denseScheduleShare:
			issues = append(issues, domain.PlanIssue{
				Severity: domain.SeverityWarning,
				Code:     domain.IssueScheduleDense,
				Message:  fmt.Sprintf("schedule is %.0f%% full; little slack for delays", occupied*100),
				Date:     plan.Date,
			})
		case len(plan.Activities) == 1 && occupied < 0.2:
			issues = append(issues, domain.PlanIssue{
				Severity: domain.SeverityInfo,
				Code:     domain.IssueScheduleSparse,
				Message:  "only one short activity scheduled; day is mostly free",
				Date:     plan.Date,
			})
		}
	}

	return issues
}

// FeasibilityScore derives an overall plan quality score in [0,1] from
// validation issues. An issue-free plan scores 1.0; each issue subtracts
// a severity-weighted penalty.
func FeasibilityScore(issues []domain.PlanIssue) float64 {
	score := 1.0
	for _, issue := range issues {
		switch issue.Severity {
		case domain.SeverityError:
			score -= errorPenalty
		case domain.SeverityWarning:
			score -= warningPenalty
		default:
			score -= infoPenalty
		}
	}
	return clamp01(score)
}

// schedulableMinutes returns the day window minus meal blocks.
func schedulableMinutes(plan domain.DayPlan) int {
	total := 0
	for _, slot := range plan.FreeSlots {
		total += slot.Duration()
	}
	total += plan.ScheduledMinutes()
	return total
}
