package domain

import (
	"fmt"
	"regexp"
)

// clockRegex matches clock strings in HH:MM format.
var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// TimeSlot is a half-open interval [Start, End) within a single day,
// expressed in minutes from midnight.
type TimeSlot struct {
	// Start is the slot start in minutes from midnight (inclusive)
	Start int `json:"start"`

	// End is the slot end in minutes from midnight (exclusive)
	End int `json:"end"`
}

// ParseClock parses an "HH:MM" clock string into minutes from midnight.
func ParseClock(clock string) (int, error) {
	m := clockRegex.FindStringSubmatch(clock)
	if m == nil {
		return 0, fmt.Errorf("%w: invalid clock time %q, expected HH:MM", ErrInvalidRequest, clock)
	}

	var hour, minute int
	fmt.Sscanf(clock, "%02d:%02d", &hour, &minute)
	return hour*60 + minute, nil
}

// FormatClock formats minutes from midnight as an "HH:MM" clock string.
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NewTimeSlot builds a TimeSlot from "HH:MM" start and end strings.
func NewTimeSlot(start, end string) (TimeSlot, error) {
	s, err := ParseClock(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return TimeSlot{}, err
	}
	if e <= s {
		return TimeSlot{}, fmt.Errorf("%w: slot end %s must be after start %s", ErrInvalidRequest, end, start)
	}
	return TimeSlot{Start: s, End: e}, nil
}

// Duration returns the slot length in minutes.
func (t TimeSlot) Duration() int {
	return t.End - t.Start
}

// Overlaps reports whether two slots share any minute.
// Touching slots (one ends exactly where the other starts) do not overlap.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	return t.Start < other.End && other.Start < t.End
}

// Contains reports whether the slot fully contains the other slot.
func (t TimeSlot) Contains(other TimeSlot) bool {
	return other.Start >= t.Start && other.End <= t.End
}

// String formats the slot as "HH:MM-HH:MM".
func (t TimeSlot) String() string {
	return FormatClock(t.Start) + "-" + FormatClock(t.End)
}

// MealBreak is a fixed time block reserved for a meal. Activities are
// scheduled around meal breaks, never across them.
type MealBreak struct {
	// Name identifies the meal (breakfast, lunch, dinner)
	Name string `json:"name"`

	// Slot is the reserved time block
	Slot TimeSlot `json:"slot"`
}

// ScheduledActivity is a content item placed into a day plan time slot.
type ScheduledActivity struct {
	// Item is the scheduled content item
	Item ContentItem `json:"item"`

	// Slot is the assigned time block
	Slot TimeSlot `json:"slot"`

	// Score is the preference match score that drove the selection
	Score float64 `json:"score"`

	// Priority is the 1-based placement order (1 = placed first)
	Priority int `json:"priority"`
}

// DayPlan is the schedule for a single day at a destination.
//
// Invariant: no two entries in Activities overlap in time, and no activity
// overlaps a meal break. Validation reports violations as error-severity issues.
type DayPlan struct {
	// Destination is the place this day is spent at
	Destination string `json:"destination"`

	// Date is the day in YYYY-MM-DD format
	Date string `json:"date"`

	// Activities is the ordered list of scheduled activities
	Activities []ScheduledActivity `json:"activities"`

	// Meals is the list of fixed meal blocks
	Meals []MealBreak `json:"meals"`

	// FreeSlots is the remaining unscheduled time
	FreeSlots []TimeSlot `json:"freeSlots,omitempty"`

	// TotalCost is the summed per-traveler cost of all scheduled activities
	TotalCost Money `json:"totalCost"`
}

// ScheduledMinutes returns the total minutes occupied by activities.
func (d *DayPlan) ScheduledMinutes() int {
	total := 0
	for _, a := range d.Activities {
		total += a.Slot.Duration()
	}
	return total
}

// Issue severities, from most to least severe.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// PlanIssue is a single problem found while validating a plan.
type PlanIssue struct {
	// Severity is one of error, warning, info
	Severity string `json:"severity"`

	// Code is a machine-readable issue code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`

	// Date is the affected day in YYYY-MM-DD format, when day-specific
	Date string `json:"date,omitempty"`
}

// Issue codes reported by plan validation.
const (
	IssueTimeOverlap    = "time_overlap"
	IssueMealConflict   = "meal_conflict"
	IssueBudgetOutlier  = "budget_outlier"
	IssueScheduleDense  = "schedule_dense"
	IssueScheduleSparse = "schedule_sparse"
)
