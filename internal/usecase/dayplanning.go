package usecase

import (
	"fmt"
	"sort"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// Planner defaults.
const (
	DefaultDayStart           = "08:00"
	DefaultDayEnd             = "21:00"
	DefaultMaxActivities      = 4
	DefaultActivityBufferMins = 30
	defaultActivityMinutes    = 120
)

// PlannerConfig contains configuration options for day planning.
type PlannerConfig struct {
	// DayStart is the earliest schedulable time (HH:MM)
	DayStart string

	// DayEnd is the latest schedulable time (HH:MM)
	DayEnd string

	// MaxActivities caps the number of activities placed per day
	MaxActivities int

	// BufferMinutes is the travel/rest buffer appended to each activity
	BufferMinutes int
}

// DefaultPlannerConfig returns the default planner configuration.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		DayStart:      DefaultDayStart,
		DayEnd:        DefaultDayEnd,
		MaxActivities: DefaultMaxActivities,
		BufferMinutes: DefaultActivityBufferMins,
	}
}

// defaultMealBreaks returns the fixed meal blocks activities must route around.
func defaultMealBreaks() []domain.MealBreak {
	return []domain.MealBreak{
		{Name: "breakfast", Slot: domain.TimeSlot{Start: 8 * 60, End: 8*60 + 45}},
		{Name: "lunch", Slot: domain.TimeSlot{Start: 12*60 + 30, End: 13*60 + 30}},
		{Name: "dinner", Slot: domain.TimeSlot{Start: 19 * 60, End: 20*60 + 30}},
	}
}

// ScoredCandidate pairs a content item with its preference match score.
type ScoredCandidate struct {
	Item  domain.ContentItem
	Score float64
}

// Planner builds day schedules from scored candidates. Meal blocks are
// placed first; activities are greedily placed by descending score into
// the free slots around them.
type Planner struct {
	cfg      PlannerConfig
	dayStart int
	dayEnd   int
}

// NewPlanner creates a Planner with the given configuration.
// If cfg is nil, defaults are used. Malformed day bounds fall back to defaults.
func NewPlanner(cfg *PlannerConfig) *Planner {
	c := DefaultPlannerConfig()
	if cfg != nil {
		if cfg.DayStart != "" {
			c.DayStart = cfg.DayStart
		}
		if cfg.DayEnd != "" {
			c.DayEnd = cfg.DayEnd
		}
		if cfg.MaxActivities > 0 {
			c.MaxActivities = cfg.MaxActivities
		}
		if cfg.BufferMinutes >= 0 {
			c.BufferMinutes = cfg.BufferMinutes
		}
	}

	start, err := domain.ParseClock(c.DayStart)
	if err != nil {
		start, _ = domain.ParseClock(DefaultDayStart)
	}
	end, err := domain.ParseClock(c.DayEnd)
	if err != nil || end <= start {
		end, _ = domain.ParseClock(DefaultDayEnd)
	}

	return &Planner{cfg: c, dayStart: start, dayEnd: end}
}

// BuildDayPlan schedules candidates into a single day at the destination.
//
// Behavior:
//   - Meal blocks are fixed obstacles; activities never overlap them
//   - Candidates are placed by descending score into the first free slot
//     that fits the activity duration plus buffer
//   - Placement stops at MaxActivities
//   - Candidates whose duration cannot fit any remaining slot are skipped
//   - Returns ErrEmptyPlan when nothing could be scheduled
func (p *Planner) BuildDayPlan(destination, date string, candidates []ScoredCandidate) (domain.DayPlan, error) {
	plan := domain.DayPlan{
		Destination: destination,
		Date:        date,
		Meals:       defaultMealBreaks(),
	}

	freeSlots := p.freeSlotsAroundMeals(plan.Meals)

	// Sort by descending score; stable so equal scores keep input order.
	sorted := make([]ScoredCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	currency := ""
	for _, cand := range sorted {
		if len(plan.Activities) >= p.cfg.MaxActivities {
			break
		}

		minutes := cand.Item.DurationMinutes()
		if minutes <= 0 {
			minutes = defaultActivityMinutes
		}
		needed := minutes + p.cfg.BufferMinutes

		slotIdx := -1
		for i, slot := range freeSlots {
			if slot.Duration() >= needed {
				slotIdx = i
				break
			}
		}
		if slotIdx == -1 {
			continue
		}

		slot := freeSlots[slotIdx]
		assigned := domain.TimeSlot{Start: slot.Start, End: slot.Start + minutes}

		plan.Activities = append(plan.Activities, domain.ScheduledActivity{
			Item:     cand.Item,
			Slot:     assigned,
			Score:    cand.Score,
			Priority: len(plan.Activities) + 1,
		})

		plan.TotalCost.Amount += cand.Item.Cost.Amount
		if currency == "" && cand.Item.Cost.Currency != "" {
			currency = cand.Item.Cost.Currency
		}

		// Shrink or consume the slot the activity was placed into.
		remaining := domain.TimeSlot{Start: slot.Start + needed, End: slot.End}
		if remaining.Duration() > 0 {
			freeSlots[slotIdx] = remaining
		} else {
			freeSlots = append(freeSlots[:slotIdx], freeSlots[slotIdx+1:]...)
		}
	}

	plan.TotalCost.Currency = currency
	plan.FreeSlots = freeSlots

	// Keep activities in chronological order for presentation.
	sort.SliceStable(plan.Activities, func(i, j int) bool {
		return plan.Activities[i].Slot.Start < plan.Activities[j].Slot.Start
	})

	if len(plan.Activities) == 0 {
		return plan, fmt.Errorf("%w: %s at %s", domain.ErrEmptyPlan, date, destination)
	}

	return plan, nil
}

// freeSlotsAroundMeals derives the schedulable slots between the day
// bounds, cutting out every meal block.
func (p *Planner) freeSlotsAroundMeals(meals []domain.MealBreak) []domain.TimeSlot {
	sorted := make([]domain.MealBreak, len(meals))
	copy(sorted, meals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Slot.Start < sorted[j].Slot.Start
	})

	var slots []domain.TimeSlot
	cursor := p.dayStart

	for _, meal := range sorted {
		if meal.Slot.End <= p.dayStart || meal.Slot.Start >= p.dayEnd {
			continue
		}
		if meal.Slot.Start > cursor {
			slots = append(slots, domain.TimeSlot{Start: cursor, End: meal.Slot.Start})
		}
		if meal.Slot.End > cursor {
			cursor = meal.Slot.End
		}
	}

	if cursor < p.dayEnd {
		slots = append(slots, domain.TimeSlot{Start: cursor, End: p.dayEnd})
	}

	return slots
}
