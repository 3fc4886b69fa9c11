package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// createCandidate creates a scored candidate with the given duration and score.
func createCandidate(id string, minutes int, score, cost float64) ScoredCandidate {
	return ScoredCandidate{
		Item: domain.ContentItem{
			ID:       id,
			Kind:     domain.KindActivity,
			Name:     "Candidate " + id,
			Location: "Ubud, Bali",
			Cost:     domain.Money{Amount: cost, Currency: "USD"},
			Activity: &domain.ActivityDetails{DurationMinutes: minutes},
		},
		Score: score,
	}
}

func TestNewPlanner(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		p := NewPlanner(nil)
		require.NotNil(t, p)
		assert.Equal(t, 8*60, p.dayStart)
		assert.Equal(t, 21*60, p.dayEnd)
		assert.Equal(t, DefaultMaxActivities, p.cfg.MaxActivities)
	})

	t.Run("custom bounds are honored", func(t *testing.T) {
		p := NewPlanner(&PlannerConfig{DayStart: "09:00", DayEnd: "18:00"})
		assert.Equal(t, 9*60, p.dayStart)
		assert.Equal(t, 18*60, p.dayEnd)
	})

	t.Run("malformed bounds fall back to defaults", func(t *testing.T) {
		p := NewPlanner(&PlannerConfig{DayStart: "nine", DayEnd: "late"})
		assert.Equal(t, 8*60, p.dayStart)
		assert.Equal(t, 21*60, p.dayEnd)
	})

	t.Run("end before start falls back", func(t *testing.T) {
		p := NewPlanner(&PlannerConfig{DayStart: "18:00", DayEnd: "09:00"})
		assert.Equal(t, 21*60, p.dayEnd)
	})
}

func TestBuildDayPlan_NoOverlapsWithMealsOrActivities(t *testing.T) {
	planner := NewPlanner(nil)

	candidates := []ScoredCandidate{
		createCandidate("1", 120, 0.9, 40),
		createCandidate("2", 150, 0.8, 60),
		createCandidate("3", 90, 0.7, 30),
		createCandidate("4", 180, 0.6, 80),
		createCandidate("5", 60, 0.5, 20),
	}

	plan, err := planner.BuildDayPlan("Bali", "2026-09-10", candidates)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Activities)

	for i := 0; i < len(plan.Activities); i++ {
		for j := i + 1; j < len(plan.Activities); j++ {
			assert.False(t, plan.Activities[i].Slot.Overlaps(plan.Activities[j].Slot),
				"activities %d and %d overlap", i, j)
		}
		for _, meal := range plan.Meals {
			assert.False(t, plan.Activities[i].Slot.Overlaps(meal.Slot),
				"activity %d overlaps %s", i, meal.Name)
		}
	}
}

func TestBuildDayPlan_RespectsMaxActivities(t *testing.T) {
	planner := NewPlanner(&PlannerConfig{MaxActivities: 2})

	candidates := []ScoredCandidate{
		createCandidate("1", 60, 0.9, 40),
		createCandidate("2", 60, 0.8, 40),
		createCandidate("3", 60, 0.7, 40),
		createCandidate("4", 60, 0.6, 40),
	}

	plan, err := planner.BuildDayPlan("Bali", "2026-09-10", candidates)
	require.NoError(t, err)
	assert.Len(t, plan.Activities, 2)
}

func TestBuildDayPlan_HighestScoresPlacedFirst(t *testing.T) {
	planner := NewPlanner(&PlannerConfig{MaxActivities: 2})

	candidates := []ScoredCandidate{
		createCandidate("low", 60, 0.3, 20),
		createCandidate("high", 60, 0.9, 50),
		createCandidate("mid", 60, 0.6, 30),
	}

	plan, err := planner.BuildDayPlan("Bali", "2026-09-10", candidates)
	require.NoError(t, err)
	require.Len(t, plan.Activities, 2)

	ids := []string{plan.Activities[0].Item.ID, plan.Activities[1].Item.ID}
	assert.Contains(t, ids, "high")
	assert.Contains(t, ids, "mid")
	assert.NotContains(t, ids, "low")
}

func TestBuildDayPlan_ChronologicalOrderAndPriority(t *testing.T) {
	planner := NewPlanner(nil)

	candidates := []ScoredCandidate{
		createCandidate("1", 120, 0.9, 40),
		createCandidate("2", 90, 0.8, 30),
		createCandidate("3", 60, 0.7, 20),
	}

	plan, err := planner.BuildDayPlan("Bali", "2026-09-10", candidates)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Activities)

	for i := 1; i < len(plan.Activities); i++ {
		assert.GreaterOrEqual(t, plan.Activities[i].Slot.Start, plan.Activities[i-1].Slot.End,
			"activities must be in chronological order")
	}

	// Priority records placement order: the best-scored candidate is priority 1.
	for _, act := range plan.Activities {
		if act.Item.ID == "1" {
			assert.Equal(t, 1, act.Priority)
		}
	}
}

func TestBuildDayPlan_SkipsOversizedCandidates(t *testing.T) {
	planner := NewPlanner(nil)

	candidates := []ScoredCandidate{
		createCandidate("huge", 600, 0.9, 100),
		createCandidate("fits", 90, 0.5, 30),
	}

	plan, err := planner.BuildDayPlan("Bali", "2026-09-10", candidates)
	require.NoError(t, err)
	require.Len(t, plan.Activities, 1)
	assert.Equal(t, "fits", plan.Activities[0].Item.ID)
}

func TestBuildDayPlan_EmptyCandidates(t *testing.T) {
	planner := NewPlanner(nil)

	plan, err := planner.BuildDayPlan("Bali", "2026-09-10", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPlan)
	assert.Empty(t, plan.Activities)
	assert.NotEmpty(t, plan.Meals, "meal blocks are set even on an empty plan")
}

func TestBuildDayPlan_NothingFits(t *testing.T) {
	planner := NewPlanner(nil)

	candidates := []ScoredCandidate{
		createCandidate("1", 700, 0.9, 100),
		createCandidate("2", 800, 0.8, 100),
	}

	_, err := planner.BuildDayPlan("Bali", "2026-09-10", candidates)
	assert.ErrorIs(t, err, domain.ErrEmptyPlan)
}

func TestBuildDayPlan_TotalCost(t *testing.T) {
	planner := NewPlanner(nil)

	candidates := []ScoredCandidate{
		createCandidate("1", 120, 0.9, 40),
		createCandidate("2", 90, 0.8, 35),
	}

	plan, err := planner.BuildDayPlan("Bali", "2026-09-10", candidates)
	require.NoError(t, err)
	require.Len(t, plan.Activities, 2)
	assert.Equal(t, 75.0, plan.TotalCost.Amount)
	assert.Equal(t, "USD", plan.TotalCost.Currency)
}

func TestBuildDayPlan_DefaultDurationForUntimedItems(t *testing.T) {
	planner := NewPlanner(nil)

	// A candidate without duration details gets the default block.
	cand := ScoredCandidate{
		Item: domain.ContentItem{
			ID:       "untimed",
			Kind:     domain.KindActivity,
			Name:     "Untimed Activity",
			Location: "Bali",
			Cost:     domain.Money{Amount: 10, Currency: "USD"},
		},
		Score: 0.9,
	}

	plan, err := planner.BuildDayPlan("Bali", "2026-09-10", []ScoredCandidate{cand})
	require.NoError(t, err)
	require.Len(t, plan.Activities, 1)
	assert.Equal(t, defaultActivityMinutes, plan.Activities[0].Slot.Duration())
}

func TestFreeSlotsAroundMeals(t *testing.T) {
	planner := NewPlanner(nil)
	slots := planner.freeSlotsAroundMeals(defaultMealBreaks())

	// 08:00-21:00 day with breakfast 08:00-08:45, lunch 12:30-13:30,
	// dinner 19:00-20:30 leaves three gaps.
	require.Len(t, slots, 3)
	assert.Equal(t, domain.TimeSlot{Start: 8*60 + 45, End: 12*60 + 30}, slots[0])
	assert.Equal(t, domain.TimeSlot{Start: 13*60 + 30, End: 19 * 60}, slots[1])
	assert.Equal(t, domain.TimeSlot{Start: 20*60 + 30, End: 21 * 60}, slots[2])
}

func TestFreeSlotsAroundMeals_IgnoresOutOfWindowMeals(t *testing.T) {
	planner := NewPlanner(&PlannerConfig{DayStart: "10:00", DayEnd: "18:00"})
	slots := planner.freeSlotsAroundMeals(defaultMealBreaks())

	// Breakfast and dinner fall outside the 10:00-18:00 window.
	require.Len(t, slots, 2)
	assert.Equal(t, domain.TimeSlot{Start: 10 * 60, End: 12*60 + 30}, slots[0])
	assert.Equal(t, domain.TimeSlot{Start: 13*60 + 30, End: 18 * 60}, slots[1])
}
