package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-platform/itinerary-engine/internal/domain"
)

// createMatchTestActivity creates an activity item with the given tags,
// cost, and duration for matcher tests.
func createMatchTestActivity(id string, tags []string, cost float64, minutes int) domain.ContentItem {
	return domain.ContentItem{
		ID:       id,
		Kind:     domain.KindActivity,
		Name:     "Activity " + id,
		Location: "Ubud, Bali",
		Tags:     tags,
		Cost:     domain.Money{Amount: cost, Currency: "USD"},
		Activity: &domain.ActivityDetails{
			DurationMinutes:      minutes,
			Difficulty:           domain.DifficultyEasy,
			WheelchairAccessible: true,
		},
	}
}

// matchTestPreferences returns a three-day Bali trip with a 900 budget,
// which works out to a 100 per-item budget share.
func matchTestPreferences() domain.TravelPreferences {
	return domain.TravelPreferences{
		Adults:       2,
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-12",
		BudgetMax:    900,
		Currency:     "USD",
		Destinations: []string{"Bali"},
		Interests:    []string{"food", "culture"},
		Pace:         domain.PaceModerate,
	}
}

func TestNewMatcher(t *testing.T) {
	t.Run("nil weights use defaults", func(t *testing.T) {
		m := NewMatcher(nil)
		require.NotNil(t, m)
		assert.InDelta(t, 1.0, m.weights.sum(), 1e-9)
	})

	t.Run("custom weights are normalized", func(t *testing.T) {
		m := NewMatcher(&MatchWeights{Interest: 2, Budget: 2})
		assert.InDelta(t, 0.5, m.weights.Interest, 1e-9)
		assert.InDelta(t, 0.5, m.weights.Budget, 1e-9)
		assert.InDelta(t, 1.0, m.weights.sum(), 1e-9)
	})

	t.Run("zero weights fall back to defaults", func(t *testing.T) {
		m := NewMatcher(&MatchWeights{})
		assert.InDelta(t, 1.0, m.weights.sum(), 1e-9)
		assert.InDelta(t, 0.30, m.weights.Interest, 1e-9)
	})
}

func TestScore_AlwaysInRange(t *testing.T) {
	matcher := NewMatcher(nil)
	prefs := matchTestPreferences()

	items := []domain.ContentItem{
		createMatchTestActivity("1", []string{"food", "culture"}, 50, 150),
		createMatchTestActivity("2", []string{"diving"}, 5000, 600),
		createMatchTestActivity("3", nil, 0, 0),
		{ID: "4", Kind: domain.KindDestination, Name: "Bali", Location: "Bali"},
	}

	for _, item := range items {
		score := matcher.Score(item, prefs)
		assert.GreaterOrEqual(t, score.Score, 0.0, "item %s", item.ID)
		assert.LessOrEqual(t, score.Score, 1.0, "item %s", item.ID)
		assert.Equal(t, item.ID, score.ContentID)
		assert.Equal(t, domain.CategoryForScore(score.Score), score.Category)
	}
}

func TestScore_InterestOverlap(t *testing.T) {
	matcher := NewMatcher(nil)
	prefs := matchTestPreferences()

	fullMatch := matcher.Score(createMatchTestActivity("1", []string{"food", "culture"}, 50, 150), prefs)
	partial := matcher.Score(createMatchTestActivity("2", []string{"food", "diving"}, 50, 150), prefs)
	noMatch := matcher.Score(createMatchTestActivity("3", []string{"diving"}, 50, 150), prefs)

	assert.Greater(t, fullMatch.Score, partial.Score)
	assert.Greater(t, partial.Score, noMatch.Score)
	assert.Contains(t, fullMatch.Reasons, "matches interests: food, culture")
}

func TestScore_InterestCaseInsensitive(t *testing.T) {
	matcher := NewMatcher(nil)
	prefs := matchTestPreferences()
	prefs.Interests = []string{"Food"}

	score := matcher.Score(createMatchTestActivity("1", []string{"FOOD"}, 50, 150), prefs)
	assert.Contains(t, score.Reasons, "matches interests: food")
}

func TestScore_BudgetMonotonic(t *testing.T) {
	matcher := NewMatcher(nil)
	prefs := matchTestPreferences()

	// Per-item budget is 900 / (3 days * 3) = 100. Scores must never
	// increase as the cost climbs past the floor.
	costs := []float64{50, 100, 120, 150, 180, 200, 400}
	var prev float64 = 1.1
	for _, cost := range costs {
		score := matcher.Score(createMatchTestActivity("1", []string{"food"}, cost, 150), prefs)
		assert.LessOrEqual(t, score.Score, prev, "cost %.0f scored higher than a cheaper item", cost)
		prev = score.Score
	}
}

func TestScoreBudget(t *testing.T) {
	prefs := matchTestPreferences()

	tests := []struct {
		name string
		cost float64
		want float64
	}{
		{name: "free item", cost: 0, want: 1.0},
		{name: "within per-item budget", cost: 100, want: 1.0},
		{name: "halfway to double", cost: 150, want: 0.5},
		{name: "at double the budget", cost: 200, want: 0},
		{name: "far above budget", cost: 1000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := createMatchTestActivity("1", nil, tt.cost, 150)
			got, _ := scoreBudget(item, prefs)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("no budget ceiling is neutral", func(t *testing.T) {
		noBudget := matchTestPreferences()
		noBudget.BudgetMax = 0
		got, _ := scoreBudget(createMatchTestActivity("1", nil, 500, 150), noBudget)
		assert.Equal(t, neutralScore, got)
	})
}

func TestScoreLocation(t *testing.T) {
	prefs := matchTestPreferences()

	inBali := createMatchTestActivity("1", nil, 50, 150)
	got, reason := scoreLocation(inBali, prefs)
	assert.Equal(t, 1.0, got)
	assert.Equal(t, "located in Bali", reason)

	elsewhere := inBali
	elsewhere.Location = "Kyoto, Japan"
	got, _ = scoreLocation(elsewhere, prefs)
	assert.Equal(t, 0.0, got)

	noDest := matchTestPreferences()
	noDest.Destinations = nil
	got, _ = scoreLocation(inBali, noDest)
	assert.Equal(t, neutralScore, got)
}

func TestScoreDuration(t *testing.T) {
	tests := []struct {
		name    string
		pace    string
		minutes int
		want    float64
	}{
		{name: "moderate pace ideal", pace: domain.PaceModerate, minutes: 150, want: 1.0},
		{name: "relaxed pace ideal", pace: domain.PaceRelaxed, minutes: 90, want: 1.0},
		{name: "packed pace ideal", pace: domain.PacePacked, minutes: 210, want: 1.0},
		{name: "double the ideal scores zero", pace: domain.PaceModerate, minutes: 300, want: 0},
		{name: "half the ideal", pace: domain.PaceModerate, minutes: 75, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := matchTestPreferences()
			prefs.Pace = tt.pace
			item := createMatchTestActivity("1", nil, 50, tt.minutes)
			got, _ := scoreDuration(item, prefs)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("no duration is neutral", func(t *testing.T) {
		item := createMatchTestActivity("1", nil, 50, 0)
		got, _ := scoreDuration(item, matchTestPreferences())
		assert.Equal(t, neutralScore, got)
	})
}

func TestScoreDifficulty(t *testing.T) {
	makeItem := func(difficulty string) domain.ContentItem {
		item := createMatchTestActivity("1", nil, 50, 150)
		item.Activity.Difficulty = difficulty
		return item
	}

	t.Run("adults handle any difficulty", func(t *testing.T) {
		prefs := matchTestPreferences()
		got, _ := scoreDifficulty(makeItem(domain.DifficultyChallenging), prefs)
		assert.Equal(t, 1.0, got)
	})

	t.Run("children lower the acceptable level", func(t *testing.T) {
		prefs := matchTestPreferences()
		prefs.Children = 1

		got, reason := scoreDifficulty(makeItem(domain.DifficultyChallenging), prefs)
		assert.Equal(t, 0.4, got)
		assert.Contains(t, reason, "may not suit the whole group")

		got, _ = scoreDifficulty(makeItem(domain.DifficultyModerate), prefs)
		assert.Equal(t, 1.0, got)
	})

	t.Run("limited mobility restricts to easy", func(t *testing.T) {
		prefs := matchTestPreferences()
		prefs.LimitedMobility = true

		got, _ := scoreDifficulty(makeItem(domain.DifficultyEasy), prefs)
		assert.Equal(t, 1.0, got)

		got, _ = scoreDifficulty(makeItem(domain.DifficultyModerate), prefs)
		assert.Equal(t, 0.4, got)

		got, reason := scoreDifficulty(makeItem(domain.DifficultyChallenging), prefs)
		assert.Equal(t, 0.0, got)
		assert.Contains(t, reason, "unsuitable for the group")
	})

	t.Run("non-activity is neutral", func(t *testing.T) {
		item := domain.ContentItem{ID: "st-1", Kind: domain.KindAccommodation, Name: "Hotel"}
		got, _ := scoreDifficulty(item, matchTestPreferences())
		assert.Equal(t, neutralScore, got)
	})
}

func TestScoreAccessibility(t *testing.T) {
	accessible := createMatchTestActivity("1", nil, 50, 150)
	inaccessible := createMatchTestActivity("2", nil, 50, 150)
	inaccessible.Activity.WheelchairAccessible = false

	t.Run("not required scores full for everything", func(t *testing.T) {
		prefs := matchTestPreferences()
		got, _ := scoreAccessibility(inaccessible, prefs)
		assert.Equal(t, 1.0, got)
	})

	t.Run("required zeroes inaccessible items with a reason", func(t *testing.T) {
		prefs := matchTestPreferences()
		prefs.RequiresWheelchairAccess = true

		got, reason := scoreAccessibility(inaccessible, prefs)
		assert.Equal(t, 0.0, got)
		assert.Equal(t, "not wheelchair accessible", reason)

		got, reason = scoreAccessibility(accessible, prefs)
		assert.Equal(t, 1.0, got)
		assert.Equal(t, "wheelchair accessible", reason)
	})
}

func TestScore_WheelchairReasonSurfaces(t *testing.T) {
	matcher := NewMatcher(nil)
	prefs := matchTestPreferences()
	prefs.RequiresWheelchairAccess = true

	item := createMatchTestActivity("1", []string{"food"}, 50, 150)
	item.Activity.WheelchairAccessible = false

	score := matcher.Score(item, prefs)
	assert.Contains(t, score.Reasons, "not wheelchair accessible")
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.0, clamp01(0))
	assert.Equal(t, 0.5, clamp01(0.5))
	assert.Equal(t, 1.0, clamp01(1))
	assert.Equal(t, 1.0, clamp01(1.5))
}
