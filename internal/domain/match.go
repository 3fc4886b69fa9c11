package domain

// MatchCategory is a coarse label for a match score.
type MatchCategory string

// Match categories, from best to worst.
const (
	MatchExcellent MatchCategory = "excellent"
	MatchGood      MatchCategory = "good"
	MatchFair      MatchCategory = "fair"
	MatchPoor      MatchCategory = "poor"
)

// Category thresholds. Scores are in [0,1].
const (
	excellentThreshold = 0.8
	goodThreshold      = 0.6
	fairThreshold      = 0.4
)

// CategoryForScore maps a score in [0,1] to its category label.
func CategoryForScore(score float64) MatchCategory {
	switch {
	case score >= excellentThreshold:
		return MatchExcellent
	case score >= goodThreshold:
		return MatchGood
	case score >= fairThreshold:
		return MatchFair
	default:
		return MatchPoor
	}
}

// MatchScore is the result of scoring one content item against a
// set of travel preferences.
type MatchScore struct {
	// ContentID identifies the scored content item
	ContentID string `json:"contentId"`

	// Score is the weighted match score in [0,1]; higher is better
	Score float64 `json:"score"`

	// Reasons lists human-readable explanations for the score
	Reasons []string `json:"reasons,omitempty"`

	// Category is the coarse label derived from Score
	Category MatchCategory `json:"category"`
}
