package matching

import (
	"math"

	"github.com/Darpan-10/HUMAN-API/internal/models"
)

// Score bands for the user-facing labels. Boundaries are inclusive on the
// lower end.
const (
	highBand = 70
	midBand  = 40
)

// Labels maps a hidden score to the (match label, compatibility) pair
// shown to users. The number itself never leaves this function. A score
// that is not a real number falls back to a fixed safe default;
// out-of-range scores are clamped into [0,100].
func Labels(score float64) (string, string) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "Recommended Connection", "Low"
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	switch {
	case score >= highBand:
		return "Suggested Match", "Highly Compatible"
	case score >= midBand:
		return "Compatible", "Potentially Compatible"
	default:
		return "Recommended Connection", "Worth Exploring"
	}
}

// FormatSuggestion builds the public view of a ranked candidate: identity
// and profile fields plus the label pair, with the numeric score dropped.
func FormatSuggestion(c models.MatchCandidate) models.Suggestion {
	label, compatibility := Labels(c.Score)
	return models.Suggestion{
		UserID:        c.CandidateID,
		Name:          c.Name,
		Skills:        c.Skills,
		Interests:     c.Interests,
		Bio:           c.Bio,
		MatchLabel:    label,
		Compatibility: compatibility,
	}
}
