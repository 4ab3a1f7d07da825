package matching

// Signal weights. Skills weigh heaviest, then interests, then intent
// keywords; the complementary bonus rewards one side being able to teach
// the other. Tunable policy, kept from the original service.
const (
	skillWeight      = 3.0
	interestWeight   = 2.5
	keywordWeight    = 2.0
	complementWeight = 1.5
	complementBonus  = 15.0
)

// ProfileSignals is everything the scorer knows about one side of a pair:
// declared skills and interests plus the current keyword context.
type ProfileSignals struct {
	Skills    []string
	Interests []string
	Keywords  []string
}

// Score computes the hidden 0-100 compatibility between a and b. Each
// overlap signal contributes |intersection|/max(|A|,|B|) scaled to 0-100
// and is counted only when both sides are non-empty, so an absent signal
// does not dilute the rest. The complementary term is directional: a's
// skills intersecting b's interests means a can teach b something. With
// no active signal at all the score is exactly 0.
func Score(a, b ProfileSignals) float64 {
	var score, weights float64

	skillsA := toSet(a.Skills)
	skillsB := toSet(b.Skills)
	if len(skillsA) > 0 && len(skillsB) > 0 {
		score += overlapRatio(skillsA, skillsB) * 100 * skillWeight
		weights += skillWeight
	}

	interestsA := toSet(a.Interests)
	interestsB := toSet(b.Interests)
	if len(interestsA) > 0 && len(interestsB) > 0 {
		score += overlapRatio(interestsA, interestsB) * 100 * interestWeight
		weights += interestWeight
	}

	keywordsA := toSet(a.Keywords)
	keywordsB := toSet(b.Keywords)
	if len(keywordsA) > 0 && len(keywordsB) > 0 {
		score += overlapRatio(keywordsA, keywordsB) * 100 * keywordWeight
		weights += keywordWeight
	}

	if len(skillsA) > 0 && len(interestsB) > 0 && intersectionSize(skillsA, interestsB) > 0 {
		score += complementBonus * complementWeight
		weights += complementWeight
	}

	if weights == 0 {
		return 0
	}

	final := score / weights
	if final > 100 {
		final = 100
	}
	return final
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

// overlapRatio is |A∩B| / max(|A|,|B|). The asymmetric denominator keeps
// a tiny profile from scoring 100 against a huge one.
func overlapRatio(a, b map[string]struct{}) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return float64(intersectionSize(a, b)) / float64(maxLen)
}
