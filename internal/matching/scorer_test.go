package matching

import "testing"

func TestScore_AllEmpty(t *testing.T) {
	got := Score(ProfileSignals{}, ProfileSignals{})
	if got != 0 {
		t.Errorf("Score(empty, empty) = %v, want exactly 0", got)
	}
}

func TestScore_EmptySignalDoesNotDilute(t *testing.T) {
	// Only skills are present on both sides; missing interests/keywords
	// must not drag the normalized score down.
	a := ProfileSignals{Skills: []string{"python"}}
	b := ProfileSignals{Skills: []string{"python"}}
	got := Score(a, b)
	if got != 100 {
		t.Errorf("perfect skill overlap with no other signals = %v, want 100", got)
	}
}

func TestScore_DisjointSignalContributesZero(t *testing.T) {
	a := ProfileSignals{Skills: []string{"python"}, Keywords: []string{"web"}}
	b := ProfileSignals{Skills: []string{"java"}, Keywords: []string{"web"}}
	// skills: 0 at weight 3; keywords: 100 at weight 2 -> 200/5 = 40
	got := Score(a, b)
	if got != 40 {
		t.Errorf("Score = %v, want 40", got)
	}
}

func TestScore_WorkedExample(t *testing.T) {
	a := ProfileSignals{
		Skills:    []string{"python", "react"},
		Interests: []string{"ai"},
		Keywords:  []string{"python", "web"},
	}
	b := ProfileSignals{
		Skills:    []string{"python", "vue"},
		Interests: []string{"ai", "design"},
		Keywords:  []string{"python", "design"},
	}

	got := Score(a, b)
	if got <= 0 || got >= 100 {
		t.Fatalf("Score = %v, want strictly between 0 and 100", got)
	}

	// Same pair but b shares no skills: score must drop.
	weaker := b
	weaker.Skills = []string{"vue"}
	lower := Score(a, weaker)
	if lower >= got {
		t.Errorf("removing skill overlap should lower score: %v -> %v", got, lower)
	}
}

func TestScore_MonotonicOnSharedSkills(t *testing.T) {
	a := ProfileSignals{Skills: []string{"python", "react"}}
	b := ProfileSignals{Skills: []string{"python", "vue"}}
	before := Score(a, b)

	a.Skills = append(a.Skills, "go")
	b.Skills = append(b.Skills, "go")
	after := Score(a, b)

	if after < before {
		t.Errorf("adding a common skill decreased score: %v -> %v", before, after)
	}
}

func TestScore_ComplementaryBonusIsDirectional(t *testing.T) {
	mentor := ProfileSignals{Skills: []string{"python"}}
	learner := ProfileSignals{Skills: []string{"figma"}, Interests: []string{"python"}}

	// mentor's skills intersect learner's interests -> bonus applies.
	forward := Score(mentor, learner)
	// learner's skills do not intersect mentor's (empty) interests.
	backward := Score(learner, mentor)

	if forward <= backward {
		t.Errorf("expected directional bonus: forward %v, backward %v", forward, backward)
	}
}

func TestScore_CappedAt100(t *testing.T) {
	a := ProfileSignals{Skills: []string{"python"}, Interests: []string{"ai"}, Keywords: []string{"ai"}}
	b := ProfileSignals{Skills: []string{"python"}, Interests: []string{"ai", "python"}, Keywords: []string{"ai"}}
	got := Score(a, b)
	if got > 100 {
		t.Errorf("Score = %v, want at most 100", got)
	}
}
