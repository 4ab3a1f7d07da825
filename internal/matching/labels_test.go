package matching

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/Darpan-10/HUMAN-API/internal/models"
)

func TestLabels_Bands(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		wantLabel string
		wantDesc  string
	}{
		{"high band lower bound", 70, "Suggested Match", "Highly Compatible"},
		{"high band", 92.4, "Suggested Match", "Highly Compatible"},
		{"mid band lower bound", 40, "Compatible", "Potentially Compatible"},
		{"mid band", 69.9, "Compatible", "Potentially Compatible"},
		{"low band", 39.9, "Recommended Connection", "Worth Exploring"},
		{"zero", 0, "Recommended Connection", "Worth Exploring"},
		{"clamped negative", -5, "Recommended Connection", "Worth Exploring"},
		{"clamped above range", 150, "Suggested Match", "Highly Compatible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, desc := Labels(tt.score)
			if label != tt.wantLabel || desc != tt.wantDesc {
				t.Errorf("Labels(%v) = (%q, %q), want (%q, %q)", tt.score, label, desc, tt.wantLabel, tt.wantDesc)
			}
		})
	}
}

func TestLabels_MalformedScore(t *testing.T) {
	for _, score := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		label, desc := Labels(score)
		if label != "Recommended Connection" || desc != "Low" {
			t.Errorf("Labels(%v) = (%q, %q), want safe default", score, label, desc)
		}
	}
}

func TestFormatSuggestion_HidesScore(t *testing.T) {
	s := FormatSuggestion(models.MatchCandidate{
		CandidateID: "abc123",
		Name:        "Alice Chen",
		Skills:      []string{"python"},
		Interests:   []string{"ai"},
		Bio:         "CS student",
		Score:       83.5,
	})

	if s.MatchLabel != "Suggested Match" || s.Compatibility != "Highly Compatible" {
		t.Errorf("unexpected labels: %q / %q", s.MatchLabel, s.Compatibility)
	}
	if s.UserID != "abc123" || s.Name != "Alice Chen" {
		t.Errorf("identity fields not carried over: %+v", s)
	}

	// The serialized view must not leak the number in any form.
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "score") || strings.Contains(string(b), "83.5") {
		t.Errorf("serialized suggestion leaks the score: %s", b)
	}
}
