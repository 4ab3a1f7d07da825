package models

// MatchCandidate is the ranker's per-candidate view. It exists only for
// the duration of a suggestions request and is never persisted. Score is
// the hidden 0-100 compatibility number; it stays inside the service and
// must not be serialized to API callers.
type MatchCandidate struct {
	CandidateID string
	Name        string
	Skills      []string
	Interests   []string
	Bio         string
	Score       float64
}

// Suggestion is the public shape of a match: the hidden score is replaced
// by the qualitative label pair.
type Suggestion struct {
	UserID        string   `json:"user_id"`
	Name          string   `json:"name"`
	Skills        []string `json:"skills"`
	Interests     []string `json:"interests"`
	Bio           string   `json:"bio,omitempty"`
	MatchLabel    string   `json:"match_label"`
	Compatibility string   `json:"compatibility"`
}
