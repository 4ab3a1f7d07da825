package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Darpan-10/HUMAN-API/internal/cache"
	"github.com/Darpan-10/HUMAN-API/internal/matching"
	"github.com/Darpan-10/HUMAN-API/internal/models"
	mongorepo "github.com/Darpan-10/HUMAN-API/internal/repositories/mongo"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

// MatchConfig is the ranking policy, passed in explicitly so the service
// never reads ambient state.
type MatchConfig struct {
	// MinScore is the positive bar a candidate must clear to appear at
	// all. 20 keeps out pairs whose only signal is the complementary
	// bonus diluted across inactive signals.
	MinScore float64
	// DefaultLimit is used when the caller asks for less than 1.
	DefaultLimit int
	// MaxLimit caps the caller-supplied limit.
	MaxLimit int
	// IntentsPerUser is how many recent ACTIVE intents feed a user's
	// keyword context.
	IntentsPerUser int
	// CacheTTL bounds how long a formatted suggestion list may be served
	// from cache. Zero disables caching.
	CacheTTL time.Duration
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MinScore:       20,
		DefaultLimit:   5,
		MaxLimit:       10,
		IntentsPerUser: 3,
		CacheTTL:       time.Minute,
	}
}

type MatchService interface {
	// RankMatches returns the ordered best collaborators for a user.
	// It is best-effort by contract: any failure degrades to a smaller
	// or empty result, never an error.
	RankMatches(ctx context.Context, targetID string, limit int) []models.MatchCandidate
	// Suggestions is RankMatches plus label formatting and caching; the
	// result carries no numeric scores.
	Suggestions(ctx context.Context, targetID string, limit int) []models.Suggestion
}

type matchService struct {
	users   mongorepo.UserRepository
	intents mongorepo.IntentRepository
	cache   cache.Cache
	log     *logrus.Logger
	cfg     MatchConfig
}

func NewMatchService(users mongorepo.UserRepository, intents mongorepo.IntentRepository, c cache.Cache, log *logrus.Logger, cfg MatchConfig) MatchService {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 5
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 10
	}
	if cfg.IntentsPerUser <= 0 {
		cfg.IntentsPerUser = 3
	}
	return &matchService{users: users, intents: intents, cache: c, log: log, cfg: cfg}
}

// clampLimit folds any caller-supplied limit into [1, MaxLimit];
// nonsense low values get the default instead of an error.
func (s *matchService) clampLimit(limit int) int {
	if limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	if limit < 1 {
		return s.cfg.DefaultLimit
	}
	return limit
}

func (s *matchService) RankMatches(ctx context.Context, targetID string, limit int) []models.MatchCandidate {
	limit = s.clampLimit(limit)

	oid, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		s.log.WithField("user_id", targetID).Warn("rank: invalid user id")
		return []models.MatchCandidate{}
	}

	target, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			s.log.WithField("user_id", targetID).Warn("rank: user not found")
		} else {
			s.log.WithError(err).WithField("user_id", targetID).Error("rank: failed to fetch user")
		}
		return []models.MatchCandidate{}
	}
	if target.Availability == models.AvailabilityInactive {
		s.log.WithField("user_id", targetID).Info("rank: user inactive, no suggestions")
		return []models.MatchCandidate{}
	}

	targetSignals := matching.ProfileSignals{
		Skills:    target.Skills,
		Interests: target.Interests,
		Keywords:  s.targetKeywords(ctx, target),
	}

	candidates, err := s.users.FindOthersAvailable(ctx, oid)
	if err != nil {
		s.log.WithError(err).WithField("user_id", targetID).Error("rank: failed to fetch candidates")
		return []models.MatchCandidate{}
	}

	keywordsByOwner := s.bulkKeywords(ctx)

	matches := make([]models.MatchCandidate, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for i := range candidates {
		other := &candidates[i]
		otherID := other.ID.Hex()
		if _, dup := seen[otherID]; dup {
			continue
		}
		seen[otherID] = struct{}{}

		otherKeywords := keywordsByOwner[otherID]
		if len(otherKeywords) == 0 {
			otherKeywords = other.Interests
		}

		score := matching.Score(targetSignals, matching.ProfileSignals{
			Skills:    other.Skills,
			Interests: other.Interests,
			Keywords:  otherKeywords,
		})
		if score <= s.cfg.MinScore {
			continue
		}
		matches = append(matches, models.MatchCandidate{
			CandidateID: otherID,
			Name:        other.Name,
			Skills:      other.Skills,
			Interests:   other.Interests,
			Bio:         other.Bio,
			Score:       score,
		})
	}

	// Stable sort keeps equal-score candidates in input order, so the
	// ranking is deterministic for a given store state.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func (s *matchService) Suggestions(ctx context.Context, targetID string, limit int) []models.Suggestion {
	limit = s.clampLimit(limit)
	key := suggestionCacheKey(targetID, limit)
	if s.cache != nil && s.cfg.CacheTTL > 0 {
		var cached []models.Suggestion
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached
		}
	}

	ranked := s.RankMatches(ctx, targetID, limit)
	out := make([]models.Suggestion, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, matching.FormatSuggestion(m))
	}

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if err := s.cache.SetJSON(ctx, key, out, s.cfg.CacheTTL); err != nil {
			s.log.WithError(err).Warn("suggestions: cache write failed")
		}
	}
	return out
}

// targetKeywords assembles the target's keyword context: keywords of the
// most recent ACTIVE intents, falling back to declared interests when
// there are none or the query fails.
func (s *matchService) targetKeywords(ctx context.Context, target *models.User) []string {
	intents, err := s.intents.FindActiveByUser(ctx, target.ID, int64(s.cfg.IntentsPerUser))
	if err != nil {
		s.log.WithError(err).WithField("user_id", target.ID.Hex()).Error("rank: failed to fetch intents, using interests")
		return target.Interests
	}
	var keywords []string
	for _, in := range intents {
		keywords = append(keywords, in.Keywords...)
	}
	if len(keywords) == 0 {
		return target.Interests
	}
	return keywords
}

// bulkKeywords fetches every ACTIVE intent once and groups keywords by
// owner, taking at most IntentsPerUser most-recent intents each. One
// query instead of one per candidate.
func (s *matchService) bulkKeywords(ctx context.Context) map[string][]string {
	all, err := s.intents.ListActive(ctx)
	if err != nil {
		s.log.WithError(err).Error("rank: bulk intent fetch failed, falling back to interests")
		return map[string][]string{}
	}

	counts := make(map[string]int)
	grouped := make(map[string][]string)
	for _, in := range all {
		owner := in.UserID.Hex()
		if counts[owner] >= s.cfg.IntentsPerUser {
			continue
		}
		counts[owner]++
		grouped[owner] = append(grouped[owner], in.Keywords...)
	}
	return grouped
}
