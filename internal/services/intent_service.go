package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Darpan-10/HUMAN-API/internal/cache"
	"github.com/Darpan-10/HUMAN-API/internal/matching"
	"github.com/Darpan-10/HUMAN-API/internal/models"
	mongorepo "github.com/Darpan-10/HUMAN-API/internal/repositories/mongo"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

const (
	intentTextMin = 10
	intentTextMax = 500
)

type IntentService interface {
	Submit(ctx context.Context, userID, text string, intentType models.IntentType) (*models.Intent, error)
	ListMine(ctx context.Context, userID string) ([]models.Intent, error)
	SetStatus(ctx context.Context, userID, intentID string, status models.IntentStatus) error
}

type intentService struct {
	intents mongorepo.IntentRepository
	users   mongorepo.UserRepository
	cache   cache.Cache
	ttl     time.Duration
}

// NewIntentService wires the intent CRUD flow. ttl is how long a new
// intent stays eligible for matching (the configured expiration window).
func NewIntentService(intents mongorepo.IntentRepository, users mongorepo.UserRepository, c cache.Cache, ttl time.Duration) IntentService {
	return &intentService{intents: intents, users: users, cache: c, ttl: ttl}
}

func (s *intentService) Submit(ctx context.Context, userID, text string, intentType models.IntentType) (*models.Intent, error) {
	const op = "IntentService.Submit"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid user id", err)
	}

	text = strings.TrimSpace(text)
	if len(text) < intentTextMin || len(text) > intentTextMax {
		return nil, utils.E(utils.CodeInvalidArgument, op, "intent text must be 10-500 characters", nil)
	}
	if intentType == "" {
		intentType = models.IntentLookingForTeam
	}
	if !intentType.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid intent type", nil)
	}

	if _, err := s.users.FindByID(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch user", err)
	}

	now := time.Now().UTC()
	in := &models.Intent{
		UserID:                oid,
		Text:                  text,
		IntentType:            intentType,
		Keywords:              matching.ExtractKeywords(text),
		Status:                models.IntentStatusActive,
		KeywordsAutoGenerated: true,
		CreatedAt:             now,
		UpdatedAt:             now,
		ExpiresAt:             now.Add(s.ttl),
	}
	if err := s.intents.Create(ctx, in); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create intent", err)
	}

	// A new intent changes this user's keyword context.
	invalidateSuggestions(ctx, s.cache, userID)

	return in, nil
}

func (s *intentService) ListMine(ctx context.Context, userID string) ([]models.Intent, error) {
	const op = "IntentService.ListMine"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid user id", err)
	}
	out, err := s.intents.FindActiveByUser(ctx, oid, 0)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch intents", err)
	}
	if out == nil {
		out = []models.Intent{}
	}
	return out, nil
}

func (s *intentService) SetStatus(ctx context.Context, userID, intentID string, status models.IntentStatus) error {
	const op = "IntentService.SetStatus"

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "invalid user id", err)
	}
	iid, err := primitive.ObjectIDFromHex(intentID)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "invalid intent id", err)
	}
	if !status.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "invalid status", nil)
	}

	if err := s.intents.SetStatus(ctx, iid, uid, status); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "intent not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update intent", err)
	}
	invalidateSuggestions(ctx, s.cache, userID)
	return nil
}
