package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Darpan-10/HUMAN-API/internal/cache"
	"github.com/Darpan-10/HUMAN-API/internal/models"
	mongorepo "github.com/Darpan-10/HUMAN-API/internal/repositories/mongo"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	Skills    []string
	Interests []string
	Bio       string
}

// ProfileUpdate carries partial profile changes; nil fields are left
// untouched.
type ProfileUpdate struct {
	Name         *string
	Skills       *[]string
	Interests    *[]string
	Bio          *string
	Availability *models.Availability
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Get(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error)
	Delete(ctx context.Context, userID string) error
}

type userService struct {
	users mongorepo.UserRepository
	cache cache.Cache
}

func NewUserService(users mongorepo.UserRepository, c cache.Cache) UserService {
	return &userService{users: users, cache: c}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "UserService.Register"

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, utils.E(utils.CodeInvalidArgument, op, "a valid email is required", nil)
	}
	if len(in.Password) < 8 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "password must be at least 8 characters", nil)
	}
	if len(in.Name) < 2 || len(in.Name) > 100 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name must be 2-100 characters", nil)
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, utils.E(utils.CodeConflict, op, "email already registered", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Skills:       models.NormalizeTags(in.Skills),
		Interests:    models.NormalizeTags(in.Interests),
		Bio:          strings.TrimSpace(in.Bio),
		Availability: models.AvailabilityActive,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	const op = "UserService.Authenticate"

	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch user", err)
	}
	if u.IsDeleted {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
	}
	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid email or password", nil)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, userID string) (*models.User, error) {
	const op = "UserService.Get"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid user id", err)
	}
	u, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch user", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	const op = "UserService.UpdateProfile"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid user id", err)
	}

	set := bson.M{}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if len(name) < 2 || len(name) > 100 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "name must be 2-100 characters", nil)
		}
		set["name"] = name
	}
	if upd.Skills != nil {
		set["skills"] = models.NormalizeTags(*upd.Skills)
	}
	if upd.Interests != nil {
		set["interests"] = models.NormalizeTags(*upd.Interests)
	}
	if upd.Bio != nil {
		set["bio"] = strings.TrimSpace(*upd.Bio)
	}
	if upd.Availability != nil {
		if !upd.Availability.Valid() {
			return nil, utils.E(utils.CodeInvalidArgument, op, "invalid availability", nil)
		}
		set["availability"] = *upd.Availability
	}
	if len(set) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no fields to update", nil)
	}

	if err := s.users.Update(ctx, oid, set); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}

	// Profile fields feed the matcher, so cached suggestions are stale now.
	invalidateSuggestions(ctx, s.cache, userID)

	return s.Get(ctx, userID)
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	const op = "UserService.Delete"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "invalid user id", err)
	}
	if err := s.users.SoftDelete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}
	invalidateSuggestions(ctx, s.cache, userID)
	return nil
}
