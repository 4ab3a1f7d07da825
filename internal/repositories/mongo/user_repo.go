package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Darpan-10/HUMAN-API/internal/models"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	FindOthersAvailable(ctx context.Context, excludeID primitive.ObjectID) ([]models.User, error)
}

type userRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepository {
	return &userRepo{col: db.Collection("users")}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

// FindByEmail returns the user regardless of soft-delete state; callers
// that must hide deleted users check IsDeleted themselves (registration
// needs the row to keep the email unique).
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id, "is_deleted": false}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if set == nil {
		set = bson.M{}
	}
	set["updated_at"] = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "is_deleted": false},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *userRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "is_deleted": false},
		bson.M{"$set": bson.M{
			"is_deleted":   true,
			"availability": models.AvailabilityInactive,
			"updated_at":   time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// FindOthersAvailable lists every candidate eligible for matching: not
// the excluded user, not soft-deleted, availability ACTIVE. ON_BREAK and
// INACTIVE users are filtered out here.
func (r *userRepo) FindOthersAvailable(ctx context.Context, excludeID primitive.ObjectID) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"_id":          bson.M{"$ne": excludeID},
		"is_deleted":   false,
		"availability": models.AvailabilityActive,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
