package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Darpan-10/HUMAN-API/internal/models"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

type IntentRepository interface {
	Create(ctx context.Context, in *models.Intent) error
	FindActiveByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Intent, error)
	ListActive(ctx context.Context) ([]models.Intent, error)
	SetStatus(ctx context.Context, id, userID primitive.ObjectID, status models.IntentStatus) error
	ArchiveExpired(ctx context.Context, now time.Time) (int64, error)
}

type intentRepo struct {
	col *mongo.Collection
}

func NewIntentRepo(db *mongo.Database) IntentRepository {
	return &intentRepo{col: db.Collection("intents")}
}

func (r *intentRepo) Create(ctx context.Context, in *models.Intent) error {
	now := time.Now().UTC()
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now
	}
	if in.UpdatedAt.IsZero() {
		in.UpdatedAt = now
	}
	res, err := r.col.InsertOne(ctx, in)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		in.ID = oid
	}
	return nil
}

func (r *intentRepo) FindActiveByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Intent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID, "status": models.IntentStatusActive},
		opts,
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Intent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive fetches every ACTIVE intent in one query, most recent first.
// The ranker groups them by owner so a ranking request costs a constant
// number of round trips however many candidates exist.
func (r *intentRepo) ListActive(ctx context.Context) ([]models.Intent, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"status": models.IntentStatusActive},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Intent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *intentRepo) SetStatus(ctx context.Context, id, userID primitive.ObjectID, status models.IntentStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
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

// ArchiveExpired flips every ACTIVE intent past its expiry to ARCHIVED
// and reports how many were touched.
func (r *intentRepo) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{
			"status":     models.IntentStatusActive,
			"expires_at": bson.M{"$lte": now.UTC()},
		},
		bson.M{"$set": bson.M{
			"status":     models.IntentStatusArchived,
			"updated_at": now.UTC(),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
