package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the service relies on. Safe to call
// on every startup; Mongo ignores indexes that already exist.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("uniq_email").
				SetUnique(true),
		},
		// Candidate enumeration filter
		{
			Keys:    bson.D{{Key: "is_deleted", Value: 1}, {Key: "availability", Value: 1}},
			Options: options.Index().SetName("by_deleted_availability"),
		},
	})
	if err != nil {
		return err
	}

	intents := db.Collection("intents")
	_, err = intents.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// Per-user keyword context queries
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_user_created"),
		},
		// Bulk ACTIVE scan for ranking
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_status_created"),
		},
		// Expiry sweeps. Not a TTL index: expired intents are archived,
		// not deleted.
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("by_expires_at"),
		},
	})
	return err
}
