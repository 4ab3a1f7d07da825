package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Availability string

const (
	AvailabilityActive   Availability = "ACTIVE"
	AvailabilityInactive Availability = "INACTIVE"
	AvailabilityOnBreak  Availability = "ON_BREAK"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityActive, AvailabilityInactive, AvailabilityOnBreak:
		return true
	}
	return false
}

// User is the persisted profile. Users are never hard-deleted; IsDeleted
// hides them from login, matching, and lookups.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Skills       []string           `bson:"skills" json:"skills"`
	Interests    []string           `bson:"interests" json:"interests"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Availability Availability       `bson:"availability" json:"availability"`
	IsDeleted    bool               `bson:"is_deleted" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// PublicUser is the shape exposed to other users (no email).
type PublicUser struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Bio       string   `json:"bio,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Skills:    u.Skills,
		Interests: u.Interests,
		Bio:       u.Bio,
	}
}

// NormalizeTags lowercases, trims, and deduplicates a skills/interests
// list, dropping empty entries. First-occurrence order is preserved.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
