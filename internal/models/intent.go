package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IntentType string

const (
	IntentLookingForTeam  IntentType = "LOOKING_FOR_TEAM"
	IntentBuildingProject IntentType = "BUILDING_PROJECT"
	IntentSkillShare      IntentType = "SKILL_SHARE"
)

func (t IntentType) Valid() bool {
	switch t {
	case IntentLookingForTeam, IntentBuildingProject, IntentSkillShare:
		return true
	}
	return false
}

type IntentStatus string

const (
	IntentStatusActive   IntentStatus = "ACTIVE"
	IntentStatusMatched  IntentStatus = "MATCHED"
	IntentStatusArchived IntentStatus = "ARCHIVED"
)

func (s IntentStatus) Valid() bool {
	switch s {
	case IntentStatusActive, IntentStatusMatched, IntentStatusArchived:
		return true
	}
	return false
}

// Intent is a short free-text collaboration goal owned by one user.
// Keywords are derived from Text at submission time and never edited.
type Intent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	Text       string             `bson:"text" json:"text"`
	IntentType IntentType         `bson:"intent_type" json:"intent_type"`
	Keywords   []string           `bson:"keywords" json:"keywords"`
	Status     IntentStatus       `bson:"status" json:"status"`

	// True while keywords came from the extractor rather than manual edits.
	KeywordsAutoGenerated bool `bson:"keywords_auto_generated" json:"keywords_auto_generated"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}
