// Command seed wipes the users and intents collections and loads a small
// set of sample campus profiles for local development.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Darpan-10/HUMAN-API/config"
	"github.com/Darpan-10/HUMAN-API/internal/matching"
	"github.com/Darpan-10/HUMAN-API/internal/models"
	mongorepo "github.com/Darpan-10/HUMAN-API/internal/repositories/mongo"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

type seedUser struct {
	email     string
	name      string
	skills    []string
	interests []string
	bio       string
	intents   []string
}

var sampleUsers = []seedUser{
	{
		email:     "alice@campus.edu",
		name:      "Alice Chen",
		skills:    []string{"python", "fastapi", "mongodb"},
		interests: []string{"web dev", "ai", "sustainability"},
		bio:       "3rd year CS student building green tech",
		intents:   []string{"Looking for teammates to build a campus sustainability tracker with Python"},
	},
	{
		email:     "bob@campus.edu",
		name:      "Bob Johnson",
		skills:    []string{"react", "javascript", "nodejs"},
		interests: []string{"mobile dev", "ui/ux", "design"},
		bio:       "Frontend dev enthusiast",
		intents:   []string{"Building a social events app for campus, need a designer and backend help"},
	},
	{
		email:     "charlie@campus.edu",
		name:      "Charlie Patel",
		skills:    []string{"python", "tensorflow", "pytorch"},
		interests: []string{"machine learning", "ai", "data science"},
		bio:       "AI researcher passionate about NLP",
		intents:   []string{"Want to collaborate on a machine learning project around data science for student wellbeing"},
	},
	{
		email:     "diana@campus.edu",
		name:      "Diana Lee",
		skills:    []string{"flutter", "dart", "firebase"},
		interests: []string{"mobile app", "startups"},
		bio:       "Mobile app developer with startup experience",
		intents:   []string{"Looking for a team to build a mobile app with Flutter for campus events"},
	},
	{
		email:     "evan@campus.edu",
		name:      "Evan Martinez",
		skills:    []string{"java", "spring", "docker"},
		interests: []string{"backend", "devops", "cloud"},
		bio:       "Backend engineer interested in scalable systems",
		intents:   []string{"Happy to share backend and devops skills, teach me some machine learning in return"},
	},
	{
		email:     "fiona@campus.edu",
		name:      "Fiona Okafor",
		skills:    []string{"figma", "illustration", "css"},
		interests: []string{"design", "social", "web dev"},
		bio:       "Design student who codes a little",
		intents:   []string{"Offering design skill share, looking for a web project with real users"},
	},
}

func main() {
	_ = godotenv.Load()

	settings := config.LoadSettings()

	client, err := config.InitMongo(settings.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(settings.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.Collection("users").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear users: %v", err)
	}
	if _, err := db.Collection("intents").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear intents: %v", err)
	}

	hash, err := utils.HashPassword("pass1234")
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	users := mongorepo.NewUserRepo(db)
	intents := mongorepo.NewIntentRepo(db)

	now := time.Now().UTC()
	for _, su := range sampleUsers {
		u := &models.User{
			Email:        su.email,
			PasswordHash: hash,
			Name:         su.name,
			Skills:       models.NormalizeTags(su.skills),
			Interests:    models.NormalizeTags(su.interests),
			Bio:          su.bio,
			Availability: models.AvailabilityActive,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("failed to seed user %s: %v", su.email, err)
		}

		for _, text := range su.intents {
			in := &models.Intent{
				UserID:                u.ID,
				Text:                  text,
				IntentType:            models.IntentLookingForTeam,
				Keywords:              matching.ExtractKeywords(text),
				Status:                models.IntentStatusActive,
				KeywordsAutoGenerated: true,
				ExpiresAt:             now.Add(settings.IntentTTL),
			}
			if err := intents.Create(ctx, in); err != nil {
				log.Fatalf("failed to seed intent for %s: %v", su.email, err)
			}
		}
	}

	if err := config.EnsureIndexes(db); err != nil {
		log.Printf("index creation issue: %v", err)
	}

	log.Printf("seeded %d users", len(sampleUsers))
}
