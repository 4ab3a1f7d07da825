package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Darpan-10/HUMAN-API/internal/models"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

func TestSubmit_ValidatesText(t *testing.T) {
	owner := newTestUser("owner", nil, nil, models.AvailabilityActive, false)
	svc := NewIntentService(&fakeIntentRepo{}, &fakeUserRepo{users: []models.User{owner}}, nil, 48*time.Hour)

	tests := []struct {
		name string
		text string
	}{
		{"too short", "tiny"},
		{"whitespace only", "              "},
		{"too long", strings.Repeat("x", 501)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), owner.ID.Hex(), tt.text, "")
			if !utils.IsCode(err, utils.CodeInvalidArgument) {
				t.Errorf("Submit(%q) error = %v, want INVALID_ARGUMENT", tt.text, err)
			}
		})
	}
}

func TestSubmit_DerivesKeywordsAndExpiry(t *testing.T) {
	owner := newTestUser("owner", nil, nil, models.AvailabilityActive, false)
	repo := &fakeIntentRepo{}
	svc := NewIntentService(repo, &fakeUserRepo{users: []models.User{owner}}, nil, 48*time.Hour)

	in, err := svc.Submit(context.Background(), owner.ID.Hex(), "  Looking for a React developer for a machine learning project  ", "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if in.IntentType != models.IntentLookingForTeam {
		t.Errorf("IntentType = %v, want default LOOKING_FOR_TEAM", in.IntentType)
	}
	if in.Status != models.IntentStatusActive {
		t.Errorf("Status = %v, want ACTIVE", in.Status)
	}
	if strings.HasPrefix(in.Text, " ") || strings.HasSuffix(in.Text, " ") {
		t.Errorf("text not trimmed: %q", in.Text)
	}
	found := false
	for _, kw := range in.Keywords {
		if kw == "machine learning" {
			found = true
		}
	}
	if !found {
		t.Errorf("keywords %v missing %q", in.Keywords, "machine learning")
	}
	if !in.KeywordsAutoGenerated {
		t.Error("KeywordsAutoGenerated should be true on submission")
	}

	wantExpiry := in.CreatedAt.Add(48 * time.Hour)
	if !in.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", in.ExpiresAt, wantExpiry)
	}
	if len(repo.intents) != 1 {
		t.Errorf("stored %d intents, want 1", len(repo.intents))
	}
}

func TestSubmit_UnknownUser(t *testing.T) {
	svc := NewIntentService(&fakeIntentRepo{}, &fakeUserRepo{}, nil, 48*time.Hour)

	_, err := svc.Submit(context.Background(), newTestUser("x", nil, nil, models.AvailabilityActive, false).ID.Hex(),
		"Looking for a project team", "")
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestSubmit_RejectsUnknownType(t *testing.T) {
	owner := newTestUser("owner", nil, nil, models.AvailabilityActive, false)
	svc := NewIntentService(&fakeIntentRepo{}, &fakeUserRepo{users: []models.User{owner}}, nil, 48*time.Hour)

	_, err := svc.Submit(context.Background(), owner.ID.Hex(), "Looking for a project team", "HANGING_OUT")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Errorf("error = %v, want INVALID_ARGUMENT", err)
	}
}
