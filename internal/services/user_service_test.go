package services

import (
	"context"
	"testing"

	"github.com/Darpan-10/HUMAN-API/internal/models"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:     "alice@campus.edu",
		Password:  "supersecret",
		Name:      "Alice Chen",
		Skills:    []string{" Python ", "python", "React", ""},
		Interests: []string{"AI"},
		Bio:       "CS student",
	}
}

func TestRegister_NormalizesTags(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, nil)

	u, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if len(u.Skills) != 2 || u.Skills[0] != "python" || u.Skills[1] != "react" {
		t.Errorf("Skills = %v, want [python react]", u.Skills)
	}
	if len(u.Interests) != 1 || u.Interests[0] != "ai" {
		t.Errorf("Interests = %v, want [ai]", u.Interests)
	}
	if u.Availability != models.AvailabilityActive {
		t.Errorf("Availability = %v, want ACTIVE", u.Availability)
	}
	if u.PasswordHash == "" || u.PasswordHash == "supersecret" {
		t.Error("password not hashed")
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, nil)

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"short password", func(in *RegisterInput) { in.Password = "short" }},
		{"short name", func(in *RegisterInput) { in.Name = "A" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegisterInput()
			tt.mutate(&in)
			if _, err := svc.Register(context.Background(), in); !utils.IsCode(err, utils.CodeInvalidArgument) {
				t.Errorf("error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, nil)

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), validRegisterInput()); !utils.IsCode(err, utils.CodeConflict) {
		t.Errorf("error = %v, want CONFLICT", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, nil)

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "alice@campus.edu", "supersecret"); err != nil {
		t.Errorf("Authenticate with correct password: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice@campus.edu", "wrong-password"); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Errorf("wrong password error = %v, want UNAUTHORIZED", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@campus.edu", "supersecret"); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Errorf("unknown email error = %v, want UNAUTHORIZED", err)
	}
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	deleted := newTestUser("ghost", nil, nil, models.AvailabilityActive, true)
	deleted.PasswordHash, _ = utils.HashPassword("supersecret")
	repo := &fakeUserRepo{users: []models.User{deleted}}
	svc := NewUserService(repo, nil)

	if _, err := svc.Authenticate(context.Background(), deleted.Email, "supersecret"); !utils.IsCode(err, utils.CodeUnauthorized) {
		t.Errorf("deleted user error = %v, want UNAUTHORIZED", err)
	}
}
