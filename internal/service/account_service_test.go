package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/newsdesk/internal/config"
	"github.com/newsdesk/internal/repository"
)

func setupAccountService(t *testing.T) *AccountService {
	t.Helper()
	db := setupServiceTestDB(t)
	return NewAccountService(repository.NewUserRepository(db), config.PasswordPolicyConfig{MinLength: 8})
}

func TestRegisterSetsUsernameToEmailAndHashesPassword(t *testing.T) {
	svc := setupAccountService(t)

	user, err := svc.Register(RegisterInput{
		Email:     "Reader@Example.com",
		Password:  "sufficiently-long",
		FirstName: "Pat",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "reader@example.com" {
		t.Fatalf("email must be lowercased, got %q", user.Email)
	}
	if user.Username != user.Email {
		t.Fatalf("username must mirror email, got %q", user.Username)
	}
	if user.PasswordHash == "sufficiently-long" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sufficiently-long")); err != nil {
		t.Fatalf("stored hash must verify: %v", err)
	}
	if !user.IsActive {
		t.Fatalf("new accounts must be active")
	}
	if user.IsStaff {
		t.Fatalf("self-registered accounts must not be staff")
	}
}

func TestRegisterDuplicateEmailReturnsFieldError(t *testing.T) {
	svc := setupAccountService(t)

	if _, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "sufficiently-long"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := svc.Register(RegisterInput{Email: "dup@example.com", Password: "another-long-one"})
	assertFieldError(t, err, "email")
}

func TestRegisterShortPasswordReturnsFieldError(t *testing.T) {
	svc := setupAccountService(t)

	_, err := svc.Register(RegisterInput{Email: "short@example.com", Password: "tiny"})
	assertFieldError(t, err, "password")
}

func TestRegisterInvalidEmailReturnsFieldError(t *testing.T) {
	svc := setupAccountService(t)

	_, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "sufficiently-long"})
	assertFieldError(t, err, "email")
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	svc := setupAccountService(t)

	user, err := svc.Register(RegisterInput{Email: "edit@example.com", Password: "original-pass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	oldHash := user.PasswordHash

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdateInput{
		FirstName: strPtr("Alex"),
		Password:  strPtr("replacement-pass"),
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.FirstName != "Alex" {
		t.Fatalf("first name want Alex got %q", updated.FirstName)
	}
	if updated.PasswordHash == oldHash {
		t.Fatalf("password change must rehash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("replacement-pass")); err != nil {
		t.Fatalf("new hash must verify: %v", err)
	}
}

func TestUpdateProfileWithoutPasswordKeepsHash(t *testing.T) {
	svc := setupAccountService(t)

	user, err := svc.Register(RegisterInput{Email: "keep@example.com", Password: "original-pass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdateInput{LastName: strPtr("Doe")})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.PasswordHash != user.PasswordHash {
		t.Fatalf("hash must be untouched when password not provided")
	}
}
