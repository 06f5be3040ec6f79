package service

import (
	"errors"
	"testing"

	"github.com/newsdesk/internal/config"
	"github.com/newsdesk/internal/models"
	"github.com/newsdesk/internal/repository"
)

func setupAuthService(t *testing.T) (*AuthService, *AccountService) {
	t.Helper()
	db := setupServiceTestDB(t)
	userRepo := repository.NewUserRepository(db)
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-0123456789abcdef"
	cfg.JWT.ExpireHours = 1
	accountSvc := NewAccountService(userRepo, config.PasswordPolicyConfig{MinLength: 8})
	return NewAuthService(cfg, userRepo), accountSvc
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	authSvc, accountSvc := setupAuthService(t)

	registered, err := accountSvc.Register(RegisterInput{Email: "editor@example.com", Password: "sufficiently-long"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, _, err := authSvc.Login("editor@example.com", "sufficiently-long")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned the wrong user")
	}
	if token == "" {
		t.Fatalf("token must be issued")
	}

	claims, err := authSvc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != registered.ID || claims.Email != registered.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestLoginWrongPasswordReturnsInvalidCredentials(t *testing.T) {
	authSvc, accountSvc := setupAuthService(t)

	if _, err := accountSvc.Register(RegisterInput{Email: "editor@example.com", Password: "sufficiently-long"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := authSvc.Login("editor@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
}

func TestLoginUnknownEmailReturnsInvalidCredentials(t *testing.T) {
	authSvc, _ := setupAuthService(t)

	if _, _, _, err := authSvc.Login("nobody@example.com", "whatever-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
}

func TestLoginDisabledAccountReturnsUserDisabled(t *testing.T) {
	authSvc, accountSvc := setupAuthService(t)

	user, err := accountSvc.Register(RegisterInput{Email: "off@example.com", Password: "sufficiently-long"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user.IsActive = false
	if err := authSvc.userRepo.Update(user); err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	if _, _, _, err := authSvc.Login("off@example.com", "sufficiently-long"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("want ErrUserDisabled got %v", err)
	}
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	authSvc, accountSvc := setupAuthService(t)

	user, err := accountSvc.Register(RegisterInput{Email: "editor@example.com", Password: "sufficiently-long"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := authSvc.GenerateJWT(&models.User{ID: user.ID, Email: user.Email})
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if _, err := authSvc.ParseJWT(token + "x"); err == nil {
		t.Fatalf("tampered token must be rejected")
	}
}
