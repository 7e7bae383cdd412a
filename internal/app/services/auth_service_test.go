package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories/memory"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
	"github.com/vani-campus/vani/internal/pkg/auth"
)

func TestLogin(t *testing.T) {
	repos := memory.NewRepositories(memory.NewStore())
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "vani-test",
	})
	svcs := NewServices(repos, jwtService, 2, time.Millisecond)
	ctx := context.Background()

	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if _, err := repos.Users.Create(ctx, &models.User{
		Name:     "Alice Student",
		Email:    "alice@example.com",
		Password: hash,
		Role:     models.RoleStudent,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	user, token, expiresIn, err := svcs.Auth.Login(ctx, "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Alice Student" || token == "" || expiresIn != 3600 {
		t.Errorf("Login = (%q, token %d chars, %d)", user.Name, len(token), expiresIn)
	}

	claims, err := jwtService.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != string(models.RoleStudent) {
		t.Errorf("claims = %+v", claims)
	}

	// Wrong password and unknown email produce the same error
	if _, _, _, err := svcs.Auth.Login(ctx, "alice@example.com", "nope"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want %v", err, apperrors.ErrInvalidCredentials)
	}
	if _, _, _, err := svcs.Auth.Login(ctx, "ghost@example.com", "password123"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want %v", err, apperrors.ErrInvalidCredentials)
	}
}
