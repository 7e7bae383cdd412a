package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
	"github.com/vani-campus/vani/internal/pkg/auth"
)

// AuthService handles login and token issuance
type AuthService struct {
	users      repositories.UserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
	}
}

// Login verifies credentials and returns the user with a signed token.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, int, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", 0, err
	}

	return user, token, expiresIn, nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
