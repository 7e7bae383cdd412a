package auth

import (
	"testing"
	"time"

	"github.com/vani-campus/vani/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "vani-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Name: "Alice Student", Role: models.RoleStudent}

	token, expiresIn, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Name != "Alice Student" {
		t.Errorf("Name = %q, want %q", claims.Name, "Alice Student")
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleStudent)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 1, Name: "Dr. Bob Professor", Role: models.RoleProfessor}

	token, _, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("ValidateToken error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(&models.User{ID: 1, Name: "x", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "another-secret", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected error validating token with wrong secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); err != ErrInvalidFormat {
		t.Errorf("empty header error = %v, want %v", err, ErrInvalidFormat)
	}

	got, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || got != "abc.def.ghi" {
		t.Errorf("ExtractBearerToken = (%q, %v), want (%q, nil)", got, err, "abc.def.ghi")
	}

	got, err = ExtractBearerToken("raw-token")
	if err != nil || got != "raw-token" {
		t.Errorf("ExtractBearerToken = (%q, %v), want (%q, nil)", got, err, "raw-token")
	}
}
