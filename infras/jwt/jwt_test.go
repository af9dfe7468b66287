package jwt_test

import (
	"errors"
	"testing"

	"clinicbook/config"
	"clinicbook/infras/jwt"
)

func testService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "clinicbook-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin", "admin@clinic.test", "admin")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID != "admin" || claims.Email != "admin@clinic.test" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateWrongType(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin", "admin@clinic.test", "admin")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	// An access token presented as a refresh token fails signature validation
	// (different secret), never claim validation.
	if _, err := svc.ValidateToken(pair.AccessToken, jwt.RefreshToken); err == nil {
		t.Error("expected error validating access token as refresh token")
	}
}

func TestRefreshTokens(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair("admin", "admin@clinic.test", "admin")
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	fresh, err := svc.RefreshTokens(pair.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshTokens failed: %v", err)
	}

	claims, err := svc.ValidateToken(fresh.AccessToken, jwt.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken on refreshed token failed: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role to survive refresh, got %q", claims.Role)
	}

	if _, err := svc.RefreshTokens(pair.AccessToken); err == nil {
		t.Error("expected error refreshing with an access token")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractTokenFromHeader failed: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("unexpected token %q", token)
	}

	for _, header := range []string{"", "abc", "Basic abc", "Bearer "} {
		if _, err := jwt.ExtractTokenFromHeader(header); !errors.Is(err, jwt.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for %q, got %v", header, err)
		}
	}
}
