package password_test

import (
	"errors"
	"testing"

	"clinicbook/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-clinic")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if err := password.Verify("s3cret-clinic", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := password.Verify("wrong", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestHashEmpty(t *testing.T) {
	if _, err := password.Hash(""); err == nil {
		t.Error("expected error hashing empty password")
	}
}

func TestVerifyEmpty(t *testing.T) {
	if err := password.Verify("", "hash"); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty password, got %v", err)
	}

	if err := password.Verify("password", ""); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty hash, got %v", err)
	}
}
