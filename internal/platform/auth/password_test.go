package auth

import (
	"errors"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("geheim123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "geheim123" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPassword(hash, "geheim123") {
		t.Error("expected password to match")
	}
	if CheckPassword(hash, "geheim124") {
		t.Error("expected wrong password to fail")
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("kurz")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "whatever") {
		t.Error("expected garbage hash to fail")
	}
}
