package user

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashing(t *testing.T) {
	pw := "supersecret"
	hash, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == pw {
		t.Fatalf("hash must not equal plaintext")
	}
	if err := CheckPassword(hash, pw); err != nil {
		t.Errorf("check should succeed: %v", err)
	}
	if err := CheckPassword(hash, "wrongpw"); !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("expected mismatch error for wrong password, got %v", err)
	}
}

func TestPasswordHashing_Salted(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if h1 == h2 {
		t.Errorf("two hashes of the same password must differ (per-hash salt)")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "whatever")
	if err == nil {
		t.Fatalf("expected error for malformed hash")
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("malformed hash should not read as a plain mismatch")
	}
}

func TestPublicProjection(t *testing.T) {
	u := User{ID: 7, Name: "A", Email: "a@x.com", PasswordHash: "hash", Role: RoleUser}
	p := u.Public()
	if p.ID != 7 || p.Name != "A" || p.Email != "a@x.com" || p.Role != RoleUser {
		t.Errorf("unexpected projection: %+v", p)
	}
}
