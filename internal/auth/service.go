// Package auth implements the authentication flow: credential hashing
// and verification, JWT issuance and parsing, cookie delivery, and the
// middleware gating protected routes.
package auth

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"acquisitions/internal/user"
)

// ErrInvalidCredentials covers both unknown email and wrong password.
// Callers must not be able to tell the two apart; the distinction is
// only ever logged server-side.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service coordinates the user repository and the credential hasher.
// Dependencies are injected at startup so tests can substitute the
// store.
type Service struct {
	users *user.Repository
	log   *slog.Logger
}

func NewService(users *user.Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{users: users, log: log}
}

// Register hashes the password and inserts the user. A duplicate email
// surfaces as user.ErrEmailTaken; a hashing failure is unexpected and
// propagates as-is.
func (s *Service) Register(name, email, password string, role user.Role) (*user.User, error) {
	hash, err := user.HashPassword(password)
	if err != nil {
		s.log.Error("password hashing failed", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(name, email, hash, role)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			s.log.Warn("signup with existing email", "email", email)
		}
		return nil, err
	}

	s.log.Info("user registered", "email", u.Email, "id", u.ID)
	return u, nil
}

// Login authenticates by email and password. Unknown email and password
// mismatch both collapse to ErrInvalidCredentials; a bcrypt failure
// other than a mismatch is a primitive fault and propagates.
func (s *Service) Login(email, password string) (*user.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			s.log.Info("signin failed: unknown email", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := user.CheckPassword(u.PasswordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.Info("signin failed: wrong password", "email", email)
			return nil, ErrInvalidCredentials
		}
		s.log.Error("password comparison failed", "error", err)
		return nil, fmt.Errorf("compare password: %w", err)
	}

	s.log.Info("user logged in", "email", u.Email, "id", u.ID)
	return u, nil
}

// GetUser loads a user by id, for token-gated profile reads.
func (s *Service) GetUser(id uint) (*user.User, error) {
	return s.users.FindByID(id)
}
