package auth

import (
	"log/slog"
	"testing"

	"acquisitions/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, dbConn.AutoMigrate(&user.User{}), "failed to migrate")
	// The shared in-memory database persists across tests; start empty.
	require.NoError(t, dbConn.Exec("DELETE FROM users").Error, "failed to reset users table")
	return NewService(user.NewRepository(dbConn), slog.Default())
}

func TestService_Register(t *testing.T) {
	svc := setupService(t)

	u, err := svc.Register("A", "a@x.com", "secret123", "")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, user.RoleUser, u.Role)
	assert.NotEqual(t, "secret123", u.PasswordHash, "plaintext must never be stored")
	assert.NoError(t, user.CheckPassword(u.PasswordHash, "secret123"))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Register("A", "dup@x.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Register("B", "dup@x.com", "other456", "")
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Register("A", "a@x.com", "secret123", "")
	require.NoError(t, err)

	u, err := svc.Login("a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestService_Login_UnifiedCredentialError(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Register("A", "a@x.com", "secret123", "")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.Login("nobody@x.com", "secret123")
	_, errWrongPw := svc.Login("a@x.com", "wrongpass")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestService_GetUser(t *testing.T) {
	svc := setupService(t)
	created, err := svc.Register("A", "a@x.com", "secret123", user.RoleAdmin)
	require.NoError(t, err)

	u, err := svc.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)

	_, err = svc.GetUser(created.ID + 1000)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
