package clinic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_SeededAdmin(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	result, err := svc.Login(ctx, "admin@medcore.com", DefaultSecret)
	require.NoError(t, err)

	assert.Equal(t, "Admin Root", result.User.Name)
	assert.Equal(t, RoleAdmin, result.User.Role)
	assert.Empty(t, result.User.PasswordHash, "secret must never leave the service")
	assert.NotEmpty(t, result.Token)

	entries := auditEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, ActionLogin, entries[0].Action)
	assert.Equal(t, "Admin Root", entries[0].Actor)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		email  string
		secret string
	}{
		{name: "unknown email", email: "nobody@medcore.com", secret: DefaultSecret},
		{name: "wrong secret", email: "admin@medcore.com", secret: "nope"},
		{name: "case sensitive email", email: "ADMIN@medcore.com", secret: DefaultSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := newTestService(t)

			_, err := svc.Login(ctx, tt.email, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			assert.Empty(t, auditEntries(t, db), "failed login must not write an audit entry")
		})
	}
}

func TestSignup_CreatesUser(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	result, err := svc.Signup(ctx, "Pat Smith", "pat@x.com", "s3cret", RolePatient)
	require.NoError(t, err)

	assert.NotEmpty(t, result.User.ID)
	assert.Equal(t, RolePatient, result.User.Role)
	assert.Empty(t, result.User.PasswordHash)
	assert.NotEmpty(t, result.Token)
	assert.False(t, result.User.CreatedAt.IsZero())

	users, err := loadUsers(ctx, db)
	require.NoError(t, err)
	require.Len(t, users, 4)
	stored := users[3]
	assert.Equal(t, "pat@x.com", stored.Email)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)

	entries := auditEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, ActionSignup, entries[0].Action)
	assert.Equal(t, "Pat Smith", entries[0].Actor)
	assert.Contains(t, entries[0].Details, "PATIENT")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	usersBefore, err := loadUsers(ctx, db)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Imposter", "admin@medcore.com", "pw", RolePatient)
	assert.ErrorIs(t, err, ErrEmailTaken)

	usersAfter, err := loadUsers(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, usersBefore, usersAfter, "failed signup must leave users unchanged")
	assert.Empty(t, auditEntries(t, db))
}

func TestSignupThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	_, err := svc.Signup(ctx, "Dr. Jane Doe", "jane@x.com", "pw1", RoleDoctor)
	require.NoError(t, err)

	result, err := svc.Login(ctx, "jane@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Doe", result.User.Name)
	assert.Equal(t, RoleDoctor, result.User.Role)

	entries := auditEntries(t, db)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionLogin, entries[0].Action)
	assert.Equal(t, ActionSignup, entries[1].Action)
}

func TestLogin_EachAuditWriteIsExactlyOne(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	for i := 1; i <= 3; i++ {
		_, err := svc.Login(ctx, "admin@medcore.com", DefaultSecret)
		require.NoError(t, err)
		assert.Len(t, auditEntries(t, db), i)
	}
}
