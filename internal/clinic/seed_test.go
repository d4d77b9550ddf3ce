package clinic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcore/front-desk-backend/internal/kv"
	"github.com/medcore/front-desk-backend/internal/store"
)

func TestInitialize_SeedsFreshStore(t *testing.T) {
	ctx := context.Background()
	db := store.New(kv.NewMemoryStore())

	require.NoError(t, Initialize(ctx, db))

	users, err := loadUsers(ctx, db)
	require.NoError(t, err)
	require.Len(t, users, 3) // one admin plus the two seeded doctors

	assert.Equal(t, "Admin Root", users[0].Name)
	assert.Equal(t, RoleAdmin, users[0].Role)
	for _, u := range users {
		assert.NotEmpty(t, u.PasswordHash, "seeded user %s must be able to log in", u.Email)
		assert.False(t, u.CreatedAt.IsZero())
	}

	doctors, err := store.Load[Doctor](ctx, db, store.Doctors)
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "Cardiology", doctors[0].Specialization)

	appts, err := loadAppointments(ctx, db)
	require.NoError(t, err)
	assert.Len(t, appts, 3)

	entries := auditEntries(t, db)
	assert.Empty(t, entries)
}

func TestInitialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := store.New(kv.NewMemoryStore())

	require.NoError(t, Initialize(ctx, db))

	// A later startup must not touch existing data, including records added
	// since the first run.
	users, err := loadUsers(ctx, db)
	require.NoError(t, err)
	users = append(users, User{ID: "u-extra", Name: "Extra", Role: RolePatient, Email: "extra@x.com"})
	require.NoError(t, saveUsers(ctx, db, users))

	before, err := loadUsers(ctx, db)
	require.NoError(t, err)

	require.NoError(t, Initialize(ctx, db))

	after, err := loadUsers(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	appts, err := loadAppointments(ctx, db)
	require.NoError(t, err)
	assert.Len(t, appts, 3)
}
