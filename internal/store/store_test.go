package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcore/front-desk-backend/internal/kv"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadSave_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := New(kv.NewMemoryStore())

	records := []record{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}}
	require.NoError(t, Save(ctx, db, Appointments, records))

	got, err := Load[record](ctx, db, Appointments)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestLoad_AbsentCollectionIsEmpty(t *testing.T) {
	ctx := context.Background()
	db := New(kv.NewMemoryStore())

	got, err := Load[record](ctx, db, Users)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestLoad_CorruptDataDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	db := New(mem)

	require.NoError(t, mem.Set(ctx, "medcore:v3:users", []byte("{not json")))

	got, err := Load[record](ctx, db, Users)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_NilSavesEmptyArray(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	db := New(mem)

	require.NoError(t, Save[record](ctx, db, AuditLogs, nil))

	raw, err := mem.Get(ctx, "medcore:v3:audit_logs")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestHas(t *testing.T) {
	ctx := context.Background()
	db := New(kv.NewMemoryStore())

	ok, err := db.Has(ctx, Doctors)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Save(ctx, db, Doctors, []record{}))

	ok, err = db.Has(ctx, Doctors)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	db := New(kv.NewMemoryStore())

	for _, c := range All {
		require.NoError(t, Save(ctx, db, c, []record{{ID: "x"}}))
	}
	require.NoError(t, db.Reset(ctx))

	for _, c := range All {
		ok, err := db.Has(ctx, c)
		require.NoError(t, err)
		assert.False(t, ok, "collection %s should be gone", c)
	}
}
