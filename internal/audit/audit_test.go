package audit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcore/front-desk-backend/internal/kv"
	"github.com/medcore/front-desk-backend/internal/store"
)

func newTestLogger() *Logger {
	return NewLogger(store.New(kv.NewMemoryStore()))
}

func TestAppend_NewestFirst(t *testing.T) {
	ctx := context.Background()
	l := newTestLogger()

	require.NoError(t, l.Append(ctx, "Admin Root", "AUTH_LOGIN", "first"))
	require.NoError(t, l.Append(ctx, "Dr. Sarah Mitchell", "APPOINTMENT_CREATE", "second"))

	entries, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "APPOINTMENT_CREATE", entries[0].Action)
	assert.Equal(t, "Dr. Sarah Mitchell", entries[0].Actor)
	assert.Equal(t, "AUTH_LOGIN", entries[1].Action)

	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestAppend_CapsAtMaxEntries(t *testing.T) {
	ctx := context.Background()
	l := newTestLogger()

	total := MaxEntries + 15
	for i := 0; i < total; i++ {
		require.NoError(t, l.Append(ctx, "actor", "ACTION", fmt.Sprintf("entry %d", i)))
	}

	entries, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)

	// Newest first: the last append is at the head, the oldest surviving
	// entry closes the window.
	assert.Equal(t, fmt.Sprintf("entry %d", total-1), entries[0].Details)
	assert.Equal(t, fmt.Sprintf("entry %d", total-MaxEntries), entries[MaxEntries-1].Details)
}

func TestList_EmptyTrail(t *testing.T) {
	ctx := context.Background()
	l := newTestLogger()

	entries, err := l.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
