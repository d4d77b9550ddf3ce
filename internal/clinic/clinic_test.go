package clinic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medcore/front-desk-backend/internal/audit"
	"github.com/medcore/front-desk-backend/internal/kv"
	"github.com/medcore/front-desk-backend/internal/store"
)

// newTestService builds a fully seeded service over the memory backend with
// the simulated latency zeroed out.
func newTestService(t *testing.T) (*Service, *store.DB) {
	t.Helper()

	db := store.New(kv.NewMemoryStore())
	require.NoError(t, Initialize(context.Background(), db))

	svc := NewService(db, audit.NewLogger(db), NewTokenIssuer("test-secret"), Latency{})
	return svc, db
}

func auditEntries(t *testing.T, db *store.DB) []audit.Entry {
	t.Helper()

	entries, err := store.Load[audit.Entry](context.Background(), db, store.AuditLogs)
	require.NoError(t, err)
	return entries
}
