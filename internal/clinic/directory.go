package clinic

import (
	"context"

	"github.com/medcore/front-desk-backend/internal/audit"
	"github.com/medcore/front-desk-backend/internal/store"
)

// ListDoctors returns the full staff directory.
func (s *Service) ListDoctors(ctx context.Context) ([]Doctor, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return store.Load[Doctor](ctx, s.db, store.Doctors)
}

// ListAuditLogs returns the capped audit trail, newest first.
func (s *Service) ListAuditLogs(ctx context.Context) ([]audit.Entry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.audit.List(ctx)
}
