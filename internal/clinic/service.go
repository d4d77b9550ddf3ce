// Package clinic implements the front-desk operation surface: authentication,
// appointment booking, the staff directory and the audit trail, all on top of
// the collection store.
package clinic

import (
	"context"

	"github.com/medcore/front-desk-backend/internal/audit"
	"github.com/medcore/front-desk-backend/internal/store"
)

// Audit action tags.
const (
	ActionLogin             = "AUTH_LOGIN"
	ActionSignup            = "AUTH_SIGNUP"
	ActionAppointmentCreate = "APPOINTMENT_CREATE"
	ActionAppointmentCancel = "APPOINTMENT_CANCEL"
)

type Service struct {
	db      *store.DB
	audit   *audit.Logger
	tokens  *TokenIssuer
	latency Latency
}

func NewService(db *store.DB, auditLog *audit.Logger, tokens *TokenIssuer, latency Latency) *Service {
	return &Service{
		db:      db,
		audit:   auditLog,
		tokens:  tokens,
		latency: latency,
	}
}

// wait applies the simulated round-trip. Called first by every operation so
// that failing calls pay the same delay as successful ones.
func (s *Service) wait(ctx context.Context) error {
	return s.latency.Wait(ctx)
}

func loadUsers(ctx context.Context, db *store.DB) ([]User, error) {
	return store.Load[User](ctx, db, store.Users)
}

func saveUsers(ctx context.Context, db *store.DB, users []User) error {
	return store.Save(ctx, db, store.Users, users)
}

func loadAppointments(ctx context.Context, db *store.DB) ([]Appointment, error) {
	return store.Load[Appointment](ctx, db, store.Appointments)
}

func saveAppointments(ctx context.Context, db *store.DB, appts []Appointment) error {
	return store.Save(ctx, db, store.Appointments, appts)
}
