package clinic

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// NewAppointment carries the caller-supplied fields of a booking. The service
// assigns the identifier and defaults.
type NewAppointment struct {
	PatientName string
	PatientID   string
	DoctorName  string
	DoctorID    string
	Time        string
	Priority    Priority
	Notes       string
}

// ListAppointments returns the full collection, newest booking first.
// Role-based filtering is the presentation layer's concern.
func (s *Service) ListAppointments(ctx context.Context) ([]Appointment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return loadAppointments(ctx, s.db)
}

// CreateAppointment books a new appointment at the head of the collection.
// It always starts out SCHEDULED with a zero risk score; the risk advisor,
// when present, fills the score in later.
func (s *Service) CreateAppointment(ctx context.Context, input NewAppointment, actor string) (Appointment, error) {
	if err := s.wait(ctx); err != nil {
		return Appointment{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = PriorityRoutine
	}

	appt := Appointment{
		ID:          uuid.NewString(),
		PatientName: input.PatientName,
		PatientID:   input.PatientID,
		DoctorName:  input.DoctorName,
		DoctorID:    input.DoctorID,
		Time:        input.Time,
		Status:      StatusScheduled,
		Priority:    priority,
		RiskScore:   0,
		Notes:       input.Notes,
	}

	all, err := loadAppointments(ctx, s.db)
	if err != nil {
		return Appointment{}, err
	}

	all = append([]Appointment{appt}, all...)
	if err := saveAppointments(ctx, s.db, all); err != nil {
		return Appointment{}, err
	}

	details := fmt.Sprintf("Booked for %s", appt.PatientName)
	if err := s.audit.Append(ctx, actor, ActionAppointmentCreate, details); err != nil {
		return Appointment{}, err
	}

	return appt, nil
}

// CancelAppointment removes the appointment with the given id. Cancelling an
// unknown id is an error and leaves the audit trail untouched.
func (s *Service) CancelAppointment(ctx context.Context, id, actor string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	all, err := loadAppointments(ctx, s.db)
	if err != nil {
		return err
	}

	kept := all[:0:0]
	removed := false
	for _, appt := range all {
		if appt.ID == id {
			removed = true
			continue
		}
		kept = append(kept, appt)
	}
	if !removed {
		return ErrAppointmentNotFound
	}

	if err := saveAppointments(ctx, s.db, kept); err != nil {
		return err
	}

	details := fmt.Sprintf("Appointment %s removed", id)
	return s.audit.Append(ctx, actor, ActionAppointmentCancel, details)
}
