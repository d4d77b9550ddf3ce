package clinic

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/medcore/front-desk-backend/internal/audit"
	"github.com/medcore/front-desk-backend/internal/store"
)

// DefaultSecret is the shared credential of every seeded demo account.
const DefaultSecret = "password123"

// SeedDoctors returns the fixed staff directory a fresh store starts with.
func SeedDoctors() []Doctor {
	return []Doctor{
		{
			User: User{
				ID:        "d1",
				Name:      "Dr. Sarah Mitchell",
				Role:      RoleDoctor,
				Email:     "sarah.m@medcore.com",
				CreatedAt: time.Date(2023, 10, 1, 8, 0, 0, 0, time.UTC),
			},
			Specialization:    "Cardiology",
			WorkloadScore:     78,
			Department:        "Cardiovascular Services",
			AvailabilitySlots: []string{"09:00", "10:00", "11:00", "14:00"},
		},
		{
			User: User{
				ID:        "d2",
				Name:      "Dr. James Chen",
				Role:      RoleDoctor,
				Email:     "james.c@medcore.com",
				CreatedAt: time.Date(2023, 10, 2, 9, 0, 0, 0, time.UTC),
			},
			Specialization:    "Neurology",
			WorkloadScore:     45,
			Department:        "Neuroscience Center",
			AvailabilitySlots: []string{"09:30", "11:30", "13:00", "15:00"},
		},
	}
}

// SeedAppointments returns the sample bookings a fresh store starts with.
func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID:          "a1",
			PatientName: "Robert Wilson",
			PatientID:   "p101",
			DoctorName:  "Dr. Sarah Mitchell",
			DoctorID:    "d1",
			Time:        "10:30 AM",
			Status:      StatusScheduled,
			Priority:    PriorityUrgent,
			RiskScore:   12,
		},
		{
			ID:          "a2",
			PatientName: "Emma Thompson",
			PatientID:   "p102",
			DoctorName:  "Dr. James Chen",
			DoctorID:    "d2",
			Time:        "11:15 AM",
			Status:      StatusInProgress,
			Priority:    PriorityRoutine,
			RiskScore:   5,
		},
		{
			ID:          "a3",
			PatientName: "Michael Brown",
			PatientID:   "p103",
			DoctorName:  "Dr. Sarah Mitchell",
			DoctorID:    "d1",
			Time:        "01:00 PM",
			Status:      StatusScheduled,
			Priority:    PriorityFollowUp,
			RiskScore:   85,
		},
	}
}

// Initialize seeds any collection that has never been written: the staff
// directory, its doctors as login-capable users plus one administrator, the
// sample bookings and an empty audit trail. Safe to call on every startup;
// existing data is never overwritten.
func Initialize(ctx context.Context, db *store.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultSecret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed secret: %w", err)
	}

	doctors := SeedDoctors()

	hasUsers, err := db.Has(ctx, store.Users)
	if err != nil {
		return err
	}
	if !hasUsers {
		users := []User{
			{
				ID:           "u1",
				Name:         "Admin Root",
				Role:         RoleAdmin,
				Email:        "admin@medcore.com",
				PasswordHash: string(hash),
				CreatedAt:    time.Now().UTC(),
			},
		}
		for _, d := range doctors {
			u := d.User
			u.PasswordHash = string(hash)
			users = append(users, u)
		}
		if err := saveUsers(ctx, db, users); err != nil {
			return err
		}
	}

	hasDoctors, err := db.Has(ctx, store.Doctors)
	if err != nil {
		return err
	}
	if !hasDoctors {
		if err := store.Save(ctx, db, store.Doctors, doctors); err != nil {
			return err
		}
	}

	hasAppointments, err := db.Has(ctx, store.Appointments)
	if err != nil {
		return err
	}
	if !hasAppointments {
		if err := saveAppointments(ctx, db, SeedAppointments()); err != nil {
			return err
		}
	}

	hasLogs, err := db.Has(ctx, store.AuditLogs)
	if err != nil {
		return err
	}
	if !hasLogs {
		if err := store.Save(ctx, db, store.AuditLogs, []audit.Entry{}); err != nil {
			return err
		}
	}

	return nil
}
