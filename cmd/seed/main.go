package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medcore/front-desk-backend/internal/clinic"
	"github.com/medcore/front-desk-backend/internal/config"
	"github.com/medcore/front-desk-backend/internal/kv"
	"github.com/medcore/front-desk-backend/internal/store"
)

const (
	extraDoctors      = 10
	extraPatients     = 25
	extraAppointments = 40
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if cfg.StorageBackend == config.BackendMemory {
		log.Fatal("seeding the memory backend is pointless, set STORAGE_BACKEND=redis or postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("storage backend error: %v", err)
	}
	defer backend.Close()

	db := store.New(backend)

	if err := db.Reset(ctx); err != nil {
		log.Fatalf("reset store: %v", err)
	}
	if err := clinic.Initialize(ctx, db); err != nil {
		log.Fatalf("initialize store: %v", err)
	}
	log.Println("fixed defaults loaded")

	gofakeit.Seed(time.Now().UnixNano())

	doctors, err := seedDoctors(ctx, db, extraDoctors)
	if err != nil {
		log.Fatalf("seed doctors: %v", err)
	}
	if err := seedPatients(ctx, db, extraPatients); err != nil {
		log.Fatalf("seed patients: %v", err)
	}
	if err := seedAppointments(ctx, db, doctors, extraAppointments); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	log.Println("seed complete")
}

func openBackend(ctx context.Context, cfg config.Config) (kv.Store, error) {
	if cfg.StorageBackend == config.BackendPostgres {
		return kv.NewPostgresStore(ctx, cfg.PostgresDSN)
	}
	return kv.NewRedisStore(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
}

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var departments = []string{
	"Emergency",
	"Cardiovascular Services",
	"Neuroscience Center",
	"Pediatrics",
	"Radiology",
	"Outpatient Clinic",
}

var slots = []string{"09:00", "09:30", "10:00", "10:30", "11:00", "13:00", "14:00", "15:00", "16:00"}

func seedDoctors(ctx context.Context, db *store.DB, count int) ([]clinic.Doctor, error) {
	log.Printf("seeding %d extra doctors", count)

	hash, err := bcrypt.GenerateFromPassword([]byte(clinic.DefaultSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	doctors, err := store.Load[clinic.Doctor](ctx, db, store.Doctors)
	if err != nil {
		return nil, err
	}
	users, err := store.Load[clinic.User](ctx, db, store.Users)
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		name := "Dr. " + gofakeit.Name()
		d := clinic.Doctor{
			User: clinic.User{
				ID:           uuid.NewString(),
				Name:         name,
				Role:         clinic.RoleDoctor,
				Email:        gofakeit.Email(),
				PasswordHash: string(hash),
				CreatedAt:    time.Now().UTC(),
			},
			Specialization:    specialties[gofakeit.Number(0, len(specialties)-1)],
			WorkloadScore:     gofakeit.Number(0, 100),
			Department:        departments[gofakeit.Number(0, len(departments)-1)],
			AvailabilitySlots: pickSlots(),
		}
		doctors = append(doctors, d)
		users = append(users, d.User)
	}

	if err := store.Save(ctx, db, store.Doctors, sanitizeDoctors(doctors)); err != nil {
		return nil, err
	}
	if err := store.Save(ctx, db, store.Users, users); err != nil {
		return nil, err
	}

	log.Println("doctors seeded")
	return doctors, nil
}

func seedPatients(ctx context.Context, db *store.DB, count int) error {
	log.Printf("seeding %d patients", count)

	hash, err := bcrypt.GenerateFromPassword([]byte(clinic.DefaultSecret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users, err := store.Load[clinic.User](ctx, db, store.Users)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		users = append(users, clinic.User{
			ID:           uuid.NewString(),
			Name:         gofakeit.Name(),
			Role:         clinic.RolePatient,
			Email:        gofakeit.Email(),
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		})
	}

	if err := store.Save(ctx, db, store.Users, users); err != nil {
		return err
	}

	log.Println("patients seeded")
	return nil
}

func seedAppointments(ctx context.Context, db *store.DB, doctors []clinic.Doctor, count int) error {
	log.Printf("seeding %d appointments", count)

	appts, err := store.Load[clinic.Appointment](ctx, db, store.Appointments)
	if err != nil {
		return err
	}

	statuses := []clinic.AppointmentStatus{
		clinic.StatusScheduled,
		clinic.StatusInProgress,
		clinic.StatusCompleted,
		clinic.StatusCancelled,
		clinic.StatusNoShow,
	}
	priorities := []clinic.Priority{
		clinic.PriorityEmergency,
		clinic.PriorityUrgent,
		clinic.PriorityRoutine,
		clinic.PriorityFollowUp,
	}

	for i := 0; i < count; i++ {
		doctor := doctors[gofakeit.Number(0, len(doctors)-1)]
		appts = append(appts, clinic.Appointment{
			ID:          uuid.NewString(),
			PatientName: gofakeit.Name(),
			PatientID:   fmt.Sprintf("p%03d", gofakeit.Number(100, 999)),
			DoctorName:  doctor.Name,
			DoctorID:    doctor.ID,
			Time:        slots[gofakeit.Number(0, len(slots)-1)],
			Status:      statuses[gofakeit.Number(0, len(statuses)-1)],
			Priority:    priorities[gofakeit.Number(0, len(priorities)-1)],
			RiskScore:   gofakeit.Number(0, 100),
		})
	}

	if err := store.Save(ctx, db, store.Appointments, appts); err != nil {
		return err
	}

	log.Println("appointments seeded")
	return nil
}

func pickSlots() []string {
	n := gofakeit.Number(3, 5)
	picked := make([]string, 0, n)
	start := gofakeit.Number(0, len(slots)-n)
	for i := start; i < start+n; i++ {
		picked = append(picked, slots[i])
	}
	return picked
}

// The doctors collection is directory data; credentials live only in users.
func sanitizeDoctors(doctors []clinic.Doctor) []clinic.Doctor {
	out := make([]clinic.Doctor, len(doctors))
	for i, d := range doctors {
		d.User = d.User.WithoutSecret()
		out[i] = d
	}
	return out
}
