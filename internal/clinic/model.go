package clinic

import "time"

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleDoctor       Role = "DOCTOR"
	RoleReceptionist Role = "RECEPTIONIST"
	RolePatient      Role = "PATIENT"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist, RolePatient:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "SCHEDULED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusCancelled  AppointmentStatus = "CANCELLED"
	StatusNoShow     AppointmentStatus = "NO_SHOW"
)

type Priority string

const (
	PriorityEmergency Priority = "EMERGENCY"
	PriorityUrgent    Priority = "URGENT"
	PriorityRoutine   Priority = "ROUTINE"
	PriorityFollowUp  Priority = "FOLLOW_UP"
)

// User is an account of any role. PasswordHash is persisted with the record
// but stripped from everything the service returns.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WithoutSecret returns a copy safe to hand past the service boundary.
func (u User) WithoutSecret() User {
	u.PasswordHash = ""
	return u
}

// Doctor is a user with role DOCTOR plus directory metadata.
type Doctor struct {
	User
	Specialization    string   `json:"specialization"`
	WorkloadScore     int      `json:"workloadScore"`
	AvailabilitySlots []string `json:"availabilitySlots"`
	Department        string   `json:"department"`
}

type Appointment struct {
	ID          string            `json:"id"`
	PatientName string            `json:"patientName"`
	PatientID   string            `json:"patientId"`
	DoctorName  string            `json:"doctorName"`
	DoctorID    string            `json:"doctorId"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Priority    Priority          `json:"priority"`
	RiskScore   int               `json:"riskScore,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}

// AuthResult is what login and signup hand back: the sanitized user plus an
// opaque session token.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
