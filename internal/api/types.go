package api

import "github.com/medcore/front-desk-backend/internal/clinic"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	User  clinic.User `json:"user"`
	Token string      `json:"token"`
}

type CreateAppointmentRequest struct {
	PatientName string `json:"patientName"`
	PatientID   string `json:"patientId"`
	DoctorName  string `json:"doctorName"`
	DoctorID    string `json:"doctorId"`
	Time        string `json:"time"`
	Priority    string `json:"priority,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
