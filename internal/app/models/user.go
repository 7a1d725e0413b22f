package models

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Age            int       `json:"age,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	TherapyPlan    string    `json:"therapyPlan,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Credential is the denormalized auth record kept alongside the profile,
// keyed by email.
type Credential struct {
	UserID       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
}

// PatientInfo and DoctorInfo are the minimal joined views attached to
// hydrated records, never persisted on their own.
type PatientInfo struct {
	Name        string `json:"name"`
	Age         int    `json:"age,omitempty"`
	Phone       string `json:"phone,omitempty"`
	TherapyPlan string `json:"therapyPlan,omitempty"`
}

type DoctorInfo struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Phone          string `json:"phone,omitempty"`
}
