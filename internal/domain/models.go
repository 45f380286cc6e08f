package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role of a user in the system
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Default blood pressure targets for a new patient
const (
	DefaultTargetSys = 120
	DefaultTargetDia = 80
)

// Reading is a parsed blood pressure and pulse triple
type Reading struct {
	Sys   int
	Dia   int
	Pulse int
}

// PatientSummary is the latest state of a patient as shown to a doctor
type PatientSummary struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	TelegramID int64     `json:"telegram_id"`
	TargetSys  int       `json:"target_sys"`
	TargetDia  int       `json:"target_dia"`
	LastSys    *int      `json:"last_sys"`
	LastDia    *int      `json:"last_dia"`
	IsCritical bool      `json:"is_critical"`
}

// MeasurementEntry is one reading in a patient's history
type MeasurementEntry struct {
	ID         uuid.UUID `json:"id"`
	Sys        int       `json:"sys"`
	Dia        int       `json:"dia"`
	Pulse      int       `json:"pulse"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	IsCritical bool      `json:"is_critical"`
}

// PatientStats is a patient's identity with recent history, newest first
type PatientStats struct {
	ID           uuid.UUID          `json:"id"`
	FullName     string             `json:"full_name"`
	TelegramID   int64              `json:"telegram_id"`
	TargetSys    int                `json:"target_sys"`
	TargetDia    int                `json:"target_dia"`
	Measurements []MeasurementEntry `json:"measurements"`
}
