package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vladimiradmaev/bp-monitor/internal/domain"
)

// User is a patient or a doctor. Doctor, Measurements and Reminders only
// declare the foreign keys for migration; lookups go through the repositories.
type User struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time   `gorm:"not null"`
	TelegramID int64       `gorm:"uniqueIndex;not null"`
	FullName   string      `gorm:"size:255;not null"`
	Role       domain.Role `gorm:"type:varchar(16);not null;default:'patient';index"`
	DoctorID   *uuid.UUID  `gorm:"type:uuid;index"`
	TargetSys  int         `gorm:"not null;default:120"`
	TargetDia  int         `gorm:"not null;default:80"`

	Doctor       *User         `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL"`
	Measurements []Measurement `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reminders    []Reminder    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Role == "" {
		u.Role = domain.RolePatient
	}
	if u.TargetSys == 0 {
		u.TargetSys = domain.DefaultTargetSys
	}
	if u.TargetDia == 0 {
		u.TargetDia = domain.DefaultTargetDia
	}
	return nil
}

// Measurement is one blood pressure reading. Rows are never updated.
type Measurement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Sys       int       `gorm:"not null"`
	Dia       int       `gorm:"not null"`
	Pulse     int       `gorm:"not null"`
	Comment   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (m *Measurement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	} else {
		m.CreatedAt = m.CreatedAt.UTC()
	}
	return nil
}

// Reminder is a per-user reminder slot. The daily sweep does not read it yet.
type Reminder struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Time     string    `gorm:"type:time;not null"` // "HH:MM:SS"
	IsActive bool      `gorm:"not null;default:true"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
