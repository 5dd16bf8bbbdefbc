package models

import (
	"time"

	"gorm.io/gorm"

	"clinicdesk/utils"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

// Valid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

type Appointment struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	Date      string            `json:"date" gorm:"index"` // 2006-01-02
	Time      string            `json:"time"`              // 15:04
	Status    AppointmentStatus `json:"status"`
	Type      string            `json:"type"`
	DoctorID  string            `json:"doctor_id" gorm:"index"`
	PatientID string            `json:"patient_id" gorm:"index"`
	CreatedAt time.Time         `json:"created_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// StartsAt combines the date and time fields into a single local timestamp.
func (a *Appointment) StartsAt() (time.Time, error) {
	return utils.ParseSchedule(a.Date, a.Time)
}
