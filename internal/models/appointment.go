package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `gorm:"not null;index" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"patient"`

	DentistID uint    `gorm:"not null;index:idx_appointments_dentist_start,priority:1" json:"dentist_id"`
	Dentist   Dentist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"dentist"`

	StartTime       time.Time `gorm:"not null;index:idx_appointments_dentist_start,priority:2" json:"start_time"`
	EndTime         time.Time `gorm:"not null" json:"end_time"`
	DurationMinutes int       `gorm:"not null;default:30" json:"duration_minutes"`

	Status string `gorm:"size:20;not null;default:'SCHEDULED';index" json:"status"`

	Procedure   string     `gorm:"size:255" json:"procedure"`
	Notes       string     `gorm:"type:text" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
