package models

import "time"

// WorkingHours é o expediente de um dentista em um dia da semana.
// Horários vazios significam turno ausente.
type WorkingHours struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	DentistID uint `gorm:"not null;uniqueIndex:idx_working_hours_dentist_weekday,priority:1" json:"dentist_id"`

	Weekday int `gorm:"not null;uniqueIndex:idx_working_hours_dentist_weekday,priority:2" json:"weekday"`

	MorningStart   string `gorm:"size:5" json:"morning_start"`
	MorningEnd     string `gorm:"size:5" json:"morning_end"`
	AfternoonStart string `gorm:"size:5" json:"afternoon_start"`
	AfternoonEnd   string `gorm:"size:5" json:"afternoon_end"`
	Active         bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
