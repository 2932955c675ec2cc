package dto

import (
	"time"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type AppointmentDTO struct {
	ID uint `json:"id"`

	PatientID   uint   `json:"patient_id"`
	PatientName string `json:"patient_name,omitempty"`
	DentistID   uint   `json:"dentist_id"`
	DentistName string `json:"dentist_name,omitempty"`

	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`

	Procedure string `json:"procedure,omitempty"`
	Notes     string `json:"notes,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FromAppointment converte os horários para o fuso da clínica.
func FromAppointment(ap *models.Appointment, loc *time.Location) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		PatientID:       ap.PatientID,
		PatientName:     ap.Patient.Name,
		DentistID:       ap.DentistID,
		DentistName:     ap.Dentist.Name,
		StartTime:       ap.StartTime.In(loc),
		EndTime:         ap.EndTime.In(loc),
		DurationMinutes: ap.DurationMinutes,
		Status:          ap.Status,
		Procedure:       ap.Procedure,
		Notes:           ap.Notes,
		CancelledAt:     ap.CancelledAt,
		CompletedAt:     ap.CompletedAt,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}

func FromAppointments(aps []models.Appointment, loc *time.Location) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i], loc))
	}
	return out
}

// SlotDTO é um horário livre no formato HH:mm do dia consultado.
type SlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
