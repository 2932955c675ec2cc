package appointment

import (
	"time"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// EffectiveDuration aplica a duração padrão quando a informada não é positiva.
func EffectiveDuration(minutes int, def time.Duration) int {
	if minutes > 0 {
		return minutes
	}
	return int(def / time.Minute)
}

// EndFor é a única derivação de fim a partir de início e duração.
func EndFor(start time.Time, minutes int) time.Time {
	return start.Add(time.Duration(minutes) * time.Minute)
}

// Reschedule grava início e duração e recalcula o fim.
func Reschedule(ap *models.Appointment, start time.Time, minutes int) {
	ap.StartTime = start
	ap.DurationMinutes = minutes
	ap.EndTime = EndFor(start, minutes)
}

// ChangeStatus aplica a transição e sempre carimba UpdatedAt.
// Horários e duração nunca são alterados aqui.
func ChangeStatus(ap *models.Appointment, next Status, now time.Time) error {
	current := Status(ap.Status)
	if err := CanTransition(current, next); err != nil {
		return err
	}

	if current != next {
		switch next {
		case StatusCancelled:
			ap.CancelledAt = &now
		case StatusCompleted:
			ap.CompletedAt = &now
		}
	}

	ap.Status = string(next)
	ap.UpdatedAt = now
	return nil
}
