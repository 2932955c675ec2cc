package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

func TestEffectiveDuration(t *testing.T) {
	assert.Equal(t, 45, EffectiveDuration(45, 30*time.Minute))
	assert.Equal(t, 30, EffectiveDuration(0, 30*time.Minute))
	assert.Equal(t, 30, EffectiveDuration(-10, 30*time.Minute))
}

func TestReschedule_DerivesEnd(t *testing.T) {
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{EndTime: start.Add(5 * time.Hour)}

	Reschedule(ap, start, 45)

	assert.Equal(t, start, ap.StartTime)
	assert.Equal(t, 45, ap.DurationMinutes)
	assert.Equal(t, start.Add(45*time.Minute), ap.EndTime)
}

func TestChangeStatus(t *testing.T) {
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	Reschedule(ap, start, 30)

	require.NoError(t, ChangeStatus(ap, StatusCancelled, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
	assert.Equal(t, now, ap.UpdatedAt)

	later := now.Add(time.Hour)
	require.NoError(t, ChangeStatus(ap, StatusCancelled, later))
	assert.Equal(t, now, *ap.CancelledAt, "repeating the status keeps the original stamp")
	assert.Equal(t, later, ap.UpdatedAt)

	assert.ErrorIs(t, ChangeStatus(ap, StatusConfirmed, later), ErrInvalidState)

	assert.Equal(t, start, ap.StartTime)
	assert.Equal(t, start.Add(30*time.Minute), ap.EndTime)
}
