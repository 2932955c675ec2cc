package appointment

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type UpdateAppointmentInput struct {
	ID uint

	PatientID uint
	DentistID uint

	StartTime time.Time
	// DurationMinutes não positivo mantém a duração atual.
	DurationMinutes int

	Procedure string
	Notes     string
}

type UpdateAppointment struct {
	repo  domain.Repository
	rules Rules
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	rules Rules,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		rules: rules,
		audit: audit,
		log:   log,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	start := in.StartTime.In(uc.rules.location())

	var ap *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.GetAppointment(ctx, in.ID)
		if err != nil {
			return err
		}

		minutes := current.DurationMinutes
		if in.DurationMinutes > 0 {
			minutes = in.DurationMinutes
		}
		minutes = domain.EffectiveDuration(minutes, uc.rules.DefaultDuration)

		// o próprio agendamento não conta como conflito
		patient, dentist, err := uc.rules.checkProposal(ctx, tx, proposal{
			PatientID: in.PatientID,
			DentistID: in.DentistID,
			Start:     start,
			Minutes:   minutes,
		}, &current.ID)
		if err != nil {
			return err
		}

		current.PatientID = patient.ID
		current.Patient = *patient
		current.DentistID = dentist.ID
		current.Dentist = *dentist
		current.Procedure = in.Procedure
		current.Notes = in.Notes
		domain.Reschedule(current, start, minutes)

		if err := tx.UpdateAppointment(ctx, current); err != nil {
			if httperr.IsExclusionConflict(err) {
				return domain.ErrTimeConflict
			}
			return err
		}

		ap = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"dentist_id": ap.DentistID,
			"start_time": ap.StartTime,
			"duration":   ap.DurationMinutes,
		},
	})

	uc.log.WithField("appointment_id", ap.ID).Info("appointment updated")

	return ap, nil
}
