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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID uint
	DentistID uint

	StartTime       time.Time
	DurationMinutes int

	Procedure string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	rules Rules
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	rules Rules,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		rules: rules,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	minutes := domain.EffectiveDuration(in.DurationMinutes, uc.rules.DefaultDuration)
	start := in.StartTime.In(uc.rules.location())

	var ap *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Validações (paciente → conflito)
		// --------------------------------------------------
		patient, dentist, err := uc.rules.checkProposal(ctx, tx, proposal{
			PatientID: in.PatientID,
			DentistID: in.DentistID,
			Start:     start,
			Minutes:   minutes,
		}, nil)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 2️⃣ Criação (fim derivado da duração)
		// --------------------------------------------------
		ap = &models.Appointment{
			PatientID: patient.ID,
			DentistID: dentist.ID,
			Status:    string(domain.InitialStatus()),
			Procedure: in.Procedure,
			Notes:     in.Notes,
		}
		domain.Reschedule(ap, start, minutes)

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			if httperr.IsExclusionConflict(err) {
				return domain.ErrTimeConflict
			}
			return err
		}

		ap.Patient = *patient
		ap.Dentist = *dentist
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"dentist_id": ap.DentistID,
			"patient_id": ap.PatientID,
			"start_time": ap.StartTime,
		},
	})

	uc.log.WithFields(logrus.Fields{
		"appointment_id": ap.ID,
		"dentist_id":     ap.DentistID,
		"start_time":     ap.StartTime,
	}).Info("appointment created")

	return ap, nil
}
