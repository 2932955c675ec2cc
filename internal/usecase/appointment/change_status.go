package appointment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type ChangeStatus struct {
	repo  domain.Repository
	rules Rules
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewChangeStatus(
	repo domain.Repository,
	rules Rules,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		rules: rules,
		audit: audit,
		log:   log,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	id uint,
	next domain.Status,
) (*models.Appointment, error) {

	var (
		ap       *models.Appointment
		previous domain.Status
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.GetAppointment(ctx, id)
		if err != nil {
			return err
		}

		previous = domain.Status(current.Status)
		if err := domain.ChangeStatus(current, next, uc.rules.now()); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, current); err != nil {
			return err
		}

		ap = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous != next {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_status_changed",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{
				"from": previous,
				"to":   next,
			},
		})
	}

	uc.log.WithFields(logrus.Fields{
		"appointment_id": ap.ID,
		"from":           previous,
		"to":             next,
	}).Info("appointment status changed")

	return ap, nil
}

func (uc *ChangeStatus) Confirm(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.Execute(ctx, id, domain.StatusConfirmed)
}

func (uc *ChangeStatus) Cancel(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.Execute(ctx, id, domain.StatusCancelled)
}

func (uc *ChangeStatus) Start(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.Execute(ctx, id, domain.StatusInProgress)
}

func (uc *ChangeStatus) Complete(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.Execute(ctx, id, domain.StatusCompleted)
}
