package patient

import (
	"context"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/patient"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type FutureAppointments interface {
	HasFutureAppointment(ctx context.Context, patientID uint) (bool, error)
}

type SetPatientActive struct {
	repo   domain.Repository
	future FutureAppointments
	audit  *audit.Dispatcher
}

func NewSetPatientActive(
	repo domain.Repository,
	future FutureAppointments,
	audit *audit.Dispatcher,
) *SetPatientActive {
	return &SetPatientActive{repo: repo, future: future, audit: audit}
}

func (uc *SetPatientActive) Activate(ctx context.Context, id uint) (*models.Patient, error) {
	return uc.set(ctx, id, true)
}

func (uc *SetPatientActive) Inactivate(ctx context.Context, id uint) (*models.Patient, error) {
	return uc.set(ctx, id, false)
}

func (uc *SetPatientActive) set(ctx context.Context, id uint, active bool) (*models.Patient, error) {
	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !active {
		has, err := uc.future.HasFutureAppointment(ctx, id)
		if err != nil {
			return nil, err
		}
		if has {
			return nil, domain.ErrHasFutureAppointments
		}
	}

	p.Active = active
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	action := "patient_activated"
	if !active {
		action = "patient_inactivated"
	}
	uc.audit.Dispatch(audit.Event{Action: action, Entity: "patient", EntityID: &p.ID})

	return p, nil
}
