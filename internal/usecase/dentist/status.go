package dentist

import (
	"context"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/dentist"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

// FutureAppointments responde se ainda há consultas que ocupam a agenda.
type FutureAppointments interface {
	HasFutureAppointmentForDentist(ctx context.Context, dentistID uint) (bool, error)
}

type SetDentistActive struct {
	repo   domain.Repository
	future FutureAppointments
	audit  *audit.Dispatcher
}

func NewSetDentistActive(
	repo domain.Repository,
	future FutureAppointments,
	audit *audit.Dispatcher,
) *SetDentistActive {
	return &SetDentistActive{repo: repo, future: future, audit: audit}
}

func (uc *SetDentistActive) Activate(ctx context.Context, id uint) (*models.Dentist, error) {
	return uc.set(ctx, id, true)
}

// Inactivate falha se o dentista ainda tiver consultas futuras ativas.
func (uc *SetDentistActive) Inactivate(ctx context.Context, id uint) (*models.Dentist, error) {
	return uc.set(ctx, id, false)
}

func (uc *SetDentistActive) set(ctx context.Context, id uint, active bool) (*models.Dentist, error) {
	d, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !active {
		has, err := uc.future.HasFutureAppointmentForDentist(ctx, id)
		if err != nil {
			return nil, err
		}
		if has {
			return nil, domain.ErrHasFutureAppointments
		}
	}

	d.Active = active
	if err := uc.repo.Save(ctx, d); err != nil {
		return nil, err
	}

	action := "dentist_activated"
	if !active {
		action = "dentist_inactivated"
	}
	uc.audit.Dispatch(audit.Event{Action: action, Entity: "dentist", EntityID: &d.ID})

	return d, nil
}
