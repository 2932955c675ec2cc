package dentist

import (
	"context"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/dentist"
)

type DeleteDentist struct {
	repo   domain.Repository
	future FutureAppointments
	audit  *audit.Dispatcher
}

func NewDeleteDentist(
	repo domain.Repository,
	future FutureAppointments,
	audit *audit.Dispatcher,
) *DeleteDentist {
	return &DeleteDentist{repo: repo, future: future, audit: audit}
}

// Execute remove o dentista e seu expediente. Consultas futuras ativas
// bloqueiam; histórico passado também, pela FK das consultas.
func (uc *DeleteDentist) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		return err
	}

	has, err := uc.future.HasFutureAppointmentForDentist(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrHasFutureAppointments
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{Action: "dentist_deleted", Entity: "dentist", EntityID: &id})
	return nil
}
