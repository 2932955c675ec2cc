package patient

import (
	"context"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/patient"
)

type DeletePatient struct {
	repo   domain.Repository
	future FutureAppointments
	audit  *audit.Dispatcher
}

func NewDeletePatient(
	repo domain.Repository,
	future FutureAppointments,
	audit *audit.Dispatcher,
) *DeletePatient {
	return &DeletePatient{repo: repo, future: future, audit: audit}
}

// Execute remove o paciente. Consultas futuras ativas bloqueiam;
// histórico passado também, pela FK das consultas.
func (uc *DeletePatient) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		return err
	}

	has, err := uc.future.HasFutureAppointment(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrHasFutureAppointments
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{Action: "patient_deleted", Entity: "patient", EntityID: &id})
	return nil
}
