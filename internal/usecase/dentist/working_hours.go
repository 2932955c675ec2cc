package dentist

import (
	"context"
	"time"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	appointment "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/dentist"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateDayHoursInput struct {
	DentistID uint
	Weekday   time.Weekday

	MorningStart   string
	MorningEnd     string
	AfternoonStart string
	AfternoonEnd   string
}

// ======================================================
// USE CASE
// ======================================================

type ManageWorkingHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewManageWorkingHours(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ManageWorkingHours {
	return &ManageWorkingHours{repo: repo, audit: audit}
}

func (uc *ManageWorkingHours) List(ctx context.Context, dentistID uint) ([]models.WorkingHours, error) {
	if _, err := uc.repo.Get(ctx, dentistID); err != nil {
		return nil, err
	}
	return uc.repo.ListWorkingHours(ctx, dentistID)
}

// ConfigureDefault sobrescreve a semana inteira com o expediente padrão.
func (uc *ManageWorkingHours) ConfigureDefault(ctx context.Context, dentistID uint) ([]models.WorkingHours, error) {
	week := appointment.DefaultWeek(dentistID)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.Get(ctx, dentistID); err != nil {
			return err
		}
		for i := range week {
			if err := tx.UpsertWorkingHours(ctx, &week[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "working_hours_default",
		Entity:   "dentist",
		EntityID: &dentistID,
	})
	return week, nil
}

// UpdateDay grava o expediente de um dia. O dia fica ativo quando ao
// menos um turno é informado.
func (uc *ManageWorkingHours) UpdateDay(ctx context.Context, in UpdateDayHoursInput) (*models.WorkingHours, error) {
	wh := &models.WorkingHours{
		DentistID:      in.DentistID,
		Weekday:        int(in.Weekday),
		MorningStart:   in.MorningStart,
		MorningEnd:     in.MorningEnd,
		AfternoonStart: in.AfternoonStart,
		AfternoonEnd:   in.AfternoonEnd,
	}
	wh.Active = (wh.MorningStart != "" && wh.MorningEnd != "") ||
		(wh.AfternoonStart != "" && wh.AfternoonEnd != "")

	if err := appointment.ValidateWorkingHours(wh); err != nil {
		return nil, err
	}

	if _, err := uc.repo.Get(ctx, in.DentistID); err != nil {
		return nil, err
	}
	if err := uc.repo.UpsertWorkingHours(ctx, wh); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "working_hours_updated",
		Entity:   "dentist",
		EntityID: &in.DentistID,
		Metadata: map[string]any{"weekday": wh.Weekday, "active": wh.Active},
	})
	return wh, nil
}
