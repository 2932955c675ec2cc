package appointment

import (
	"context"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
)

type GetAvailability struct {
	repo  domain.Repository
	rules Rules
}

func NewGetAvailability(repo domain.Repository, rules Rules) *GetAvailability {
	return &GetAvailability{repo: repo, rules: rules}
}

// Execute lista os horários livres do dentista no dia, em ordem.
// Dia sem expediente devolve lista vazia.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	slots := []domain.TimeSlot{}
	day := in.Date.In(uc.rules.location())

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetDentist(ctx, in.DentistID); err != nil {
			return err
		}

		wh, err := tx.GetWorkingHours(ctx, in.DentistID, day.Weekday())
		if err != nil {
			return err
		}

		for start := range domain.Slots(day, wh, uc.rules.SlotDuration) {
			end := start.Add(uc.rules.SlotDuration)

			busy, err := tx.HasTimeConflict(ctx, in.DentistID, start, end, nil)
			if err != nil {
				return err
			}
			if !busy {
				slots = append(slots, domain.TimeSlot{Start: start, End: end})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return slots, nil
}
