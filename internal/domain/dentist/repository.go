package dentist

import (
	"context"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

// Filter restringe a listagem; campos vazios não filtram.
type Filter struct {
	OnlyActive bool
	Name       string
	Specialty  string
}

type Repository interface {
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	Create(ctx context.Context, d *models.Dentist) error
	Get(ctx context.Context, id uint) (*models.Dentist, error)
	List(ctx context.Context, f Filter) ([]models.Dentist, error)
	Save(ctx context.Context, d *models.Dentist) error

	// Delete falha com ErrHasAppointments se ainda houver histórico de consultas.
	Delete(ctx context.Context, id uint) error

	// -------- Working hours --------
	ListWorkingHours(ctx context.Context, dentistID uint) ([]models.WorkingHours, error)

	// UpsertWorkingHours grava por (dentist_id, weekday), sobrescrevendo o dia.
	UpsertWorkingHours(ctx context.Context, wh *models.WorkingHours) error
}
