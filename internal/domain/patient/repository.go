package patient

import (
	"context"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

// Filter restringe a listagem; Name busca por trecho, sem diferenciar caixa.
type Filter struct {
	OnlyActive bool
	Name       string
}

type Repository interface {
	Create(ctx context.Context, p *models.Patient) error
	Get(ctx context.Context, id uint) (*models.Patient, error)
	GetByCPF(ctx context.Context, cpf string) (*models.Patient, error)
	GetByRecordNumber(ctx context.Context, recordNumber string) (*models.Patient, error)
	List(ctx context.Context, f Filter) ([]models.Patient, error)
	Save(ctx context.Context, p *models.Patient) error

	// Delete falha com ErrHasAppointments se ainda houver histórico de consultas.
	Delete(ctx context.Context, id uint) error
}
