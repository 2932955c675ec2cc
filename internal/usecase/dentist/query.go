package dentist

import (
	"context"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/dentist"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type QueryDentists struct {
	repo domain.Repository
}

func NewQueryDentists(repo domain.Repository) *QueryDentists {
	return &QueryDentists{repo: repo}
}

func (uc *QueryDentists) Get(ctx context.Context, id uint) (*models.Dentist, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *QueryDentists) List(ctx context.Context, onlyActive bool) ([]models.Dentist, error) {
	return uc.repo.List(ctx, domain.Filter{OnlyActive: onlyActive})
}

// Search busca por trecho do nome.
func (uc *QueryDentists) Search(ctx context.Context, name string) ([]models.Dentist, error) {
	return uc.repo.List(ctx, domain.Filter{Name: name})
}

func (uc *QueryDentists) BySpecialty(ctx context.Context, specialty string) ([]models.Dentist, error) {
	return uc.repo.List(ctx, domain.Filter{Specialty: specialty})
}
