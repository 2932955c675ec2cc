package patient

import (
	"context"
	"strings"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/patient"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type QueryPatients struct {
	repo domain.Repository
}

func NewQueryPatients(repo domain.Repository) *QueryPatients {
	return &QueryPatients{repo: repo}
}

func (uc *QueryPatients) Get(ctx context.Context, id uint) (*models.Patient, error) {
	return uc.repo.Get(ctx, id)
}

// ByCPF aceita o CPF com ou sem máscara.
func (uc *QueryPatients) ByCPF(ctx context.Context, cpf string) (*models.Patient, error) {
	digits := OnlyDigits(cpf)
	if digits == "" {
		return nil, domain.ErrNotFound
	}
	return uc.repo.GetByCPF(ctx, digits)
}

func (uc *QueryPatients) ByRecordNumber(ctx context.Context, recordNumber string) (*models.Patient, error) {
	rn := strings.TrimSpace(recordNumber)
	if rn == "" {
		return nil, domain.ErrNotFound
	}
	return uc.repo.GetByRecordNumber(ctx, rn)
}

func (uc *QueryPatients) List(ctx context.Context, onlyActive bool) ([]models.Patient, error) {
	return uc.repo.List(ctx, domain.Filter{OnlyActive: onlyActive})
}

// Search busca por trecho do nome.
func (uc *QueryPatients) Search(ctx context.Context, name string) ([]models.Patient, error) {
	return uc.repo.List(ctx, domain.Filter{Name: name})
}
