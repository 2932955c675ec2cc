package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/patient"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) Create(ctx context.Context, p *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

func (r *PatientGormRepository) Get(ctx context.Context, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return &p, nil
}

func (r *PatientGormRepository) GetByCPF(ctx context.Context, cpf string) (*models.Patient, error) {
	return r.getBy(ctx, "cpf", cpf)
}

func (r *PatientGormRepository) GetByRecordNumber(ctx context.Context, recordNumber string) (*models.Patient, error) {
	return r.getBy(ctx, "record_number", recordNumber)
}

func (r *PatientGormRepository) getBy(ctx context.Context, column, value string) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get patient by %s: %w", column, err)
	}
	return &p, nil
}

func (r *PatientGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Patient, error) {
	q := r.db.WithContext(ctx).Model(&models.Patient{})
	if f.OnlyActive {
		q = q.Where("active = ?", true)
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}

	var out []models.Patient
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return out, nil
}

func (r *PatientGormRepository) Save(ctx context.Context, p *models.Patient) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		if httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("save patient %d: %w", p.ID, err)
	}
	return nil
}

func (r *PatientGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Patient{}, id)
	if res.Error != nil {
		if httperr.IsForeignKeyViolation(res.Error) || errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return domain.ErrHasAppointments
		}
		return fmt.Errorf("delete patient %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.Repository = (*PatientGormRepository)(nil)
