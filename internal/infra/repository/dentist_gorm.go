package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/dentist"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type DentistGormRepository struct {
	db *gorm.DB
}

func NewDentistGormRepository(db *gorm.DB) *DentistGormRepository {
	return &DentistGormRepository{db: db}
}

func (r *DentistGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DentistGormRepository{db: tx})
	})
}

func (r *DentistGormRepository) Create(ctx context.Context, d *models.Dentist) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error; err != nil {
		if httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create dentist: %w", err)
	}
	return nil
}

func (r *DentistGormRepository) Get(ctx context.Context, id uint) (*models.Dentist, error) {
	var d models.Dentist
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get dentist %d: %w", id, err)
	}
	return &d, nil
}

func (r *DentistGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Dentist, error) {
	q := r.db.WithContext(ctx).Model(&models.Dentist{})
	if f.OnlyActive {
		q = q.Where("active = ?", true)
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}
	if spec := strings.TrimSpace(f.Specialty); spec != "" {
		q = q.Where("LOWER(specialty) = LOWER(?)", spec)
	}

	var out []models.Dentist
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list dentists: %w", err)
	}
	return out, nil
}

func (r *DentistGormRepository) Save(ctx context.Context, d *models.Dentist) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(d).Error; err != nil {
		if httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("save dentist %d: %w", d.ID, err)
	}
	return nil
}

func (r *DentistGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Dentist{}, id)
	if res.Error != nil {
		if httperr.IsForeignKeyViolation(res.Error) || errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return domain.ErrHasAppointments
		}
		return fmt.Errorf("delete dentist %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *DentistGormRepository) ListWorkingHours(
	ctx context.Context,
	dentistID uint,
) ([]models.WorkingHours, error) {

	var out []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("dentist_id = ?", dentistID).
		Order("weekday ASC").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list working hours: %w", err)
	}
	return out, nil
}

func (r *DentistGormRepository) UpsertWorkingHours(
	ctx context.Context,
	wh *models.WorkingHours,
) error {

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "dentist_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"morning_start",
				"morning_end",
				"afternoon_start",
				"afternoon_end",
				"active",
				"updated_at",
			}),
		}).
		Create(wh).Error
	if err != nil {
		return fmt.Errorf("upsert working hours: %w", err)
	}
	return nil
}

var _ domain.Repository = (*DentistGormRepository)(nil)
