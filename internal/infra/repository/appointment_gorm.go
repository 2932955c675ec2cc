package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Patient / Dentist
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPatient(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return &p, nil
}

func (r *AppointmentGormRepository) GetDentist(
	ctx context.Context,
	id uint,
) (*models.Dentist, error) {

	var d models.Dentist
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDentistNotFound
		}
		return nil, fmt.Errorf("get dentist %d: %w", id, err)
	}
	return &d, nil
}

func (r *AppointmentGormRepository) LockDentist(
	ctx context.Context,
	id uint,
) (*models.Dentist, error) {

	var d models.Dentist
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDentistNotFound
		}
		return nil, fmt.Errorf("lock dentist %d: %w", id, err)
	}
	return &d, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	dentistID uint,
	weekday time.Weekday,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("dentist_id = ? AND weekday = ?", dentistID, int(weekday)).
		First(&wh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get working hours: %w", err)
	}

	return &wh, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointment (conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) HasTimeConflict(
	ctx context.Context,
	dentistID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"dentist_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			dentistID,
			domain.BlockingStatusValues(),
			end,
			start,
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check time conflict: %w", err)
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) HasFutureBlockingForPatient(
	ctx context.Context,
	patientID uint,
	now time.Time,
) (bool, error) {
	return r.hasFutureBlocking(ctx, "patient_id", patientID, now)
}

func (r *AppointmentGormRepository) HasFutureBlockingForDentist(
	ctx context.Context,
	dentistID uint,
	now time.Time,
) (bool, error) {
	return r.hasFutureBlocking(ctx, "dentist_id", dentistID, now)
}

func (r *AppointmentGormRepository) hasFutureBlocking(
	ctx context.Context,
	column string,
	id uint,
	now time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: id}).
		Where("start_time > ? AND status IN ?", now, domain.BlockingStatusValues()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check future appointments: %w", err)
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Dentist").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment %d: %w", id, err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Dentist")

	if f.PatientID != nil {
		q = q.Where("patient_id = ?", *f.PatientID)
	}
	if f.DentistID != nil {
		q = q.Where("dentist_id = ?", *f.DentistID)
	}
	if f.From != nil {
		q = q.Where("start_time >= ?", *f.From)
	}
	if f.To != nil {
		if f.ToInclusive {
			q = q.Where("start_time <= ?", *f.To)
		} else {
			q = q.Where("start_time < ?", *f.To)
		}
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where("status IN ?", statuses)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
