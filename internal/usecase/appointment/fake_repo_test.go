package appointment

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type fakeRepo struct {
	mu sync.Mutex

	patients     map[uint]*models.Patient
	dentists     map[uint]*models.Dentist
	workingHours map[uint]map[time.Weekday]*models.WorkingHours
	appointments map[uint]*models.Appointment
	nextID       uint

	txCount int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		patients:     map[uint]*models.Patient{},
		dentists:     map[uint]*models.Dentist{},
		workingHours: map[uint]map[time.Weekday]*models.WorkingHours{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepo) addPatient(id uint) {
	f.patients[id] = &models.Patient{ID: id, Name: "Paciente", Active: true}
}

func (f *fakeRepo) addDentist(id uint, active bool) {
	f.dentists[id] = &models.Dentist{ID: id, Name: "Dentista", Active: active}
	f.workingHours[id] = map[time.Weekday]*models.WorkingHours{}
	for _, wh := range domain.DefaultWeek(id) {
		f.workingHours[id][time.Weekday(wh.Weekday)] = &wh
	}
}

func (f *fakeRepo) Transaction(_ context.Context, fn func(tx domain.Repository) error) error {
	f.txCount++
	return fn(f)
}

func (f *fakeRepo) GetPatient(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) GetDentist(_ context.Context, id uint) (*models.Dentist, error) {
	d, ok := f.dentists[id]
	if !ok {
		return nil, domain.ErrDentistNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeRepo) LockDentist(ctx context.Context, id uint) (*models.Dentist, error) {
	return f.GetDentist(ctx, id)
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, dentistID uint, weekday time.Weekday) (*models.WorkingHours, error) {
	return f.workingHours[dentistID][weekday], nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := f.appointments[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) HasTimeConflict(_ context.Context, dentistID uint, start, end time.Time, excludeID *uint) (bool, error) {
	for _, ap := range f.appointments {
		if ap.DentistID != dentistID || !domain.Status(ap.Status).IsBlocking() {
			continue
		}
		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) HasFutureBlockingForPatient(_ context.Context, patientID uint, now time.Time) (bool, error) {
	for _, ap := range f.appointments {
		if ap.PatientID == patientID && ap.StartTime.After(now) && domain.Status(ap.Status).IsBlocking() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) HasFutureBlockingForDentist(_ context.Context, dentistID uint, now time.Time) (bool, error) {
	for _, ap := range f.appointments {
		if ap.DentistID == dentistID && ap.StartTime.After(now) && domain.Status(ap.Status).IsBlocking() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if filter.PatientID != nil && ap.PatientID != *filter.PatientID {
			continue
		}
		if filter.DentistID != nil && ap.DentistID != *filter.DentistID {
			continue
		}
		if filter.From != nil && ap.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil {
			if filter.ToInclusive && ap.StartTime.After(*filter.To) {
				continue
			}
			if !filter.ToInclusive && !ap.StartTime.Before(*filter.To) {
				continue
			}
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, domain.Status(ap.Status)) {
			continue
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
