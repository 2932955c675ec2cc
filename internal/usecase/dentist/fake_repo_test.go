package dentist

import (
	"context"
	"sort"
	"strings"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/dentist"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type fakeRepo struct {
	dentists map[uint]*models.Dentist
	hours    map[uint]map[int]models.WorkingHours
	history  map[uint]bool
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		dentists: map[uint]*models.Dentist{},
		hours:    map[uint]map[int]models.WorkingHours{},
		history:  map[uint]bool{},
		nextID:   1,
	}
}

func (f *fakeRepo) Transaction(_ context.Context, fn func(tx domain.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) Create(_ context.Context, d *models.Dentist) error {
	for _, existing := range f.dentists {
		if existing.CRO == d.CRO {
			return domain.ErrDuplicate
		}
	}
	d.ID = f.nextID
	f.nextID++
	cp := *d
	f.dentists[d.ID] = &cp
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*models.Dentist, error) {
	d, ok := f.dentists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.Filter) ([]models.Dentist, error) {
	var out []models.Dentist
	for _, d := range f.dentists {
		if filter.OnlyActive && !d.Active {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Specialty != "" && !strings.EqualFold(d.Specialty, filter.Specialty) {
			continue
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) Save(_ context.Context, d *models.Dentist) error {
	for _, existing := range f.dentists {
		if existing.ID != d.ID && existing.CRO == d.CRO {
			return domain.ErrDuplicate
		}
	}
	cp := *d
	f.dentists[d.ID] = &cp
	return nil
}

// history simula a FK RESTRICT das consultas já realizadas.
func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.dentists[id]; !ok {
		return domain.ErrNotFound
	}
	if f.history[id] {
		return domain.ErrHasAppointments
	}
	delete(f.dentists, id)
	delete(f.hours, id)
	return nil
}

func (f *fakeRepo) ListWorkingHours(_ context.Context, dentistID uint) ([]models.WorkingHours, error) {
	var out []models.WorkingHours
	for _, wh := range f.hours[dentistID] {
		out = append(out, wh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weekday < out[j].Weekday })
	return out, nil
}

func (f *fakeRepo) UpsertWorkingHours(_ context.Context, wh *models.WorkingHours) error {
	if f.hours[wh.DentistID] == nil {
		f.hours[wh.DentistID] = map[int]models.WorkingHours{}
	}
	f.hours[wh.DentistID][wh.Weekday] = *wh
	return nil
}

type fakeFuture map[uint]bool

func (f fakeFuture) HasFutureAppointmentForDentist(_ context.Context, id uint) (bool, error) {
	return f[id], nil
}
