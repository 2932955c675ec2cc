package patient

import (
	"context"
	"sort"
	"strings"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/patient"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type fakeRepo struct {
	patients map[uint]*models.Patient
	history  map[uint]bool
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		patients: map[uint]*models.Patient{},
		history:  map[uint]bool{},
		nextID:   1,
	}
}

func (f *fakeRepo) Create(_ context.Context, p *models.Patient) error {
	for _, existing := range f.patients {
		if existing.CPF == p.CPF || existing.RecordNumber == p.RecordNumber {
			return domain.ErrDuplicate
		}
	}
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) GetByCPF(_ context.Context, cpf string) (*models.Patient, error) {
	return f.find(func(p *models.Patient) bool { return p.CPF == cpf })
}

func (f *fakeRepo) GetByRecordNumber(_ context.Context, rn string) (*models.Patient, error) {
	return f.find(func(p *models.Patient) bool { return p.RecordNumber == rn })
}

func (f *fakeRepo) find(match func(p *models.Patient) bool) (*models.Patient, error) {
	for _, p := range f.patients {
		if match(p) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, filter domain.Filter) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range f.patients {
		if filter.OnlyActive && !p.Active {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) Save(_ context.Context, p *models.Patient) error {
	for _, existing := range f.patients {
		if existing.ID != p.ID && existing.CPF == p.CPF {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

// history simula a FK RESTRICT das consultas já realizadas.
func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.patients[id]; !ok {
		return domain.ErrNotFound
	}
	if f.history[id] {
		return domain.ErrHasAppointments
	}
	delete(f.patients, id)
	return nil
}

type fakeFuture map[uint]bool

func (f fakeFuture) HasFutureAppointment(_ context.Context, id uint) (bool, error) {
	return f[id], nil
}
