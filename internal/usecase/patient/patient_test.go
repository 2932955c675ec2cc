package patient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/patient"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/logger"
)

func TestCreatePatient_NormalizesAndNumbers(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreatePatient(repo, nil, logger.Discard())

	p, err := uc.Execute(context.Background(), CreatePatientInput{
		Name:  " Maria ",
		CPF:   "123.456.789-09",
		Email: "Maria@Exemplo.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria", p.Name)
	assert.Equal(t, "12345678909", p.CPF)
	assert.Equal(t, "maria@exemplo.com", p.Email)
	assert.Len(t, p.RecordNumber, 9)
	assert.True(t, p.Active)

	_, err = uc.Execute(context.Background(), CreatePatientInput{Name: "Outra", CPF: "12345678909"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSetPatientActive_GuardsFutureAppointments(t *testing.T) {
	repo := newFakeRepo()
	p, err := NewCreatePatient(repo, nil, logger.Discard()).Execute(context.Background(), CreatePatientInput{
		Name: "Joao",
		CPF:  "98765432100",
	})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = NewSetPatientActive(repo, fakeFuture{p.ID: true}, nil).Inactivate(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrHasFutureAppointments)

	uc := NewSetPatientActive(repo, fakeFuture{}, nil)
	got, err := uc.Inactivate(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	active, err := NewQueryPatients(repo).List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	got, err = uc.Activate(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	_, err = uc.Inactivate(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func createPatient(t *testing.T, repo *fakeRepo, name, cpf string) uint {
	t.Helper()
	p, err := NewCreatePatient(repo, nil, logger.Discard()).Execute(context.Background(), CreatePatientInput{
		Name: name,
		CPF:  cpf,
	})
	require.NoError(t, err)
	return p.ID
}

func TestUpdatePatient(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	id := createPatient(t, repo, "Maria", "12345678909")
	createPatient(t, repo, "Joao", "98765432100")

	before, err := repo.Get(ctx, id)
	require.NoError(t, err)

	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	uc := NewUpdatePatient(repo, nil, logger.Discard())

	p, err := uc.Execute(ctx, UpdatePatientInput{
		ID:        id,
		Name:      " Maria Silva ",
		CPF:       "123.456.789-09",
		Email:     "MARIA@exemplo.com",
		BirthDate: &birth,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", p.Name)
	assert.Equal(t, "12345678909", p.CPF)
	assert.Equal(t, "maria@exemplo.com", p.Email)
	assert.Equal(t, before.RecordNumber, p.RecordNumber)
	require.NotNil(t, p.BirthDate)

	_, err = uc.Execute(ctx, UpdatePatientInput{ID: id, Name: "Maria", CPF: "987.654.321-00"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Execute(ctx, UpdatePatientInput{ID: 404, Name: "X", CPF: "1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("future appointments block", func(t *testing.T) {
		repo := newFakeRepo()
		id := createPatient(t, repo, "Maria", "12345678909")

		err := NewDeletePatient(repo, fakeFuture{id: true}, nil).Execute(ctx, id)
		assert.ErrorIs(t, err, domain.ErrHasFutureAppointments)
	})

	t.Run("past history blocks", func(t *testing.T) {
		repo := newFakeRepo()
		id := createPatient(t, repo, "Maria", "12345678909")
		repo.history[id] = true

		err := NewDeletePatient(repo, fakeFuture{}, nil).Execute(ctx, id)
		assert.ErrorIs(t, err, domain.ErrHasAppointments)
	})

	t.Run("removes", func(t *testing.T) {
		repo := newFakeRepo()
		id := createPatient(t, repo, "Maria", "12345678909")

		require.NoError(t, NewDeletePatient(repo, fakeFuture{}, nil).Execute(ctx, id))

		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown", func(t *testing.T) {
		err := NewDeletePatient(newFakeRepo(), fakeFuture{}, nil).Execute(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestQueryPatients_Lookups(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	id := createPatient(t, repo, "Maria Silva", "12345678909")
	createPatient(t, repo, "Joao Souza", "98765432100")

	q := NewQueryPatients(repo)

	p, err := q.ByCPF(ctx, "123.456.789-09")
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)

	got, err := q.ByRecordNumber(ctx, " "+p.RecordNumber+" ")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = q.ByCPF(ctx, "000.000.000-00")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = q.ByRecordNumber(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	found, err := q.Search(ctx, "souza")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Joao Souza", found[0].Name)
}
