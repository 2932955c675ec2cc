package appointment

import (
	"context"
	"time"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/timezone"
)

// ======================================================
// QUERIES
// ======================================================

type QueryAppointments struct {
	repo  domain.Repository
	rules Rules
}

func NewQueryAppointments(repo domain.Repository, rules Rules) *QueryAppointments {
	return &QueryAppointments{repo: repo, rules: rules}
}

func (uc *QueryAppointments) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.GetAppointment(ctx, id)
}

func (uc *QueryAppointments) All(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, domain.ListFilter{})
}

// ByStatus filtra pelo status informado, aceito em qualquer caixa.
func (uc *QueryAppointments) ByStatus(ctx context.Context, raw string) ([]models.Appointment, error) {
	status, ok := domain.ParseStatus(raw)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}
	return uc.repo.ListAppointments(ctx, domain.ListFilter{Statuses: []domain.Status{status}})
}

func (uc *QueryAppointments) ByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, domain.ListFilter{PatientID: &patientID})
}

func (uc *QueryAppointments) ByDentist(ctx context.Context, dentistID uint) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, domain.ListFilter{DentistID: &dentistID})
}

// --------------------------------------------------
// Por dia (fuso da clínica)
// --------------------------------------------------

func (uc *QueryAppointments) ByDate(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	from, to := timezone.DayRange(day, uc.rules.location())
	return uc.repo.ListAppointments(ctx, domain.ListFilter{From: &from, To: &to})
}

func (uc *QueryAppointments) ByDentistAndDate(
	ctx context.Context,
	dentistID uint,
	day time.Time,
) ([]models.Appointment, error) {
	from, to := timezone.DayRange(day, uc.rules.location())
	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		DentistID: &dentistID,
		From:      &from,
		To:        &to,
	})
}

func (uc *QueryAppointments) Today(ctx context.Context) ([]models.Appointment, error) {
	return uc.ByDate(ctx, uc.rules.now())
}

// DentistToday lista só o que ainda ocupa a agenda hoje.
func (uc *QueryAppointments) DentistToday(ctx context.Context, dentistID uint) ([]models.Appointment, error) {
	from, to := timezone.DayRange(uc.rules.now(), uc.rules.location())
	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		DentistID: &dentistID,
		From:      &from,
		To:        &to,
		Statuses:  domain.BlockingStatuses,
	})
}

func (uc *QueryAppointments) Upcoming(ctx context.Context) ([]models.Appointment, error) {
	now := uc.rules.now()
	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		From:     &now,
		Statuses: domain.BlockingStatuses,
	})
}

// --------------------------------------------------
// Por período [start, end]
// --------------------------------------------------

func (uc *QueryAppointments) ByPeriod(
	ctx context.Context,
	start, end time.Time,
) ([]models.Appointment, error) {

	if err := uc.rules.validatePeriod(start, end); err != nil {
		return nil, err
	}
	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		From:        &start,
		To:          &end,
		ToInclusive: true,
	})
}

func (uc *QueryAppointments) ByDentistAndPeriod(
	ctx context.Context,
	dentistID uint,
	start, end time.Time,
) ([]models.Appointment, error) {

	if err := uc.rules.validatePeriod(start, end); err != nil {
		return nil, err
	}
	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		DentistID:   &dentistID,
		From:        &start,
		To:          &end,
		ToInclusive: true,
	})
}

// --------------------------------------------------
// Guardas de inativação
// --------------------------------------------------

func (uc *QueryAppointments) HasFutureAppointment(ctx context.Context, patientID uint) (bool, error) {
	return uc.repo.HasFutureBlockingForPatient(ctx, patientID, uc.rules.now())
}

func (uc *QueryAppointments) HasFutureAppointmentForDentist(ctx context.Context, dentistID uint) (bool, error) {
	return uc.repo.HasFutureBlockingForDentist(ctx, dentistID, uc.rules.now())
}

// FutureByPatient lista os agendamentos ainda por vir do paciente.
func (uc *QueryAppointments) FutureByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	now := uc.rules.now()
	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		PatientID: &patientID,
		From:      &now,
		Statuses:  domain.BlockingStatuses,
	})
}
