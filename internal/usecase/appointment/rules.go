package appointment

import (
	"context"
	"time"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/config"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/timezone"
)

// ======================================================
// RULES
// ======================================================

// Rules concentra os parâmetros de agenda usados por todos os casos de uso.
type Rules struct {
	MinLead         time.Duration
	SlotDuration    time.Duration
	DefaultDuration time.Duration
	MaxPeriod       time.Duration

	Location *time.Location
	Now      func() time.Time
}

func DefaultRules() Rules {
	return Rules{
		MinLead:         time.Hour,
		SlotDuration:    30 * time.Minute,
		DefaultDuration: 30 * time.Minute,
		MaxPeriod:       90 * 24 * time.Hour,
		Location:        timezone.Location(timezone.DefaultTimezone),
		Now:             time.Now,
	}
}

func RulesFromConfig(cfg *config.Config) Rules {
	r := DefaultRules()
	r.MinLead = cfg.Scheduling.MinLead
	r.SlotDuration = cfg.Scheduling.SlotDuration
	r.DefaultDuration = cfg.Scheduling.DefaultDuration
	r.MaxPeriod = cfg.Scheduling.MaxPeriod
	r.Location = timezone.Location(cfg.Timezone)
	return r
}

func (r Rules) now() time.Time {
	if r.Now == nil {
		return time.Now().In(r.location())
	}
	return r.Now().In(r.location())
}

func (r Rules) location() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}

// ======================================================
// PROPOSAL CHECKS
// ======================================================

type proposal struct {
	PatientID uint
	DentistID uint
	Start     time.Time
	Minutes   int
}

// checkProposal roda as validações de criação/edição na ordem:
// paciente, dentista, dentista ativo, antecedência, expediente, conflito.
// Deve rodar dentro da transação que fará a escrita.
func (r Rules) checkProposal(
	ctx context.Context,
	tx domain.Repository,
	p proposal,
	excludeID *uint,
) (*models.Patient, *models.Dentist, error) {

	patient, err := tx.GetPatient(ctx, p.PatientID)
	if err != nil {
		return nil, nil, err
	}

	dentist, err := tx.LockDentist(ctx, p.DentistID)
	if err != nil {
		return nil, nil, err
	}
	if !dentist.Active {
		return nil, nil, domain.ErrInactiveDentist
	}

	start := p.Start.In(r.location())
	if start.Before(r.now().Add(r.MinLead)) {
		return nil, nil, domain.ErrTooSoon
	}

	wh, err := tx.GetWorkingHours(ctx, p.DentistID, start.Weekday())
	if err != nil {
		return nil, nil, err
	}
	if !domain.IsWithinWorkingHours(wh, start) {
		return nil, nil, domain.ErrOutsideWorkingHours
	}

	conflict, err := tx.HasTimeConflict(
		ctx,
		p.DentistID,
		start,
		domain.EndFor(start, p.Minutes),
		excludeID,
	)
	if err != nil {
		return nil, nil, err
	}
	if conflict {
		return nil, nil, domain.ErrTimeConflict
	}

	return patient, dentist, nil
}

// validatePeriod aceita [start, end] com no máximo MaxPeriod de extensão,
// medida entre as datas de calendário na clínica. Assim um fim que cobre o
// dia inteiro não conta como um dia a mais.
func (r Rules) validatePeriod(start, end time.Time) error {
	if start.After(end) {
		return domain.ErrInvalidPeriod
	}
	if r.MaxPeriod > 0 && r.calendarSpan(start, end) > r.MaxPeriod {
		return domain.ErrInvalidPeriod
	}
	return nil
}

func (r Rules) calendarSpan(start, end time.Time) time.Duration {
	loc := r.location()
	sy, sm, sd := start.In(loc).Date()
	ey, em, ed := end.In(loc).Date()
	return time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC).
		Sub(time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC))
}
