package patient

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/patient"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type CreatePatientInput struct {
	RecordNumber string
	Name         string
	CPF          string
	Phone        string
	Email        string
	BirthDate    *time.Time
}

type CreatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewCreatePatient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *CreatePatient {
	return &CreatePatient{repo: repo, audit: audit, log: log}
}

func (uc *CreatePatient) Execute(
	ctx context.Context,
	in CreatePatientInput,
) (*models.Patient, error) {

	p := &models.Patient{
		RecordNumber: strings.TrimSpace(in.RecordNumber),
		Name:         strings.TrimSpace(in.Name),
		CPF:          OnlyDigits(in.CPF),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		BirthDate:    in.BirthDate,
		Active:       true,
	}

	// prontuário gerado quando não informado
	if p.RecordNumber == "" {
		p.RecordNumber = "P" + strings.ToUpper(uuid.NewString()[:8])
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "patient_created",
		Entity:   "patient",
		EntityID: &p.ID,
		Metadata: map[string]any{"record_number": p.RecordNumber},
	})
	uc.log.WithField("patient_id", p.ID).Info("patient created")

	return p, nil
}

func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
