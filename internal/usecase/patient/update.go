package patient

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/patient"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type UpdatePatientInput struct {
	ID        uint
	Name      string
	CPF       string
	Phone     string
	Email     string
	BirthDate *time.Time
}

type UpdatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewUpdatePatient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *UpdatePatient {
	return &UpdatePatient{repo: repo, audit: audit, log: log}
}

// Execute troca os dados cadastrais. O prontuário não muda depois de criado.
func (uc *UpdatePatient) Execute(
	ctx context.Context,
	in UpdatePatientInput,
) (*models.Patient, error) {

	p, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.CPF = OnlyDigits(in.CPF)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Email = strings.ToLower(strings.TrimSpace(in.Email))
	p.BirthDate = in.BirthDate

	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "patient_updated",
		Entity:   "patient",
		EntityID: &p.ID,
		Metadata: map[string]any{"record_number": p.RecordNumber},
	})
	uc.log.WithField("patient_id", p.ID).Info("patient updated")

	return p, nil
}
