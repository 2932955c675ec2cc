package dentist

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/dentist"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type UpdateDentistInput struct {
	ID        uint
	Name      string
	CRO       string
	Email     string
	Phone     string
	Specialty string
}

type UpdateDentist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewUpdateDentist(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *UpdateDentist {
	return &UpdateDentist{repo: repo, audit: audit, log: log}
}

// Execute troca os dados cadastrais; status e expediente não mudam aqui.
func (uc *UpdateDentist) Execute(
	ctx context.Context,
	in UpdateDentistInput,
) (*models.Dentist, error) {

	d, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	d.Name = strings.TrimSpace(in.Name)
	d.CRO = strings.ToUpper(strings.TrimSpace(in.CRO))
	d.Email = strings.ToLower(strings.TrimSpace(in.Email))
	d.Phone = strings.TrimSpace(in.Phone)
	d.Specialty = strings.TrimSpace(in.Specialty)

	if err := uc.repo.Save(ctx, d); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "dentist_updated",
		Entity:   "dentist",
		EntityID: &d.ID,
		Metadata: map[string]any{"cro": d.CRO},
	})
	uc.log.WithField("dentist_id", d.ID).Info("dentist updated")

	return d, nil
}
