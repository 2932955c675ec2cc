package dentist

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	appointment "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/dentist"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

type CreateDentistInput struct {
	Name      string
	CRO       string
	Email     string
	Phone     string
	Specialty string
}

type CreateDentist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewCreateDentist(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *logrus.Logger,
) *CreateDentist {
	return &CreateDentist{repo: repo, audit: audit, log: log}
}

// Execute cadastra o dentista já com o expediente padrão da semana.
func (uc *CreateDentist) Execute(
	ctx context.Context,
	in CreateDentistInput,
) (*models.Dentist, error) {

	d := &models.Dentist{
		Name:      strings.TrimSpace(in.Name),
		CRO:       strings.ToUpper(strings.TrimSpace(in.CRO)),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Specialty: strings.TrimSpace(in.Specialty),
		Active:    true,
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.Create(ctx, d); err != nil {
			return err
		}

		week := appointment.DefaultWeek(d.ID)
		for i := range week {
			if err := tx.UpsertWorkingHours(ctx, &week[i]); err != nil {
				return err
			}
		}
		d.WorkingHours = week
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "dentist_created",
		Entity:   "dentist",
		EntityID: &d.ID,
		Metadata: map[string]any{"cro": d.CRO},
	})
	uc.log.WithField("dentist_id", d.ID).Info("dentist created")

	return d, nil
}
