package dentist

import "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"

var (
	ErrNotFound              = httperr.ErrBusiness("dentist_not_found")
	ErrHasFutureAppointments = httperr.ErrBusiness("dentist_has_future_appointments")
	ErrHasAppointments       = httperr.ErrBusiness("dentist_has_appointments")
	ErrDuplicate             = httperr.ErrBusiness("duplicate_record")
)
