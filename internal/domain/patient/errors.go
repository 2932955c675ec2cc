package patient

import "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"

var (
	ErrNotFound              = httperr.ErrBusiness("patient_not_found")
	ErrHasFutureAppointments = httperr.ErrBusiness("patient_has_future_appointments")
	ErrHasAppointments       = httperr.ErrBusiness("patient_has_appointments")
	ErrDuplicate             = httperr.ErrBusiness("duplicate_record")
)
