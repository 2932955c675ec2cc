package appointment

import "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"

var (
	ErrPatientNotFound     = httperr.ErrBusiness("patient_not_found")
	ErrDentistNotFound     = httperr.ErrBusiness("dentist_not_found")
	ErrAppointmentNotFound = httperr.ErrBusiness("appointment_not_found")

	ErrTooSoon             = httperr.ErrBusiness("too_soon")
	ErrOutsideWorkingHours = httperr.ErrBusiness("outside_working_hours")
	ErrTimeConflict        = httperr.ErrBusiness("time_conflict")
	ErrInvalidPeriod       = httperr.ErrBusiness("invalid_period")
	ErrInactiveDentist     = httperr.ErrBusiness("inactive_dentist")

	ErrInvalidState  = httperr.ErrBusiness("invalid_state")
	ErrInvalidStatus = httperr.ErrBusiness("invalid_status")
)
