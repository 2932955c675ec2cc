package appointment

import (
	"context"
	"time"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

// Repository é o que o agendador consome do armazenamento. Lookups que não
// encontram registro devem devolver o erro de negócio correspondente
// (ErrPatientNotFound, ErrDentistNotFound, ErrAppointmentNotFound).
type Repository interface {
	// Transaction executa fn em uma única transação; o repo recebido está
	// preso a ela.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Patient / Dentist --------
	GetPatient(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	GetDentist(
		ctx context.Context,
		id uint,
	) (*models.Dentist, error)

	// LockDentist trava a linha do dentista até o fim da transação,
	// serializando escritas concorrentes na mesma agenda.
	LockDentist(
		ctx context.Context,
		id uint,
	) (*models.Dentist, error)

	// -------- Working hours --------
	// GetWorkingHours devolve nil, nil quando não há expediente no dia.
	GetWorkingHours(
		ctx context.Context,
		dentistID uint,
		weekday time.Weekday,
	) (*models.WorkingHours, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Appointment (conflict) --------
	HasTimeConflict(
		ctx context.Context,
		dentistID uint,
		start time.Time,
		end time.Time,
		excludeID *uint,
	) (bool, error)

	HasFutureBlockingForPatient(
		ctx context.Context,
		patientID uint,
		now time.Time,
	) (bool, error)

	HasFutureBlockingForDentist(
		ctx context.Context,
		dentistID uint,
		now time.Time,
	) (bool, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}

// ListFilter descreve as consultas de intervalo. Campos zero não filtram.
// O período é sobre o início: From <= start_time < To.
type ListFilter struct {
	PatientID *uint
	DentistID *uint
	From      *time.Time
	To        *time.Time
	// ToInclusive troca o limite superior para start_time <= To.
	ToInclusive bool
	Statuses    []Status
}
