package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/audit"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/config"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/handlers"
	infraRepo "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/infra/repository"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/middleware"
	ucAppointment "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/appointment"
	ucDentist "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/dentist"
	ucPatient "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/patient"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *logrus.Logger,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	dentistRepo := infraRepo.NewDentistGormRepository(db)
	patientRepo := infraRepo.NewPatientGormRepository(db)

	rules := ucAppointment.RulesFromConfig(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, rules, auditDispatcher, log)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, rules, auditDispatcher, log)
	changeStatusUC := ucAppointment.NewChangeStatus(appointmentRepo, rules, auditDispatcher, log)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, rules)
	queryAppointmentsUC := ucAppointment.NewQueryAppointments(appointmentRepo, rules)

	createDentistUC := ucDentist.NewCreateDentist(dentistRepo, auditDispatcher, log)
	updateDentistUC := ucDentist.NewUpdateDentist(dentistRepo, auditDispatcher, log)
	deleteDentistUC := ucDentist.NewDeleteDentist(dentistRepo, queryAppointmentsUC, auditDispatcher)
	dentistActiveUC := ucDentist.NewSetDentistActive(dentistRepo, queryAppointmentsUC, auditDispatcher)
	queryDentistsUC := ucDentist.NewQueryDentists(dentistRepo)
	workingHoursUC := ucDentist.NewManageWorkingHours(dentistRepo, auditDispatcher)

	createPatientUC := ucPatient.NewCreatePatient(patientRepo, auditDispatcher, log)
	updatePatientUC := ucPatient.NewUpdatePatient(patientRepo, auditDispatcher, log)
	deletePatientUC := ucPatient.NewDeletePatient(patientRepo, queryAppointmentsUC, auditDispatcher)
	patientActiveUC := ucPatient.NewSetPatientActive(patientRepo, queryAppointmentsUC, auditDispatcher)
	queryPatientsUC := ucPatient.NewQueryPatients(patientRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		changeStatusUC,
		deleteAppointmentUC,
		availabilityUC,
		queryAppointmentsUC,
		rules.Location,
		log,
	)

	dentistHandler := handlers.NewDentistHandler(
		createDentistUC,
		updateDentistUC,
		deleteDentistUC,
		dentistActiveUC,
		queryDentistsUC,
		availabilityUC,
		rules.Location,
		log,
	)
	workingHoursHandler := handlers.NewWorkingHoursHandler(workingHoursUC, log)

	patientHandler := handlers.NewPatientHandler(
		createPatientUC,
		updatePatientUC,
		deletePatientUC,
		patientActiveUC,
		queryPatientsUC,
		queryAppointmentsUC,
		rules.Location,
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db, rules.Location)
	healthHandler := handlers.NewHealthHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	r.GET("/health", healthHandler.Check)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		ag := api.Group("/agendamentos")
		{
			ag.POST("", appointmentHandler.Create)
			ag.GET("", appointmentHandler.List)
			ag.GET("/:id", appointmentHandler.Get)
			ag.PUT("/:id", appointmentHandler.Update)
			ag.DELETE("/:id", appointmentHandler.Delete)

			ag.PATCH("/:id/confirmar", appointmentHandler.Confirm())
			ag.PATCH("/:id/cancelar", appointmentHandler.Cancel())
			ag.PATCH("/:id/em-atendimento", appointmentHandler.Start())
			ag.PATCH("/:id/finalizar", appointmentHandler.Complete())

			ag.GET("/paciente/:pacienteId", appointmentHandler.ListByPatient)
			ag.GET("/dentista/:dentistaId", appointmentHandler.ListByDentist)
			ag.GET("/dentista/:dentistaId/data/:data", appointmentHandler.ListByDentistAndDate)
			ag.GET("/dentista/:dentistaId/periodo", appointmentHandler.ListByDentistAndPeriod)
			ag.GET("/dentista/:dentistaId/hoje", appointmentHandler.ListDentistToday)
			ag.GET("/data/:data", appointmentHandler.ListByDate)
			ag.GET("/periodo", appointmentHandler.ListByPeriod)
			ag.GET("/hoje", appointmentHandler.ListToday)
			ag.GET("/proximos", appointmentHandler.ListUpcoming)
			ag.GET("/disponiveis/:dentistaId/:data", appointmentHandler.Availability)
		}

		// ------------------------------
		// DENTISTAS
		// ------------------------------
		de := api.Group("/dentistas")
		{
			de.POST("", dentistHandler.Create)
			de.GET("", dentistHandler.List)
			de.GET("/buscar", dentistHandler.Search)
			de.GET("/especialidade/:especialidade", dentistHandler.BySpecialty)
			de.GET("/:id", dentistHandler.Get)
			de.PUT("/:id", dentistHandler.Update)
			de.DELETE("/:id", dentistHandler.Delete)
			de.PATCH("/:id/ativar", dentistHandler.Activate)
			de.PATCH("/:id/inativar", dentistHandler.Inactivate)

			de.GET("/:id/horarios", workingHoursHandler.Get)
			de.POST("/:id/horarios/padrao", workingHoursHandler.ConfigureDefault)
			de.PUT("/:id/horarios/:dia", workingHoursHandler.UpdateDay)
			de.GET("/:id/horarios-disponiveis", dentistHandler.AvailableSlots)
		}

		// ------------------------------
		// PACIENTES
		// ------------------------------
		pa := api.Group("/pacientes")
		{
			pa.POST("", patientHandler.Create)
			pa.GET("", patientHandler.List)
			pa.GET("/buscar", patientHandler.Search)
			pa.GET("/cpf/:cpf", patientHandler.ByCPF)
			pa.GET("/prontuario/:prontuario", patientHandler.ByRecordNumber)
			pa.GET("/:id", patientHandler.Get)
			pa.PUT("/:id", patientHandler.Update)
			pa.DELETE("/:id", patientHandler.Delete)
			pa.PATCH("/:id/ativar", patientHandler.Activate)
			pa.PATCH("/:id/inativar", patientHandler.Inactivate)
			pa.GET("/:id/agendamentos-futuros", patientHandler.FutureAppointments)
		}

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
