package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/domain/appointment"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/dto"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httpresp"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
	ucAppointment "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	status *ucAppointment.ChangeStatus
	del    *ucAppointment.DeleteAppointment
	avail  *ucAppointment.GetAvailability
	query  *ucAppointment.QueryAppointments

	loc *time.Location
	log *logrus.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	status *ucAppointment.ChangeStatus,
	del *ucAppointment.DeleteAppointment,
	avail *ucAppointment.GetAvailability,
	query *ucAppointment.QueryAppointments,
	loc *time.Location,
	log *logrus.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		status: status,
		del:    del,
		avail:  avail,
		query:  query,
		loc:    loc,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	PatientID       uint   `json:"patient_id" binding:"required"`
	DentistID       uint   `json:"dentist_id" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=0,max=480"`
	Procedure       string `json:"procedure" binding:"max=255"`
	Notes           string `json:"notes"`
}

func (h *AppointmentHandler) bind(c *gin.Context) (*AppointmentRequest, time.Time, bool) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return nil, time.Time{}, false
	}

	start, err := parseDateTime(h.loc, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return nil, time.Time{}, false
	}
	return &req, start, true
}

// ======================================================
// WRITE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	req, start, ok := h.bind(c)
	if !ok {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID:       req.PatientID,
		DentistID:       req.DentistID,
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
		Procedure:       req.Procedure,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap, h.loc))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, start, ok := h.bind(c)
	if !ok {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:              id,
		PatientID:       req.PatientID,
		DentistID:       req.DentistID,
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
		Procedure:       req.Procedure,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap, h.loc))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.del.Execute(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// Status
// --------------------------------------------------

type statusFn func(ctx context.Context, id uint) (*models.Appointment, error)

func (h *AppointmentHandler) changeStatus(fn statusFn) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		ap, err := fn(c.Request.Context(), id)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		httpresp.OK(c, dto.FromAppointment(ap, h.loc))
	}
}

func (h *AppointmentHandler) Confirm() gin.HandlerFunc  { return h.changeStatus(h.status.Confirm) }
func (h *AppointmentHandler) Cancel() gin.HandlerFunc   { return h.changeStatus(h.status.Cancel) }
func (h *AppointmentHandler) Start() gin.HandlerFunc    { return h.changeStatus(h.status.Start) }
func (h *AppointmentHandler) Complete() gin.HandlerFunc { return h.changeStatus(h.status.Complete) }

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) list(c *gin.Context, aps []models.Appointment, err error) {
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps, h.loc))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap, h.loc))
}

// List aceita ?status= para filtrar; sem ele devolve todos.
func (h *AppointmentHandler) List(c *gin.Context) {
	if raw := c.Query("status"); raw != "" {
		aps, err := h.query.ByStatus(c.Request.Context(), raw)
		h.list(c, aps, err)
		return
	}
	aps, err := h.query.All(c.Request.Context())
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	id, ok := pathID(c, "pacienteId")
	if !ok {
		return
	}
	aps, err := h.query.ByPatient(c.Request.Context(), id)
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListByDentist(c *gin.Context) {
	id, ok := pathID(c, "dentistaId")
	if !ok {
		return
	}
	aps, err := h.query.ByDentist(c.Request.Context(), id)
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	day, ok := pathDate(c, h.loc, "data")
	if !ok {
		return
	}
	aps, err := h.query.ByDate(c.Request.Context(), day)
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListByDentistAndDate(c *gin.Context) {
	id, ok := pathID(c, "dentistaId")
	if !ok {
		return
	}
	day, ok := pathDate(c, h.loc, "data")
	if !ok {
		return
	}
	aps, err := h.query.ByDentistAndDate(c.Request.Context(), id, day)
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListByPeriod(c *gin.Context) {
	start, end, ok := parsePeriod(c, h.loc)
	if !ok {
		return
	}
	aps, err := h.query.ByPeriod(c.Request.Context(), start, end)
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListByDentistAndPeriod(c *gin.Context) {
	id, ok := pathID(c, "dentistaId")
	if !ok {
		return
	}
	start, end, ok := parsePeriod(c, h.loc)
	if !ok {
		return
	}
	aps, err := h.query.ByDentistAndPeriod(c.Request.Context(), id, start, end)
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListToday(c *gin.Context) {
	aps, err := h.query.Today(c.Request.Context())
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListDentistToday(c *gin.Context) {
	id, ok := pathID(c, "dentistaId")
	if !ok {
		return
	}
	aps, err := h.query.DentistToday(c.Request.Context(), id)
	h.list(c, aps, err)
}

func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	aps, err := h.query.Upcoming(c.Request.Context())
	h.list(c, aps, err)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "dentistaId")
	if !ok {
		return
	}
	day, ok := pathDate(c, h.loc, "data")
	if !ok {
		return
	}
	writeAvailability(c, h.avail, h.loc, h.log, id, day)
}

func writeAvailability(
	c *gin.Context,
	uc *ucAppointment.GetAvailability,
	loc *time.Location,
	log *logrus.Logger,
	dentistID uint,
	day time.Time,
) {
	slots, err := uc.Execute(c.Request.Context(), domain.AvailabilityInput{
		DentistID: dentistID,
		Date:      day,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}

	out := make([]dto.SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.SlotDTO{
			Start: s.Start.In(loc).Format("15:04"),
			End:   s.End.In(loc).Format("15:04"),
		})
	}
	httpresp.List(c, out)
}
