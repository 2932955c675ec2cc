package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httpresp"
	ucAppointment "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/appointment"
	ucDentist "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/dentist"
)

type DentistHandler struct {
	create *ucDentist.CreateDentist
	update *ucDentist.UpdateDentist
	del    *ucDentist.DeleteDentist
	active *ucDentist.SetDentistActive
	query  *ucDentist.QueryDentists
	avail  *ucAppointment.GetAvailability

	loc *time.Location
	log *logrus.Logger
}

func NewDentistHandler(
	create *ucDentist.CreateDentist,
	update *ucDentist.UpdateDentist,
	del *ucDentist.DeleteDentist,
	active *ucDentist.SetDentistActive,
	query *ucDentist.QueryDentists,
	avail *ucAppointment.GetAvailability,
	loc *time.Location,
	log *logrus.Logger,
) *DentistHandler {
	return &DentistHandler{
		create: create,
		update: update,
		del:    del,
		active: active,
		query:  query,
		avail:  avail,
		loc:    loc,
		log:    log,
	}
}

type DentistRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	CRO       string `json:"cro" binding:"required,max=20"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=20"`
	Specialty string `json:"specialty" binding:"max=100"`
}

func (h *DentistHandler) Create(c *gin.Context) {
	var req DentistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	d, err := h.create.Execute(c.Request.Context(), ucDentist.CreateDentistInput{
		Name:      req.Name,
		CRO:       req.CRO,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Created(c, d)
}

func (h *DentistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req DentistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	d, err := h.update.Execute(c.Request.Context(), ucDentist.UpdateDentistInput{
		ID:        id,
		Name:      req.Name,
		CRO:       req.CRO,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DentistHandler) Delete(c *gin.Context) {
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

func (h *DentistHandler) List(c *gin.Context) {
	onlyActive, _ := strconv.ParseBool(c.Query("ativos"))

	out, err := h.query.List(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

// Search atende /dentistas/buscar?nome=.
func (h *DentistHandler) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("nome"))
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "Informe o nome.")
		return
	}

	out, err := h.query.Search(c.Request.Context(), name)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *DentistHandler) BySpecialty(c *gin.Context) {
	out, err := h.query.BySpecialty(c.Request.Context(), c.Param("especialidade"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *DentistHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DentistHandler) Activate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.active.Activate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DentistHandler) Inactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := h.active.Inactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}

// AvailableSlots atende /dentistas/:id/horarios-disponiveis?data=AAAA-MM-DD.
func (h *DentistHandler) AvailableSlots(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	day, err := parseDate(h.loc, c.Query("data"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	writeAvailability(c, h.avail, h.loc, h.log, id, day)
}
