package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/dto"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httpresp"
	ucAppointment "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/appointment"
	ucPatient "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/patient"
)

type PatientHandler struct {
	create       *ucPatient.CreatePatient
	update       *ucPatient.UpdatePatient
	del          *ucPatient.DeletePatient
	active       *ucPatient.SetPatientActive
	query        *ucPatient.QueryPatients
	appointments *ucAppointment.QueryAppointments

	loc *time.Location
	log *logrus.Logger
}

func NewPatientHandler(
	create *ucPatient.CreatePatient,
	update *ucPatient.UpdatePatient,
	del *ucPatient.DeletePatient,
	active *ucPatient.SetPatientActive,
	query *ucPatient.QueryPatients,
	appointments *ucAppointment.QueryAppointments,
	loc *time.Location,
	log *logrus.Logger,
) *PatientHandler {
	return &PatientHandler{
		create:       create,
		update:       update,
		del:          del,
		active:       active,
		query:        query,
		appointments: appointments,
		loc:          loc,
		log:          log,
	}
}

type CreatePatientRequest struct {
	RecordNumber string `json:"record_number" binding:"max=20"`
	Name         string `json:"name" binding:"required,max=100"`
	CPF          string `json:"cpf" binding:"required,cpf"`
	Phone        string `json:"phone" binding:"max=20"`
	Email        string `json:"email" binding:"omitempty,email"`
	BirthDate    string `json:"birth_date"`
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	birth, ok := h.birthDate(c, req.BirthDate)
	if !ok {
		return
	}

	p, err := h.create.Execute(c.Request.Context(), ucPatient.CreatePatientInput{
		RecordNumber: req.RecordNumber,
		Name:         req.Name,
		CPF:          req.CPF,
		Phone:        req.Phone,
		Email:        req.Email,
		BirthDate:    birth,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Created(c, p)
}

type UpdatePatientRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	CPF       string `json:"cpf" binding:"required,cpf"`
	Phone     string `json:"phone" binding:"max=20"`
	Email     string `json:"email" binding:"omitempty,email"`
	BirthDate string `json:"birth_date"`
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	birth, ok := h.birthDate(c, req.BirthDate)
	if !ok {
		return
	}

	p, err := h.update.Execute(c.Request.Context(), ucPatient.UpdatePatientInput{
		ID:        id,
		Name:      req.Name,
		CPF:       req.CPF,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: birth,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Delete(c *gin.Context) {
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

func (h *PatientHandler) birthDate(c *gin.Context, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	d, err := parseDate(h.loc, raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data de nascimento inválida.")
		return nil, false
	}
	return &d, true
}

func (h *PatientHandler) ByCPF(c *gin.Context) {
	p, err := h.query.ByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) ByRecordNumber(c *gin.Context) {
	p, err := h.query.ByRecordNumber(c.Request.Context(), c.Param("prontuario"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

// Search atende /pacientes/buscar?nome=.
func (h *PatientHandler) Search(c *gin.Context) {
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

func (h *PatientHandler) List(c *gin.Context) {
	onlyActive, _ := strconv.ParseBool(c.Query("ativos"))

	out, err := h.query.List(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Activate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.active.Activate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Inactivate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.active.Inactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) FutureAppointments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.query.Get(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	aps, err := h.appointments.FutureByPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.FromAppointments(aps, h.loc))
}
