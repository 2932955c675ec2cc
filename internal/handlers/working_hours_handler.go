package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httpresp"
	ucDentist "github.com/EduardoMSouza/clinicaDaniloOdonto/internal/usecase/dentist"
)

type WorkingHoursHandler struct {
	uc  *ucDentist.ManageWorkingHours
	log *logrus.Logger
}

func NewWorkingHoursHandler(uc *ucDentist.ManageWorkingHours, log *logrus.Logger) *WorkingHoursHandler {
	return &WorkingHoursHandler{uc: uc, log: log}
}

type WorkingDayRequest struct {
	MorningStart   string `json:"morning_start" binding:"omitempty,hhmm"`
	MorningEnd     string `json:"morning_end" binding:"omitempty,hhmm"`
	AfternoonStart string `json:"afternoon_start" binding:"omitempty,hhmm"`
	AfternoonEnd   string `json:"afternoon_end" binding:"omitempty,hhmm"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	hours, err := h.uc.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, hours)
}

func (h *WorkingHoursHandler) ConfigureDefault(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	week, err := h.uc.ConfigureDefault(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, week)
}

func (h *WorkingHoursHandler) UpdateDay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	weekday, ok := parseWeekday(c.Param("dia"))
	if !ok {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	var req WorkingDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	wh, err := h.uc.UpdateDay(c.Request.Context(), ucDentist.UpdateDayHoursInput{
		DentistID:      id,
		Weekday:        weekday,
		MorningStart:   req.MorningStart,
		MorningEnd:     req.MorningEnd,
		AfternoonStart: req.AfternoonStart,
		AfternoonEnd:   req.AfternoonEnd,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, wh)
}

var weekdayNames = map[string]time.Weekday{
	"domingo": time.Sunday,
	"segunda": time.Monday,
	"terca":   time.Tuesday,
	"terça":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sabado":  time.Saturday,
	"sábado":  time.Saturday,
}

// parseWeekday aceita 0-6 (domingo=0), o nome em português ou em inglês.
func parseWeekday(raw string) (time.Weekday, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))

	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 || n > 6 {
			return 0, false
		}
		return time.Weekday(n), true
	}

	if d, ok := weekdayNames[raw]; ok {
		return d, true
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == raw {
			return d, true
		}
	}
	return 0, false
}
