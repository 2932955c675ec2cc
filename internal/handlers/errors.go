package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/middleware"
)

type businessResponse struct {
	status  int
	message string
}

var businessResponses = map[string]businessResponse{
	"patient_not_found":     {http.StatusNotFound, "Paciente não encontrado."},
	"dentist_not_found":     {http.StatusNotFound, "Dentista não encontrado."},
	"appointment_not_found": {http.StatusNotFound, "Agendamento não encontrado."},

	"time_conflict":                   {http.StatusConflict, "Já existe um agendamento neste horário."},
	"inactive_dentist":                {http.StatusConflict, "Dentista inativo."},
	"invalid_state":                   {http.StatusConflict, "Agendamento finalizado não pode mudar de status."},
	"patient_has_future_appointments": {http.StatusConflict, "Paciente possui agendamentos futuros."},
	"dentist_has_future_appointments": {http.StatusConflict, "Dentista possui agendamentos futuros."},
	"patient_has_appointments":        {http.StatusConflict, "Paciente possui histórico de agendamentos."},
	"dentist_has_appointments":        {http.StatusConflict, "Dentista possui histórico de agendamentos."},
	"duplicate_record":                {http.StatusConflict, "Registro já cadastrado."},

	"too_soon":              {http.StatusUnprocessableEntity, "Agendamento exige antecedência mínima."},
	"outside_working_hours": {http.StatusUnprocessableEntity, "Fora do horário de atendimento."},
	"invalid_period":        {http.StatusUnprocessableEntity, "Período inválido."},
	"invalid_working_hours": {http.StatusUnprocessableEntity, "Horário de atendimento inválido."},
	"invalid_status":        {http.StatusUnprocessableEntity, "Status inválido."},
}

// respondError traduz erros de negócio em status HTTP; o resto vira 500.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if resp, known := businessResponses[code]; known {
			httperr.Write(c, resp.status, code, resp.message)
			return
		}
		httperr.Unprocessable(c, code, "Operação não permitida.")
		return
	}

	if httperr.IsExclusionConflict(err) {
		resp := businessResponses["time_conflict"]
		httperr.Write(c, resp.status, "time_conflict", resp.message)
		return
	}

	log.WithError(err).
		WithField("request_id", c.GetString(middleware.ContextRequestID)).
		WithField("path", c.FullPath()).
		Error("request failed")
	httperr.Internal(c, "internal_error", "Erro interno.")
}
