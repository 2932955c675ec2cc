package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
)

const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

func parseDate(loc *time.Location, s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, loc)
}

// parseDateTime aceita RFC3339 ou data/hora local da clínica.
func parseDateTime(loc *time.Location, s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}

	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parsePeriod lê ?inicio=&fim= como datas/horas; só data vale o dia inteiro
// no fim.
func parsePeriod(c *gin.Context, loc *time.Location) (time.Time, time.Time, bool) {
	startRaw, endRaw := c.Query("inicio"), c.Query("fim")
	if startRaw == "" || endRaw == "" {
		httperr.BadRequest(c, "missing_period", "Informe início e fim.")
		return time.Time{}, time.Time{}, false
	}

	start, err := parseDateTime(loc, startRaw)
	if err != nil {
		if start, err = parseDate(loc, startRaw); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data de início inválida.")
			return time.Time{}, time.Time{}, false
		}
	}

	end, err := parseDateTime(loc, endRaw)
	if err != nil {
		day, derr := parseDate(loc, endRaw)
		if derr != nil {
			httperr.BadRequest(c, "invalid_date", "Data de fim inválida.")
			return time.Time{}, time.Time{}, false
		}
		end = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return start, end, true
}

func pathDate(c *gin.Context, loc *time.Location, name string) (time.Time, bool) {
	day, err := parseDate(loc, c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return time.Time{}, false
	}
	return day, true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}
