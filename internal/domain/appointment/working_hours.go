package appointment

import (
	"fmt"
	"time"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/httperr"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

var ErrInvalidWorkingHours = httperr.ErrBusiness("invalid_working_hours")

const clockLayout = "15:04"

// Clock é um horário do dia em minutos desde 00:00.
type Clock int

func ParseClock(hm string) (Clock, error) {
	t, err := time.Parse(clockLayout, hm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", hm, err)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// On posiciona o horário no dia de day, no fuso de day.
func (c Clock) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), int(c)/60, int(c)%60, 0, 0, day.Location())
}

func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// Shift é um turno [Start, End).
type Shift struct {
	Start Clock
	End   Clock
}

func (s Shift) Contains(c Clock) bool {
	return c >= s.Start && c < s.End
}

// Shifts devolve os turnos presentes (manhã, depois tarde).
func Shifts(wh *models.WorkingHours) ([]Shift, error) {
	var out []Shift

	pairs := [][2]string{
		{wh.MorningStart, wh.MorningEnd},
		{wh.AfternoonStart, wh.AfternoonEnd},
	}
	for _, p := range pairs {
		if p[0] == "" && p[1] == "" {
			continue
		}
		if p[0] == "" || p[1] == "" {
			return nil, ErrInvalidWorkingHours
		}
		start, err := ParseClock(p[0])
		if err != nil {
			return nil, ErrInvalidWorkingHours
		}
		end, err := ParseClock(p[1])
		if err != nil {
			return nil, ErrInvalidWorkingHours
		}
		if start >= end {
			return nil, ErrInvalidWorkingHours
		}
		out = append(out, Shift{Start: start, End: end})
	}

	return out, nil
}

// ValidateWorkingHours garante: dia válido, turnos bem formados, e dia ativo
// com pelo menos um turno.
func ValidateWorkingHours(wh *models.WorkingHours) error {
	if wh.Weekday < 0 || wh.Weekday > 6 {
		return ErrInvalidWorkingHours
	}

	shifts, err := Shifts(wh)
	if err != nil {
		return err
	}

	if wh.Active && len(shifts) == 0 {
		return ErrInvalidWorkingHours
	}

	if len(shifts) == 2 && shifts[1].Start < shifts[0].End {
		return ErrInvalidWorkingHours
	}

	return nil
}

// IsWithinWorkingHours valida se o horário de início cai em algum turno
// ativo do dia. at deve estar no fuso da clínica.
func IsWithinWorkingHours(wh *models.WorkingHours, at time.Time) bool {
	if wh == nil || !wh.Active || wh.Weekday != int(at.Weekday()) {
		return false
	}

	shifts, err := Shifts(wh)
	if err != nil {
		return false
	}

	c := ClockOf(at)
	for _, s := range shifts {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

// DefaultWeek é o expediente padrão de um dentista recém-cadastrado:
// seg a sex 09:00-12:00 e 14:00-18:00, sábado 08:00-12:00.
func DefaultWeek(dentistID uint) []models.WorkingHours {
	week := make([]models.WorkingHours, 0, 7)

	for d := time.Monday; d <= time.Friday; d++ {
		week = append(week, models.WorkingHours{
			DentistID:      dentistID,
			Weekday:        int(d),
			MorningStart:   "09:00",
			MorningEnd:     "12:00",
			AfternoonStart: "14:00",
			AfternoonEnd:   "18:00",
			Active:         true,
		})
	}

	week = append(week,
		models.WorkingHours{
			DentistID:    dentistID,
			Weekday:      int(time.Saturday),
			MorningStart: "08:00",
			MorningEnd:   "12:00",
			Active:       true,
		},
		models.WorkingHours{
			DentistID: dentistID,
			Weekday:   int(time.Sunday),
			Active:    false,
		},
	)

	return week
}
