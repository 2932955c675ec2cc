package appointment

import (
	"iter"
	"time"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

// Slots gera os inícios candidatos do dia: primeiro a manhã, depois a tarde.
// Um slot só sai se couber inteiro no turno. A sequência é recalculada a
// cada iteração.
func Slots(day time.Time, wh *models.WorkingHours, slot time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if wh == nil || !wh.Active || slot <= 0 {
			return
		}

		shifts, err := Shifts(wh)
		if err != nil {
			return
		}

		for _, s := range shifts {
			shiftEnd := s.End.On(day)
			for cur := s.Start.On(day); !cur.Add(slot).After(shiftEnd); cur = cur.Add(slot) {
				if !yield(cur) {
					return
				}
			}
		}
	}
}
