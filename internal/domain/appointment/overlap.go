package appointment

import "time"

// Overlaps compara intervalos semiabertos [s1,e1) e [s2,e2).
// Encostar nas pontas não é conflito.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}
