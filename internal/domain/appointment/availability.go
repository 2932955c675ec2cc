package appointment

import "time"

type AvailabilityInput struct {
	DentistID uint
	Date      time.Time
}

type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
