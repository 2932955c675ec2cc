package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestDayRange(t *testing.T) {
	loc := time.UTC
	at := time.Date(2026, 3, 9, 15, 42, 0, 0, loc)

	start, end := DayRange(at, loc)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), end)
}
