package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

func mondayHours() *models.WorkingHours {
	return &models.WorkingHours{
		DentistID:      1,
		Weekday:        int(time.Monday),
		MorningStart:   "09:00",
		MorningEnd:     "12:00",
		AfternoonStart: "14:00",
		AfternoonEnd:   "18:00",
		Active:         true,
	}
}

// 2026-03-09 é uma segunda-feira.
func monday(h, m int) time.Time {
	return time.Date(2026, 3, 9, h, m, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, Clock(14*60+30), c)
	assert.Equal(t, "14:30", c.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestIsWithinWorkingHours(t *testing.T) {
	wh := mondayHours()

	assert.True(t, IsWithinWorkingHours(wh, monday(9, 0)))
	assert.True(t, IsWithinWorkingHours(wh, monday(11, 59)))
	assert.False(t, IsWithinWorkingHours(wh, monday(12, 0)), "range end is exclusive")
	assert.False(t, IsWithinWorkingHours(wh, monday(13, 0)))
	assert.True(t, IsWithinWorkingHours(wh, monday(14, 0)))
	assert.False(t, IsWithinWorkingHours(wh, monday(8, 59)))
	assert.False(t, IsWithinWorkingHours(wh, monday(18, 0)))

	assert.False(t, IsWithinWorkingHours(wh, monday(10, 0).AddDate(0, 0, 1)), "other weekday")
	assert.False(t, IsWithinWorkingHours(nil, monday(10, 0)))

	wh.Active = false
	assert.False(t, IsWithinWorkingHours(wh, monday(10, 0)))
}

func TestIsWithinWorkingHours_MorningOnly(t *testing.T) {
	wh := &models.WorkingHours{
		Weekday:      int(time.Monday),
		MorningStart: "08:00",
		MorningEnd:   "12:00",
		Active:       true,
	}

	assert.True(t, IsWithinWorkingHours(wh, monday(8, 0)))
	assert.False(t, IsWithinWorkingHours(wh, monday(15, 0)))
}

func TestValidateWorkingHours(t *testing.T) {
	assert.NoError(t, ValidateWorkingHours(mondayHours()))

	tests := []struct {
		name string
		edit func(*models.WorkingHours)
	}{
		{"active without shifts", func(wh *models.WorkingHours) {
			wh.MorningStart, wh.MorningEnd, wh.AfternoonStart, wh.AfternoonEnd = "", "", "", ""
		}},
		{"start after end", func(wh *models.WorkingHours) { wh.MorningStart = "12:30" }},
		{"start equals end", func(wh *models.WorkingHours) { wh.AfternoonEnd = "14:00" }},
		{"half range", func(wh *models.WorkingHours) { wh.MorningEnd = "" }},
		{"bad clock", func(wh *models.WorkingHours) { wh.MorningStart = "9h" }},
		{"bad weekday", func(wh *models.WorkingHours) { wh.Weekday = 7 }},
		{"afternoon overlaps morning", func(wh *models.WorkingHours) { wh.AfternoonStart = "11:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wh := mondayHours()
			tt.edit(wh)
			assert.ErrorIs(t, ValidateWorkingHours(wh), ErrInvalidWorkingHours)
		})
	}

	inactive := &models.WorkingHours{Weekday: int(time.Sunday), Active: false}
	assert.NoError(t, ValidateWorkingHours(inactive))
}

func TestDefaultWeek(t *testing.T) {
	week := DefaultWeek(7)
	require.Len(t, week, 7)

	seen := map[int]bool{}
	for _, wh := range week {
		assert.Equal(t, uint(7), wh.DentistID)
		assert.False(t, seen[wh.Weekday], "one interval per weekday")
		seen[wh.Weekday] = true
		assert.NoError(t, ValidateWorkingHours(&wh))
	}

	assert.False(t, week[6].Active)
	assert.Equal(t, int(time.Sunday), week[6].Weekday)
}
