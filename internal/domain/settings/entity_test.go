package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicableStart(t *testing.T) {
	s := DefaultShiftSettings()

	morning := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	start, err := s.ApplicableStart(morning)
	require.NoError(t, err)
	assert.Equal(t, 8, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, morning.Day(), start.Day())

	evening := time.Date(2025, 6, 2, 17, 15, 0, 0, time.UTC)
	start, err = s.ApplicableStart(evening)
	require.NoError(t, err)
	assert.Equal(t, 16, start.Hour())

	// The instant the afternoon shift begins it applies.
	boundary := time.Date(2025, 6, 2, 16, 0, 0, 0, time.UTC)
	start, err = s.ApplicableStart(boundary)
	require.NoError(t, err)
	assert.Equal(t, 16, start.Hour())
}

func TestApplicableStartInvalidWindow(t *testing.T) {
	s := ShiftSettings{
		Morning:   ShiftWindow{Start: "eight", End: "16:00"},
		Afternoon: ShiftWindow{Start: "16:00", End: "20:00"},
	}
	_, err := s.ApplicableStart(time.Now())
	assert.Error(t, err)
}

func TestGrace(t *testing.T) {
	s := ShiftSettings{GraceMinutes: 15}
	assert.Equal(t, 15*time.Minute, s.Grace())
	assert.Equal(t, time.Duration(0), ShiftSettings{}.Grace())
}

func TestDefaults(t *testing.T) {
	shifts := DefaultShiftSettings()
	assert.Equal(t, "08:00", shifts.Morning.Start)
	assert.Equal(t, "16:00", shifts.Afternoon.Start)
	assert.Equal(t, 0, shifts.GraceMinutes)

	company := DefaultCompanySettings()
	assert.Equal(t, "infinithree", company.Name)
	assert.Equal(t, []string{"Host", "Treatment", "Admin"}, company.Roles)
}
