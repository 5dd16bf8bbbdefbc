package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted} {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, AppointmentStatus("parked").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestBeforeCreateDefaultsStatus(t *testing.T) {
	a := Appointment{}
	require.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, StatusPending, a.Status)

	a = Appointment{Status: StatusConfirmed}
	require.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, StatusConfirmed, a.Status)
}

func TestStartsAt(t *testing.T) {
	a := Appointment{Date: "2026-09-01", Time: "14:30"}
	ts, err := a.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	a = Appointment{Date: "not-a-date", Time: "14:30"}
	_, err = a.StartsAt()
	assert.Error(t, err)
}
