package booking

import (
	"testing"
	"time"

	"urbanease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

func freshSession() *models.BookingSession {
	return &models.BookingSession{
		SessionID:  "bs-1",
		Year:       2025,
		Month:      6,
		ServiceKey: DefaultServiceKey,
	}
}

func TestSelectDay_ReplacesPreviousSelection(t *testing.T) {
	session := freshSession()
	require.NoError(t, SelectDay(session, 2025, 6, 15, testNow))
	require.NoError(t, SelectDay(session, 2025, 6, 20, testNow))

	require.NotNil(t, session.SelectedDate)
	assert.Equal(t, 20, session.SelectedDate.Day())
}

func TestSelectDay_RejectsPastAllowsToday(t *testing.T) {
	session := freshSession()

	err := SelectDay(session, 2025, 6, 9, testNow)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Nil(t, session.SelectedDate)

	require.NoError(t, SelectDay(session, 2025, 6, 10, testNow))
	assert.Equal(t, 10, session.SelectedDate.Day())
}

func TestSelectTimeSlot(t *testing.T) {
	session := freshSession()
	require.NoError(t, SelectTimeSlot(session, "10:00 AM"))
	assert.Equal(t, "10:00 AM", session.SelectedTime)

	require.NoError(t, SelectTimeSlot(session, "02:00 PM"))
	assert.Equal(t, "02:00 PM", session.SelectedTime)

	err := SelectTimeSlot(session, "10:30 AM")
	require.Error(t, err)
	assert.Equal(t, "02:00 PM", session.SelectedTime)
}

func TestSelectService(t *testing.T) {
	session := freshSession()
	require.NoError(t, SelectService(session, "water-heater"))
	assert.Equal(t, "water-heater", session.ServiceKey)

	err := SelectService(session, "roofing")
	require.Error(t, err)
	assert.Equal(t, "water-heater", session.ServiceKey)
}

func TestComputeSummary_ConfirmGate(t *testing.T) {
	session := freshSession()

	summary := ComputeSummary(*session)
	assert.False(t, summary.CanConfirm)
	assert.Equal(t, "Pipe Repair & Replacement", summary.ServiceName)
	assert.Equal(t, float64(50), summary.TotalMin)
	assert.Equal(t, float64(100), summary.TotalMax)
	assert.Empty(t, summary.DateLabel)

	require.NoError(t, SelectDay(session, 2025, 6, 15, testNow))
	summary = ComputeSummary(*session)
	assert.False(t, summary.CanConfirm, "date alone is not enough")
	assert.Equal(t, "Sunday, June 15, 2025", summary.DateLabel)

	require.NoError(t, SelectTimeSlot(session, "10:00 AM"))
	summary = ComputeSummary(*session)
	assert.True(t, summary.CanConfirm)
	assert.Equal(t, "10:00 AM", summary.TimeLabel)
}

func TestComputeSummary_EstimateTracksService(t *testing.T) {
	session := freshSession()
	require.NoError(t, SelectService(session, "water-heater"))

	summary := ComputeSummary(*session)
	assert.Equal(t, float64(80), summary.Rate)
	assert.Equal(t, float64(80), summary.TotalMin)
	assert.Equal(t, float64(160), summary.TotalMax)
}

func TestNavigate_KeepsSelectionAcrossMonths(t *testing.T) {
	session := freshSession()
	require.NoError(t, SelectDay(session, 2025, 6, 15, testNow))

	Navigate(session, 1)
	assert.Equal(t, 7, session.Month)
	grid := RenderSessionMonth(*session, testNow)
	for _, cell := range grid.Cells {
		assert.False(t, cell.Selected)
	}

	Navigate(session, -1)
	assert.Equal(t, 6, session.Month)
	grid = RenderSessionMonth(*session, testNow)
	found := false
	for _, cell := range grid.Cells {
		if cell.Selected {
			assert.Equal(t, 15, cell.Day)
			found = true
		}
	}
	assert.True(t, found, "selection highlight must return with its month")
}
