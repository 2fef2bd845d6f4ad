package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMonth_LeadingBlanks(t *testing.T) {
	// June 2025 starts on a Sunday: no padding cells.
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	grid := RenderMonth(2025, 6, today, nil)
	assert.Equal(t, "June 2025", grid.Label)
	require.Len(t, grid.Cells, 30)
	assert.False(t, grid.Cells[0].Blank)
	assert.Equal(t, 1, grid.Cells[0].Day)

	// July 2025 starts on a Tuesday: two padding cells.
	grid = RenderMonth(2025, 7, today, nil)
	require.Len(t, grid.Cells, 2+31)
	assert.True(t, grid.Cells[0].Blank)
	assert.True(t, grid.Cells[1].Blank)
	assert.Equal(t, 1, grid.Cells[2].Day)
}

func TestRenderMonth_PastDaysDisabledSameDayAllowed(t *testing.T) {
	today := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	grid := RenderMonth(2025, 6, today, nil)

	for _, cell := range grid.Cells {
		switch {
		case cell.Day < 10:
			assert.True(t, cell.Disabled, "day %d should be disabled", cell.Day)
		case cell.Day == 10:
			assert.False(t, cell.Disabled, "same day must stay bookable")
			assert.True(t, cell.Today)
		default:
			assert.False(t, cell.Disabled, "day %d should be enabled", cell.Day)
		}
	}
}

func TestRenderMonth_SelectionHighlightOnlyInItsMonth(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	selected := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	grid := RenderMonth(2025, 6, today, &selected)
	var highlighted []int
	for _, cell := range grid.Cells {
		if cell.Selected {
			highlighted = append(highlighted, cell.Day)
		}
	}
	assert.Equal(t, []int{15}, highlighted)

	// Another month shows no highlight, but the selection is a date and
	// comes back when navigating to June again.
	grid = RenderMonth(2025, 7, today, &selected)
	for _, cell := range grid.Cells {
		assert.False(t, cell.Selected)
	}
}

func TestRenderMonth_FebruaryLeapYear(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	grid := RenderMonth(2024, 2, today, nil)

	days := 0
	for _, cell := range grid.Cells {
		if !cell.Blank {
			days++
		}
	}
	assert.Equal(t, 29, days)
}

func TestNavigateMonth_Wraps(t *testing.T) {
	year, month := NavigateMonth(2025, 12, 1)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 1, month)

	year, month = NavigateMonth(2026, 1, -1)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 12, month)

	year, month = NavigateMonth(2025, 6, 1)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 7, month)

	year, month = NavigateMonth(2025, 6, -1)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 5, month)
}

func TestNavigateMonth_NoLimit(t *testing.T) {
	year, month := 2025, 6
	for i := 0; i < 24; i++ {
		year, month = NavigateMonth(year, month, -1)
	}
	assert.Equal(t, 2023, year)
	assert.Equal(t, 6, month)
}
