package booking

import (
	"strconv"
	"time"
)

// DayCell is one cell of the 7-column month grid. Blank cells pad the first
// week so day 1 falls on its weekday.
type DayCell struct {
	Day      int  `json:"day"` // 0 for padding cells
	Blank    bool `json:"blank"`
	Disabled bool `json:"disabled"`
	Today    bool `json:"today"`
	Selected bool `json:"selected"`
}

// MonthGrid is the rendered calendar for one displayed month.
type MonthGrid struct {
	Year  int       `json:"year"`
	Month int       `json:"month"` // 1..12
	Label string    `json:"label"` // e.g. "January 2026"
	Cells []DayCell `json:"cells"`
}

// firstWeekday returns the weekday index (Sunday=0) of the first of the month.
func firstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// midnight truncates a time to its calendar date.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RenderMonth produces the month grid: leading blanks for days before the
// first weekday, then one cell per day. Days strictly before today are
// disabled (same-day booking is allowed). The selected date is highlighted
// only when the rendered month contains it; the selection itself is a date,
// not a grid coordinate, so it survives navigation to another month.
func RenderMonth(year, month int, today time.Time, selected *time.Time) MonthGrid {
	grid := MonthGrid{
		Year:  year,
		Month: month,
		Label: time.Month(month).String() + " " + strconv.Itoa(year),
	}

	lead := firstWeekday(year, month)
	for i := 0; i < lead; i++ {
		grid.Cells = append(grid.Cells, DayCell{Blank: true})
	}

	todayDate := midnight(today)
	for day := 1; day <= daysInMonth(year, month); day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
		cell := DayCell{
			Day:      day,
			Disabled: date.Before(todayDate),
			Today:    date.Equal(todayDate),
		}
		if selected != nil {
			sel := midnight(*selected)
			cell.Selected = date.Equal(sel)
		}
		grid.Cells = append(grid.Cells, cell)
	}

	return grid
}

// NavigateMonth advances (direction > 0) or retreats (direction < 0) the
// displayed month by one, wrapping December to January with a year increment
// and January to December with a decrement. There is no navigation limit in
// either direction.
func NavigateMonth(year, month, direction int) (int, int) {
	if direction >= 0 {
		month++
		if month > 12 {
			month = 1
			year++
		}
	} else {
		month--
		if month < 1 {
			month = 12
			year--
		}
	}
	return year, month
}
