package calendar

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Cursor is the only navigation state of the calendar view.
type Cursor struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: int(t.Month())}
}

// Normalize folds out-of-range months into the neighbouring years, so
// {2026, 13} becomes {2027, 1} and {2026, 0} becomes {2025, 12}.
func (c Cursor) Normalize() Cursor {
	return CursorFor(c.FirstDay())
}

func (c Cursor) Next() Cursor {
	return Cursor{Year: c.Year, Month: c.Month + 1}.Normalize()
}

func (c Cursor) Prev() Cursor {
	return Cursor{Year: c.Year, Month: c.Month - 1}.Normalize()
}

// FirstDay is midnight UTC of the first day of the month. Grid arithmetic is
// done on UTC civil dates so daylight saving never skips or repeats a day.
func (c Cursor) FirstDay() time.Time {
	return time.Date(c.Year, time.Month(c.Month), 1, 0, 0, 0, 0, time.UTC)
}

func (c Cursor) Title() string {
	n := c.Normalize()
	return fmt.Sprintf("%s %d", monthNames[n.Month-1], n.Year)
}

// Contains reports whether a YYYY-MM-DD date string falls in the month.
func (c Cursor) Contains(date string) bool {
	n := c.Normalize()
	return len(date) >= 7 && date[:7] == fmt.Sprintf("%04d-%02d", n.Year, n.Month)
}
