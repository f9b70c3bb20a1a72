package calendar

import "time"

const (
	Weeks     = 6
	DaysWeek  = 7
	CellCount = Weeks * DaysWeek

	dateLayout = "2006-01-02"
)

type Cell[A any] struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	Weekday      int    `json:"weekday"`
	InMonth      bool   `json:"in_month"`
	OtherMonth   bool   `json:"other_month"`
	IsToday      bool   `json:"is_today"`
	Appointments []A    `json:"appointments"`
}

type Grid[A any] struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Title string    `json:"title"`
	Prev  Cursor    `json:"prev"`
	Next  Cursor    `json:"next"`
	Cells []Cell[A] `json:"cells"`
}

// BuildGrid lays the month out as 6 Sunday-first weeks. The first cell is the
// last Sunday on or before the 1st; items are attached to the cell whose date
// string equals dateOf(item). Items outside the 42-day window are dropped.
func BuildGrid[A any](cur Cursor, today time.Time, items []A, dateOf func(A) string) Grid[A] {
	cur = cur.Normalize()

	first := cur.FirstDay()
	start := first.AddDate(0, 0, -int(first.Weekday()))
	todayKey := today.Format(dateLayout)

	byDate := make(map[string][]A, len(items))
	for _, it := range items {
		d := dateOf(it)
		byDate[d] = append(byDate[d], it)
	}

	cells := make([]Cell[A], CellCount)
	for i := range cells {
		day := start.AddDate(0, 0, i)
		key := day.Format(dateLayout)
		inMonth := int(day.Month()) == cur.Month && day.Year() == cur.Year

		apps := byDate[key]
		if apps == nil {
			apps = []A{}
		}

		cells[i] = Cell[A]{
			Date:         key,
			Day:          day.Day(),
			Weekday:      int(day.Weekday()),
			InMonth:      inMonth,
			OtherMonth:   !inMonth,
			IsToday:      key == todayKey,
			Appointments: apps,
		}
	}

	return Grid[A]{
		Year:  cur.Year,
		Month: cur.Month,
		Title: cur.Title(),
		Prev:  cur.Prev(),
		Next:  cur.Next(),
		Cells: cells,
	}
}
