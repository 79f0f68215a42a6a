package schedule

import (
	"time"

	"gigboard/internal/models"
	"gigboard/internal/venues"
)

// MaxDots caps the per-day color dots shown on a calendar cell. Events
// past the cap stay in the underlying data, they just get no dot.
const MaxDots = 5

// Cell is one day square of the month grid.
type Cell struct {
	Day        int       `json:"day"`
	Date       time.Time `json:"date"`
	OtherMonth bool      `json:"other_month"`
	Today      bool      `json:"today"`
	Selected   bool      `json:"selected"`
	Dots       []string  `json:"dots,omitempty"`
}

// BuildMonth produces the Sunday-first grid for a month: leading cells
// from the previous month up to the weekday of the 1st, one cell per
// day of the month, then trailing cells padding to a multiple of 7 only
// when the count is not already one.
func BuildMonth(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lead := int(first.Weekday())
	daysIn := daysInMonth(year, month)
	prevLast := first.AddDate(0, 0, -1).Day()

	cells := make([]Cell, 0, 42)
	for i := 0; i < lead; i++ {
		d := prevLast - lead + i + 1
		cells = append(cells, Cell{
			Day:        d,
			Date:       time.Date(year, month-1, d, 0, 0, 0, 0, time.Local),
			OtherMonth: true,
		})
	}
	for d := 1; d <= daysIn; d++ {
		cells = append(cells, Cell{
			Day:  d,
			Date: time.Date(year, month, d, 0, 0, 0, 0, time.Local),
		})
	}
	if rem := len(cells) % 7; rem != 0 {
		for d := 1; d <= 7-rem; d++ {
			cells = append(cells, Cell{
				Day:        d,
				Date:       time.Date(year, month+1, d, 0, 0, 0, 0, time.Local),
				OtherMonth: true,
			})
		}
	}
	return cells
}

// AttachDots colors each cell with up to MaxDots dots, one per event on
// that day, using the event's venue color.
func AttachDots(cells []Cell, events []models.Event) {
	for i := range cells {
		for _, ev := range events {
			if !SameDay(ev.EventDate, cells[i].Date) {
				continue
			}
			if len(cells[i].Dots) >= MaxDots {
				break
			}
			cells[i].Dots = append(cells[i].Dots, dotColor(ev))
		}
	}
}

// Mark sets the presentation flags against the grid without changing
// its structure.
func Mark(cells []Cell, now time.Time, selected *time.Time) {
	for i := range cells {
		cells[i].Today = SameDay(cells[i].Date, now)
		cells[i].Selected = selected != nil && SameDay(cells[i].Date, *selected)
	}
}

// MonthAdd moves a target month by delta months, normalizing across
// year boundaries.
func MonthAdd(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dotColor(ev models.Event) string {
	if ev.Venue != nil && ev.Venue.Color != "" {
		return ev.Venue.Color
	}
	return venues.Color(ev.ResolvedVenueName())
}
