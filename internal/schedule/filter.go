package schedule

import (
	"sort"
	"strings"
	"time"

	"gigboard/internal/models"
)

// Quick-filter buckets.
const (
	QuickToday    = "today"
	QuickTomorrow = "tomorrow"
	QuickWeekend  = "weekend"
	QuickAll      = "all"
)

// Active views.
const (
	ViewList     = "list"
	ViewCalendar = "calendar"
)

// FilterState is one immutable snapshot of every active filter. Facet
// selections OR within a slice and AND across the three slices.
type FilterState struct {
	Quick        string
	View         string
	Search       string
	Venues       []string
	Genres       []string
	Vibes        []string
	CalendarDate *time.Time
}

// Filter narrows events through the temporal, search and facet stages
// in that fixed order. Pure: the input slice is never mutated.
func Filter(events []models.Event, state FilterState) []models.Event {
	return FilterAt(events, state, time.Now())
}

func FilterAt(events []models.Event, state FilterState, now time.Time) []models.Event {
	filtered := events

	// Temporal stage. In calendar view an explicit date wins; the quick
	// filter only applies to the list view.
	if state.View == ViewCalendar {
		if state.CalendarDate != nil {
			selected := *state.CalendarDate
			filtered = keep(filtered, func(e models.Event) bool {
				return SameDay(e.EventDate, selected)
			})
		}
	} else {
		switch state.Quick {
		case QuickToday:
			filtered = keep(filtered, func(e models.Event) bool {
				return IsTodayAt(e.EventDate, now)
			})
		case QuickTomorrow:
			filtered = keep(filtered, func(e models.Event) bool {
				return IsTomorrowAt(e.EventDate, now)
			})
		case QuickWeekend:
			filtered = keep(filtered, func(e models.Event) bool {
				return IsThisWeekendAt(e.EventDate, now)
			})
		}
	}

	// Search stage: case-insensitive substring over artist, venue,
	// genre and bio.
	if state.Search != "" {
		s := strings.ToLower(state.Search)
		filtered = keep(filtered, func(e models.Event) bool {
			return strings.Contains(strings.ToLower(e.ArtistName), s) ||
				strings.Contains(strings.ToLower(e.ResolvedVenueName()), s) ||
				strings.Contains(strings.ToLower(e.Genre), s) ||
				strings.Contains(strings.ToLower(e.ArtistBio), s)
		})
	}

	// Facet stage.
	if len(state.Venues) > 0 {
		filtered = keep(filtered, func(e models.Event) bool {
			return contains(state.Venues, e.ResolvedVenueName())
		})
	}
	if len(state.Genres) > 0 {
		filtered = keep(filtered, func(e models.Event) bool {
			return contains(state.Genres, e.Genre)
		})
	}
	if len(state.Vibes) > 0 {
		filtered = keep(filtered, func(e models.Event) bool {
			return contains(state.Vibes, e.Vibe)
		})
	}

	return filtered
}

// DayGroup is one calendar day of the list view.
type DayGroup struct {
	Date   time.Time      `json:"date"`
	Events []models.Event `json:"events"`
}

// GroupByDay buckets events by local calendar day, keeping arrival
// order within a day, and returns the groups ascending by date.
func GroupByDay(events []models.Event) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, ev := range events {
		key := ev.EventDate.Format("2006-01-02")
		if i, ok := index[key]; ok {
			groups[i].Events = append(groups[i].Events, ev)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, DayGroup{
			Date:   StartOfDay(ev.EventDate),
			Events: []models.Event{ev},
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}

func keep(events []models.Event, pred func(models.Event) bool) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
