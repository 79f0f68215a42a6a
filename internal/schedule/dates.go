package schedule

import "time"

// SameDay reports whether two instants fall on the same calendar day in
// their own locations. Time of day is ignored.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func IsToday(d time.Time) bool {
	return IsTodayAt(d, time.Now())
}

func IsTodayAt(d, now time.Time) bool {
	return SameDay(d, now)
}

func IsTomorrow(d time.Time) bool {
	return IsTomorrowAt(d, time.Now())
}

func IsTomorrowAt(d, now time.Time) bool {
	return SameDay(d, now.AddDate(0, 0, 1))
}

func IsThisWeekend(d time.Time) bool {
	return IsThisWeekendAt(d, time.Now())
}

// IsThisWeekendAt reports whether d falls inside the weekend window
// [Friday 00:00:00, Sunday 23:59:59.999] anchored to now. On Saturday
// the window's Friday is yesterday, on Sunday it is two days back,
// otherwise it is the next Friday (today included when now is Friday).
func IsThisWeekendAt(d, now time.Time) bool {
	var friday time.Time
	switch now.Weekday() {
	case time.Sunday:
		friday = now.AddDate(0, 0, -2)
	case time.Saturday:
		friday = now.AddDate(0, 0, -1)
	default:
		friday = now.AddDate(0, 0, int(time.Friday-now.Weekday()))
	}

	start := StartOfDay(friday)
	sunday := start.AddDate(0, 0, 2)
	end := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 999000000, sunday.Location())

	return !d.Before(start) && !d.After(end)
}

// StartOfDay truncates an instant to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDate renders a short weekday + month + day, e.g. "Thu, Jul 4".
func FormatDate(d time.Time) string {
	return d.Format("Mon, Jan 2")
}

// FormatTime renders hour:minute with an AM/PM marker, e.g. "8:00 PM".
func FormatTime(d time.Time) string {
	return d.Format("3:04 PM")
}

// DateBadge picks the quick-filter badge label for a date, checked in
// priority order: today beats tomorrow beats weekend. Empty string when
// none apply.
func DateBadge(d time.Time) string {
	return DateBadgeAt(d, time.Now())
}

func DateBadgeAt(d, now time.Time) string {
	switch {
	case IsTodayAt(d, now):
		return "Today"
	case IsTomorrowAt(d, now):
		return "Tomorrow"
	case IsThisWeekendAt(d, now):
		return "This Weekend"
	default:
		return ""
	}
}
