package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localDate(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestSameDay(t *testing.T) {
	a := localDate(2024, time.July, 4, 9, 0)
	b := localDate(2024, time.July, 4, 23, 30)
	c := localDate(2024, time.July, 5, 0, 0)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestIsTodayAndTomorrow(t *testing.T) {
	now := localDate(2024, time.July, 3, 14, 0)

	assert.True(t, IsTodayAt(localDate(2024, time.July, 3, 20, 0), now))
	assert.False(t, IsTodayAt(localDate(2024, time.July, 4, 20, 0), now))

	assert.True(t, IsTomorrowAt(localDate(2024, time.July, 4, 20, 0), now))
	assert.False(t, IsTomorrowAt(localDate(2024, time.July, 3, 20, 0), now))
	assert.False(t, IsTomorrowAt(localDate(2024, time.July, 5, 20, 0), now))
}

func TestIsThisWeekendFromMidweek(t *testing.T) {
	// Wednesday July 3rd: the window is Friday the 5th through Sunday
	// the 7th.
	now := localDate(2024, time.July, 3, 10, 0)

	assert.True(t, IsThisWeekendAt(localDate(2024, time.July, 5, 0, 0), now), "Friday midnight is in")
	assert.True(t, IsThisWeekendAt(localDate(2024, time.July, 6, 21, 0), now))
	assert.True(t, IsThisWeekendAt(localDate(2024, time.July, 7, 23, 59), now))
	assert.False(t, IsThisWeekendAt(localDate(2024, time.July, 8, 0, 0), now), "Monday midnight is out")
	assert.False(t, IsThisWeekendAt(localDate(2024, time.July, 4, 23, 0), now), "Thursday night is out")
}

func TestIsThisWeekendAnchors(t *testing.T) {
	friday := localDate(2024, time.July, 6, 20, 0) // Saturday show

	// On Saturday the window's Friday is yesterday.
	assert.True(t, IsThisWeekendAt(friday, localDate(2024, time.July, 6, 9, 0)))
	// On Sunday the window's Friday is two days back.
	assert.True(t, IsThisWeekendAt(friday, localDate(2024, time.July, 7, 9, 0)))
	// On Friday the window starts today.
	assert.True(t, IsThisWeekendAt(localDate(2024, time.July, 5, 20, 0), localDate(2024, time.July, 5, 9, 0)))
	// The following weekend is not this weekend.
	assert.False(t, IsThisWeekendAt(localDate(2024, time.July, 13, 20, 0), localDate(2024, time.July, 3, 9, 0)))
}

func TestDateBadgePriority(t *testing.T) {
	// Friday: today is also inside the weekend window, but the badge
	// checks today first.
	now := localDate(2024, time.July, 5, 9, 0)

	assert.Equal(t, "Today", DateBadgeAt(localDate(2024, time.July, 5, 20, 0), now))
	assert.Equal(t, "Tomorrow", DateBadgeAt(localDate(2024, time.July, 6, 20, 0), now))
	assert.Equal(t, "This Weekend", DateBadgeAt(localDate(2024, time.July, 7, 20, 0), now))
	assert.Equal(t, "", DateBadgeAt(localDate(2024, time.July, 9, 20, 0), now))
}

func TestFormatters(t *testing.T) {
	d := localDate(2024, time.July, 4, 20, 0)

	assert.Equal(t, "Thu, Jul 4", FormatDate(d))
	assert.Equal(t, "8:00 PM", FormatTime(d))
	assert.Equal(t, "9:05 AM", FormatTime(localDate(2024, time.July, 4, 9, 5)))
}

func TestStartOfDay(t *testing.T) {
	d := localDate(2024, time.July, 4, 20, 45)
	midnight := StartOfDay(d)

	assert.Equal(t, localDate(2024, time.July, 4, 0, 0), midnight)
	assert.True(t, SameDay(d, midnight))
}
