package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekWindow_StartsOnThursday(t *testing.T) {
	// One date per weekday.
	for d := 0; d < 7; d++ {
		day := date(2018, time.May, 3+d)
		w := WeekWindow(day)

		assert.Equal(t, time.Thursday, w.Start.Weekday(), "window start for %s", day)
		assert.Equal(t, w.Start.AddDate(0, 0, 7), w.End)
		assert.False(t, day.Before(w.Start), "start <= d for %s", day)
		assert.True(t, day.Before(w.End), "d < end for %s", day)
	}
}

func TestWeekWindow_Stable(t *testing.T) {
	day := date(2018, time.May, 7)
	assert.Equal(t, WeekWindow(day), WeekWindow(day))
}

func TestWeekWindow_OnAnchorDay(t *testing.T) {
	// A Thursday is its own window start.
	w := WeekWindow(date(2018, time.May, 3))
	assert.Equal(t, date(2018, time.May, 3), w.Start)
	assert.Equal(t, date(2018, time.May, 10), w.End)
}

func TestWindows_EpochToToday(t *testing.T) {
	windows := Windows(date(2018, time.May, 3), date(2018, time.May, 17))

	require.Len(t, windows, 3)
	assert.Equal(t, date(2018, time.May, 3), windows[0].Start)
	assert.Equal(t, date(2018, time.May, 10), windows[1].Start)
	assert.Equal(t, date(2018, time.May, 17), windows[2].Start)
}

func TestWindows_UntilBeforeEpoch(t *testing.T) {
	assert.Empty(t, Windows(date(2018, time.May, 3), date(2018, time.May, 2)))
}

func TestWindow_PageTitle(t *testing.T) {
	w := WeekWindow(date(2018, time.May, 5))

	assert.Equal(t, "Reviewed - May 3 - May 10", w.PageTitle("Reviewed"))
	assert.Equal(t, "Unreviewed - May 3 - May 10", w.PageTitle("Unreviewed"))
}
