package domain

import (
	"fmt"
	"time"
)

// Review weeks are anchored on Thursday: every window starts on a Thursday and
// spans 7 days, inclusive of the start and exclusive of the end.
const anchorWeekday = time.Thursday

// Window is one review week.
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekWindow returns the review week containing d.
func WeekWindow(d time.Time) Window {
	offset := (int(d.Weekday()) - int(anchorWeekday) + 7) % 7
	start := time.Date(d.Year(), d.Month(), d.Day()-offset, 0, 0, 0, 0, d.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// Windows enumerates every review week from epoch through until, inclusive,
// stepping by 7 days.
func Windows(epoch, until time.Time) []Window {
	var windows []Window
	for d := epoch; !d.After(until); d = d.AddDate(0, 0, 7) {
		windows = append(windows, WeekWindow(d))
	}
	return windows
}

// PageTitle derives the worksheet title for this window, e.g.
// "Reviewed - May 3 - May 10".
func (w Window) PageTitle(prefix string) string {
	return fmt.Sprintf("%s - %s - %s", prefix, w.Start.Format("Jan 2"), w.End.Format("Jan 2"))
}

func (w Window) String() string {
	return fmt.Sprintf("%s/%s", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}
