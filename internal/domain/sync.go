package domain

import "time"

// WeekBatch is the outcome of fetching and normalizing one weekly page.
type WeekBatch struct {
	Window        Window
	Contributions []Contribution
	RowErrors     int   // rows that failed to normalize, already logged
	Err           error // page-level failure; nil when the page was read (or absent)
}

// RunSummary aggregates per-task outcomes of one sync run. Individual task
// failures never abort the run; they are counted here instead.
type RunSummary struct {
	Fetched       int
	New           int
	Updated       int
	Published     int
	RowErrors     int
	WeekErrors    int
	StoreErrors   int
	PublishErrors int
	Duration      time.Duration
}

// Failed reports whether at least one task in the run failed.
func (r *RunSummary) Failed() bool {
	return r.RowErrors > 0 || r.WeekErrors > 0 || r.StoreErrors > 0 || r.PublishErrors > 0
}
