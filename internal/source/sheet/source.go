// Package sheet reads week-sliced worksheets of the review spreadsheet and
// normalizes their rows into canonical contribution records.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"utopian_syncer/internal/domain"
	"utopian_syncer/internal/pool"
)

const (
	reviewedPrefix   = "Reviewed"
	unreviewedPrefix = "Unreviewed"
	bannedUsersPage  = "Banned users"
)

// ErrWorksheetNotFound is returned by a Worksheets implementation when no
// worksheet with the requested title exists. A missing weekly page yields zero
// records without failing the fetch.
var ErrWorksheetNotFound = errors.New("worksheet not found")

// Worksheets is the tabular-data capability: an ordered read of all rows of one
// titled page, each row an ordered slice of cell strings.
type Worksheets interface {
	Values(ctx context.Context, title string) ([][]string, error)
}

// ContentLookup resolves post metadata and votes by (author, permlink). It
// fails when the referenced content does not exist.
type ContentLookup interface {
	Fetch(ctx context.Context, author, permlink string) (*domain.PostContent, error)
}

type Config struct {
	Epoch   time.Time // first review week day
	Curator string    // account matched against the post's vote list
}

type Source struct {
	sheets  Worksheets
	content ContentLookup
	pool    *pool.Pool
	logger  *slog.Logger
	epoch   time.Time
	curator string
	now     func() time.Time
}

func New(sheets Worksheets, content ContentLookup, p *pool.Pool, logger *slog.Logger, cfg Config) *Source {
	return &Source{
		sheets:  sheets,
		content: content,
		pool:    p,
		logger:  logger.With("component", "sheet"),
		epoch:   cfg.Epoch,
		curator: cfg.Curator,
		now:     time.Now,
	}
}

// ReviewedWeek fetches and normalizes the reviewed page of the week containing
// day.
func (s *Source) ReviewedWeek(ctx context.Context, day time.Time) domain.WeekBatch {
	return s.fetchPage(ctx, domain.WeekWindow(day), reviewedPrefix)
}

// Unreviewed fetches the single not-yet-reviewed page of the current week.
func (s *Source) Unreviewed(ctx context.Context) domain.WeekBatch {
	return s.fetchPage(ctx, domain.WeekWindow(s.now()), unreviewedPrefix)
}

// AllReviewed fetches every reviewed page from the epoch through today, one
// pooled task per week, and streams the batches as they complete. Ordering is
// not guaranteed and the sequence is not restartable: every call re-reads all
// pages.
func (s *Source) AllReviewed(ctx context.Context) <-chan domain.WeekBatch {
	windows := domain.Windows(s.epoch, s.now())
	// Buffer one slot per week so no fetch task ever blocks on a slow consumer.
	out := make(chan domain.WeekBatch, len(windows))

	var wg sync.WaitGroup
	for _, w := range windows {
		wg.Add(1)
		s.pool.Go(func() {
			defer wg.Done()
			out <- s.fetchPage(ctx, w, reviewedPrefix)
		})
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func (s *Source) fetchPage(ctx context.Context, window domain.Window, prefix string) domain.WeekBatch {
	batch := domain.WeekBatch{Window: window}
	title := window.PageTitle(prefix)

	rows, err := s.sheets.Values(ctx, title)
	if errors.Is(err, ErrWorksheetNotFound) {
		s.logger.Debug("no worksheet for week", "title", title, "week", window.String())
		return batch
	}
	if err != nil {
		batch.Err = fmt.Errorf("read page %q: %w", title, err)
		return batch
	}

	if len(rows) == 0 {
		return batch
	}
	for i, row := range rows[1:] { // first row is the header
		if emptyRow(row) {
			continue
		}
		c, err := s.contribution(ctx, row)
		if err != nil {
			batch.RowErrors++
			s.logger.Warn("skipping row",
				"title", title,
				"week", window.String(),
				"row", i+2,
				"error", err,
			)
			continue
		}
		batch.Contributions = append(batch.Contributions, *c)
	}

	s.logger.Debug("fetched page",
		"title", title,
		"contributions", len(batch.Contributions),
		"row_errors", batch.RowErrors,
	)
	return batch
}

// WatchedUsers reads the "Banned users" worksheet. With bannedOnly set, rows
// whose is-banned flag is not "yes" are excluded. The projection is read-only
// and never reconciled into the store.
func (s *Source) WatchedUsers(ctx context.Context, bannedOnly bool) ([]domain.BannedUser, error) {
	rows, err := s.sheets.Values(ctx, bannedUsersPage)
	if err != nil {
		return nil, fmt.Errorf("read page %q: %w", bannedUsersPage, err)
	}

	var users []domain.BannedUser
	if len(rows) == 0 {
		return users, nil
	}
	for i, row := range rows[1:] {
		if emptyRow(row) || row[colAccount] == "" {
			continue
		}
		if bannedOnly && (len(row) <= colIsBanned || !strings.EqualFold(row[colIsBanned], "yes")) {
			continue
		}
		u, err := bannedUser(row)
		if err != nil {
			s.logger.Warn("skipping banned-user row", "row", i+2, "error", err)
			continue
		}
		users = append(users, *u)
	}
	return users, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
