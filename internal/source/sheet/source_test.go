package sheet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utopian_syncer/internal/domain"
	"utopian_syncer/internal/pool"
)

// stubWorksheets serves pages by title; unknown titles report a missing
// worksheet like the real spreadsheet API does.
type stubWorksheets struct {
	mu    sync.Mutex
	pages map[string][][]string
	reads []string
	err   error
}

func (s *stubWorksheets) Values(ctx context.Context, title string) ([][]string, error) {
	s.mu.Lock()
	s.reads = append(s.reads, title)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	rows, ok := s.pages[title]
	if !ok {
		return nil, ErrWorksheetNotFound
	}
	return rows, nil
}

func (s *stubWorksheets) readCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reads)
}

var header = []string{"Moderator", "Date", "Post", "Repository", "Category", "Score", "Staff picked", "Pick date", "Picked by", "Reviewed"}

func rowFor(author, permlink string) []string {
	row := reviewRow()
	row[colPostURL] = "https://steemit.com/utopian-io/@" + author + "/" + permlink
	return row
}

func fixedSource(sheets Worksheets, lookup ContentLookup, today time.Time) *Source {
	s := New(sheets, lookup, pool.New(4), testLogger(), Config{
		Epoch:   time.Date(2018, time.May, 3, 0, 0, 0, 0, time.UTC),
		Curator: "utopian-io",
	})
	s.now = func() time.Time { return today }
	return s
}

func TestAllReviewed_OneFetchPerWeek(t *testing.T) {
	sheets := &stubWorksheets{pages: map[string][][]string{
		"Reviewed - May 3 - May 10":   {header, rowFor("alice", "post-a")},
		"Reviewed - May 10 - May 17":  {header, rowFor("bob", "post-b"), rowFor("carol", "post-c")},
		"Reviewed - May 17 - May 24":  {header},
	}}
	s := fixedSource(sheets, &stubLookup{content: defaultContent()}, time.Date(2018, time.May, 17, 0, 0, 0, 0, time.UTC))

	var all []domain.Contribution
	for batch := range s.AllReviewed(context.Background()) {
		require.NoError(t, batch.Err)
		all = append(all, batch.Contributions...)
	}

	assert.Equal(t, 3, sheets.readCount(), "one read per week between epoch and today")
	require.Len(t, all, 3)

	authors := map[string]bool{}
	for _, c := range all {
		authors[c.Author] = true
	}
	assert.Equal(t, map[string]bool{"alice": true, "bob": true, "carol": true}, authors)
}

func TestAllReviewed_MissingWeekYieldsNothing(t *testing.T) {
	sheets := &stubWorksheets{pages: map[string][][]string{
		"Reviewed - May 3 - May 10": {header, rowFor("alice", "post-a")},
		// the other two weeks have no worksheet
	}}
	s := fixedSource(sheets, &stubLookup{content: defaultContent()}, time.Date(2018, time.May, 17, 0, 0, 0, 0, time.UTC))

	var all []domain.Contribution
	for batch := range s.AllReviewed(context.Background()) {
		require.NoError(t, batch.Err, "a missing page must not fail the fetch")
		all = append(all, batch.Contributions...)
	}

	require.Len(t, all, 1)
	assert.Equal(t, "alice", all[0].Author)
}

func TestAllReviewed_PageErrorIsReported(t *testing.T) {
	sheets := &stubWorksheets{err: errors.New("spreadsheet unavailable")}
	s := fixedSource(sheets, &stubLookup{content: defaultContent()}, time.Date(2018, time.May, 17, 0, 0, 0, 0, time.UTC))

	var failed int
	for batch := range s.AllReviewed(context.Background()) {
		if batch.Err != nil {
			failed++
		}
	}
	assert.Equal(t, 3, failed)
}

func TestReviewedWeek_SkipsBadRowsAndEmptyRows(t *testing.T) {
	badRow := rowFor("dave", "post-d")
	badRow[colPostURL] = "nonsense"
	sheets := &stubWorksheets{pages: map[string][][]string{
		"Reviewed - May 3 - May 10": {
			header,
			rowFor("alice", "post-a"),
			{"", "", "", "", "", "", "", "", "", ""},
			badRow,
		},
	}}
	s := fixedSource(sheets, &stubLookup{content: defaultContent()}, time.Date(2018, time.May, 17, 0, 0, 0, 0, time.UTC))

	batch := s.ReviewedWeek(context.Background(), time.Date(2018, time.May, 4, 0, 0, 0, 0, time.UTC))

	require.NoError(t, batch.Err)
	require.Len(t, batch.Contributions, 1)
	assert.Equal(t, "alice", batch.Contributions[0].Author)
	assert.Equal(t, 1, batch.RowErrors)
}

func TestUnreviewed_ReadsCurrentWeekPage(t *testing.T) {
	sheets := &stubWorksheets{pages: map[string][][]string{
		"Unreviewed - May 17 - May 24": {header, rowFor("erin", "post-e")},
	}}
	s := fixedSource(sheets, &stubLookup{content: defaultContent()}, time.Date(2018, time.May, 17, 0, 0, 0, 0, time.UTC))

	batch := s.Unreviewed(context.Background())

	require.NoError(t, batch.Err)
	require.Len(t, batch.Contributions, 1)
	assert.Equal(t, "erin", batch.Contributions[0].Author)
	assert.Equal(t, []string{"Unreviewed - May 17 - May 24"}, sheets.reads)
}

func TestWatchedUsers_BannedOnlyFilter(t *testing.T) {
	sheets := &stubWorksheets{pages: map[string][][]string{
		"Banned users": {
			{"Account", "Days", "Since", "Banned", "Reason", "By"},
			{"baduser", "30", "2018-05-03", "yes", "plagiarism", "mod1"},
			{"watched", "0", "", "no", "", "mod2"},
			{"", "", "", "", "", ""},
		},
	}}
	s := fixedSource(sheets, &stubLookup{content: defaultContent()}, time.Date(2018, time.May, 17, 0, 0, 0, 0, time.UTC))

	banned, err := s.WatchedUsers(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, banned, 1)
	assert.Equal(t, "baduser", banned[0].Account)
	assert.True(t, banned[0].IsBanned)

	all, err := s.WatchedUsers(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
