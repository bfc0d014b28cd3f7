package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"utopian_syncer/internal/domain"
)

// Column layout of the reviewed/unreviewed worksheets.
const (
	colModerator = iota
	colReviewDate
	colPostURL
	colRepoURL
	colCategory
	colScore
	colStaffPickFlag
	colStaffPickDate
	colPickedBy
	colStatus

	reviewRowLen = colStatus + 1
)

// Column layout of the "Banned users" worksheet.
const (
	colAccount = iota
	colBanDays
	colBannedSince
	colIsBanned
	colBanReason
	colBannedBy

	bannedRowLen = colBannedBy + 1
)

// MalformedRowError marks a row that cannot be normalized. It aborts that row
// only, never the batch.
type MalformedRowError struct {
	Reason string
}

func (e *MalformedRowError) Error() string {
	return "malformed row: " + e.Reason
}

const isoLayout = "2006-01-02T15:04:05"

var defaultLayouts = []string{
	isoLayout,
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
}

// parseDateISO normalizes a worksheet date to ISO-8601. Parsing is attempted
// with the default layouts first, then retried day-first; anything still
// unparsable degrades to the empty string and never propagates.
func parseDateISO(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range defaultLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoLayout)
		}
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoLayout)
		}
	}
	return ""
}

// rowStatus derives the contribution status. The precedence is intentionally
// non-symmetric: an explicit "yes"/"pending" cell wins outright; otherwise the
// row is rejected only when moderator, review date and score are all present.
func rowStatus(row []string) domain.Status {
	switch strings.ToLower(row[colStatus]) {
	case "yes", "pending":
		return domain.StatusReviewed
	}
	if row[colModerator] != "" && row[colReviewDate] != "" && row[colScore] != "" {
		return domain.StatusRejected
	}
	return domain.StatusPending
}

// splitPostURL decomposes a post URL into its category, author and permlink
// segments. The author segment carries a leading @ sigil.
func splitPostURL(rawURL string) (postCategory, author, permlink string, err error) {
	segments := strings.Split(rawURL, "/")
	if len(segments) < 6 {
		return "", "", "", &MalformedRowError{Reason: fmt.Sprintf("post URL %q has too few segments", rawURL)}
	}
	if len(segments[4]) < 2 || segments[5] == "" {
		return "", "", "", &MalformedRowError{Reason: fmt.Sprintf("post URL %q lacks author or permlink", rawURL)}
	}
	return segments[3], segments[4][1:], segments[5], nil
}

// repoFullName derives owner/name from a repository URL. Only github.com URLs
// are recognized.
func repoFullName(rawURL string) string {
	if !strings.Contains(rawURL, "github.com") {
		return ""
	}
	segments := strings.Split(rawURL, "/")
	if len(segments) < 5 {
		return ""
	}
	return segments[3] + "/" + segments[4]
}

// contribution normalizes one worksheet row into a canonical record. The one
// side effect is a single content-lookup read per row; all parsing is local.
func (s *Source) contribution(ctx context.Context, row []string) (*domain.Contribution, error) {
	if len(row) < reviewRowLen {
		return nil, &MalformedRowError{Reason: fmt.Sprintf("want %d cells, got %d", reviewRowLen, len(row))}
	}

	postCategory, author, permlink, err := splitPostURL(row[colPostURL])
	if err != nil {
		return nil, err
	}

	score := 0.0
	if row[colScore] != "" {
		score, err = strconv.ParseFloat(row[colScore], 64)
		if err != nil {
			return nil, &MalformedRowError{Reason: fmt.Sprintf("score %q is not a number", row[colScore])}
		}
	}

	var staffPick *domain.StaffPick
	if strings.EqualFold(row[colStaffPickFlag], "yes") {
		staffPick = &domain.StaffPick{
			PickedBy: row[colPickedBy],
			Date:     parseDateISO(row[colStaffPickDate]),
		}
	}

	fullName := repoFullName(row[colRepoURL])
	repo := domain.Repository{FullName: fullName}
	if fullName != "" {
		repo.HTMLURL = "https://github.com/" + fullName
	}

	content, err := s.content.Fetch(ctx, author, permlink)
	if err != nil {
		return nil, fmt.Errorf("fetch content @%s/%s: %w", author, permlink, err)
	}

	category := row[colCategory]
	if category == "" && len(content.Tags) > 1 {
		category = content.Tags[1]
	}

	return &domain.Contribution{
		Author:       author,
		Permlink:     permlink,
		PostCategory: postCategory,
		Moderator: domain.Moderator{
			Account:    row[colModerator],
			ReviewDate: parseDateISO(row[colReviewDate]),
		},
		Repository: repo,
		Score:      score,
		Status:     rowStatus(row),
		Category:   category,
		Tags:       content.Tags,
		Created:    parseDateISO(content.Created),
		Body:       content.Body,
		Vote:       content.VoteBy(s.curator),
		StaffPick:  staffPick,
	}, nil
}

// bannedUser normalizes one row of the "Banned users" worksheet.
func bannedUser(row []string) (*domain.BannedUser, error) {
	if len(row) < bannedRowLen {
		return nil, &MalformedRowError{Reason: fmt.Sprintf("want %d cells, got %d", bannedRowLen, len(row))}
	}

	bannedSince := parseDateISO(row[colBannedSince])
	bannedUntil := ""
	if bannedSince != "" {
		days, err := strconv.ParseFloat(row[colBanDays], 64)
		if err != nil {
			return nil, &MalformedRowError{Reason: fmt.Sprintf("ban duration %q is not a number", row[colBanDays])}
		}
		since, err := time.Parse(isoLayout, bannedSince)
		if err != nil {
			return nil, &MalformedRowError{Reason: fmt.Sprintf("banned-since %q did not normalize", row[colBannedSince])}
		}
		bannedUntil = since.Add(time.Duration(days * 24 * float64(time.Hour))).Format(isoLayout)
	}

	return &domain.BannedUser{
		Account:     row[colAccount],
		IsBanned:    strings.EqualFold(row[colIsBanned], "yes"),
		BannedSince: bannedSince,
		BannedUntil: bannedUntil,
		BannedBy:    row[colBannedBy],
		Reason:      row[colBanReason],
	}, nil
}
