package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"utopian_syncer/internal/domain"
)

// ContributionSource produces normalized contribution records from the review
// spreadsheet.
type ContributionSource interface {
	ReviewedWeek(ctx context.Context, day time.Time) domain.WeekBatch
	Unreviewed(ctx context.Context) domain.WeekBatch
	AllReviewed(ctx context.Context) <-chan domain.WeekBatch
}

// ContributionStore is the durable document store keyed by (author, permlink).
type ContributionStore interface {
	// FindByKey returns the stored document id for the natural key, or ""
	// when absent.
	FindByKey(ctx context.Context, author, permlink string) (string, error)
	Insert(ctx context.Context, c *domain.Contribution) (string, error)
	Replace(ctx context.Context, id string, c *domain.Contribution) error
}

// Publisher announces reconciled contributions. A nil Publisher disables
// eventing.
type Publisher interface {
	Publish(ctx context.Context, c *domain.Contribution, isNew bool) error
	Close() error
}
