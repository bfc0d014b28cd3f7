package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"utopian_syncer/internal/domain"
	"utopian_syncer/internal/pool"
)

// SyncService drives one reconciliation run: it selects the record sets to
// sync, fans reconcile tasks out across the shared worker pool and aggregates
// every task outcome into a run summary. A single task failing never cancels
// its siblings.
type SyncService struct {
	source    ContributionSource
	store     ContributionStore
	publisher Publisher
	pool      *pool.Pool
	logger    *slog.Logger
	now       func() time.Time
}

func NewSyncService(
	source ContributionSource,
	store ContributionStore,
	publisher Publisher,
	p *pool.Pool,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		source:    source,
		store:     store,
		publisher: publisher,
		pool:      p,
		logger:    logger.With("component", "sync"),
		now:       time.Now,
	}
}

// Run performs one synchronous sync. Incremental mode (the default) covers the
// current review week, the previous one and the current unreviewed page; full
// history re-reads every week since the epoch and skips the unreviewed page.
// The returned summary reports every per-task failure; Run itself never fails.
func (s *SyncService) Run(ctx context.Context, fullHistory bool) *domain.RunSummary {
	startTime := time.Now()
	s.logger.Info("starting sync", "full_history", fullHistory)

	summary := &domain.RunSummary{}
	var mu sync.Mutex

	if fullHistory {
		for batch := range s.source.AllReviewed(ctx) {
			s.absorb(ctx, batch, summary, &mu)
		}
	} else {
		today := s.now()
		s.absorb(ctx, s.source.ReviewedWeek(ctx, today.AddDate(0, 0, -7)), summary, &mu)
		s.absorb(ctx, s.source.ReviewedWeek(ctx, today), summary, &mu)
		s.absorb(ctx, s.source.Unreviewed(ctx), summary, &mu)
	}

	s.pool.Wait()
	summary.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"fetched", summary.Fetched,
		"new", summary.New,
		"updated", summary.Updated,
		"published", summary.Published,
		"row_errors", summary.RowErrors,
		"week_errors", summary.WeekErrors,
		"store_errors", summary.StoreErrors,
		"publish_errors", summary.PublishErrors,
		"duration", summary.Duration,
	)
	if summary.Failed() {
		s.logger.Warn("sync finished with failed tasks; see per-task log lines for retry context")
	}

	return summary
}

// absorb tallies one week batch and schedules a reconcile task per record.
func (s *SyncService) absorb(ctx context.Context, batch domain.WeekBatch, summary *domain.RunSummary, mu *sync.Mutex) {
	mu.Lock()
	summary.Fetched += len(batch.Contributions)
	summary.RowErrors += batch.RowErrors
	if batch.Err != nil {
		summary.WeekErrors++
	}
	mu.Unlock()

	if batch.Err != nil {
		s.logger.Error("week fetch failed",
			"week", batch.Window.String(),
			"error", batch.Err,
		)
	}

	for i := range batch.Contributions {
		c := batch.Contributions[i]
		s.pool.Go(func() {
			s.reconcileTask(ctx, &c, batch.Window, summary, mu)
		})
	}
}

func (s *SyncService) reconcileTask(ctx context.Context, c *domain.Contribution, window domain.Window, summary *domain.RunSummary, mu *sync.Mutex) {
	isNew, err := s.reconcile(ctx, c)
	if err != nil {
		mu.Lock()
		summary.StoreErrors++
		mu.Unlock()
		s.logger.Error("reconcile failed",
			"author", c.Author,
			"permlink", c.Permlink,
			"week", window.String(),
			"error", err,
		)
		return
	}

	mu.Lock()
	if isNew {
		summary.New++
	} else {
		summary.Updated++
	}
	mu.Unlock()

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, c, isNew); err != nil {
		mu.Lock()
		summary.PublishErrors++
		mu.Unlock()
		s.logger.Error("publish failed",
			"author", c.Author,
			"permlink", c.Permlink,
			"error", err,
		)
		return
	}
	mu.Lock()
	summary.Published++
	mu.Unlock()
}

// reconcile upserts one record by its natural key. An existing document is
// replaced field-for-field, last write wins; otherwise a new document is
// inserted. Both paths wait for a durable write, so calling reconcile twice
// with the same record leaves exactly one stored document equal to it.
func (s *SyncService) reconcile(ctx context.Context, c *domain.Contribution) (bool, error) {
	id, err := s.store.FindByKey(ctx, c.Author, c.Permlink)
	if err != nil {
		return false, err
	}
	if id == "" {
		if _, err := s.store.Insert(ctx, c); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, s.store.Replace(ctx, id, c)
}
