package scheduler

import (
	"context"
	"time"

	"github.com/satchelapp/satchel/internal/logger"
	redisstore "github.com/satchelapp/satchel/internal/store/redis"
)

// OrphanSweeper periodically removes per-user index members whose backing
// document no longer exists. Listings already skip such members; the
// sweeper reclaims them so indexes do not grow without bound.
type OrphanSweeper struct {
	store    *redisstore.Store
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewOrphanSweeper creates a new sweeper.
func NewOrphanSweeper(store *redisstore.Store, log logger.Logger, interval time.Duration) *OrphanSweeper {
	return &OrphanSweeper{
		store:    store,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep.
func (os *OrphanSweeper) Start(ctx context.Context) error {
	// Run immediately on start
	if err := os.Sweep(ctx); err != nil {
		os.logger.Warn("initial orphan sweep failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(os.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := os.Sweep(ctx); err != nil {
					os.logger.Error("orphan sweep failed",
						logger.Error(err))
				}
			case <-os.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the sweeper.
func (os *OrphanSweeper) Stop() {
	close(os.stopCh)
}

// Sweep walks every known user and removes dangling index members.
func (os *OrphanSweeper) Sweep(ctx context.Context) error {
	usernames, err := os.store.Usernames(ctx)
	if err != nil {
		return err
	}

	removed := 0
	for _, user := range usernames {
		n, err := os.store.SweepUser(ctx, user)
		if err != nil {
			os.logger.Warn("failed to sweep user",
				logger.String("user", user),
				logger.Error(err))
			continue
		}
		removed += n
	}

	if removed > 0 {
		os.logger.Info("orphan sweep completed",
			logger.Int("removed", removed))
	} else {
		os.logger.Debug("no orphaned index members to sweep")
	}

	return nil
}
