package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/satchelapp/satchel/internal/domain"
	"github.com/satchelapp/satchel/internal/logger"
	"github.com/satchelapp/satchel/internal/sources/seedfile"
	redisstore "github.com/satchelapp/satchel/internal/store/redis"
)

// SeedImporter loads the bookmark seed file into the store at startup and
// re-imports it on an interval or on a manual trigger. Import is
// idempotent: seed entries map to content-derived ids and existing
// documents are left untouched, so CreatedAt survives reloads.
type SeedImporter struct {
	filePath string
	store    *redisstore.Store
	logger   logger.Logger
	interval time.Duration
	trigger  chan struct{}
	stopCh   chan struct{}
}

// NewSeedImporter creates a new seed importer.
func NewSeedImporter(
	filePath string,
	store *redisstore.Store,
	log logger.Logger,
	interval time.Duration,
	trigger chan struct{},
) *SeedImporter {
	return &SeedImporter{
		filePath: filePath,
		store:    store,
		logger:   log,
		interval: interval,
		trigger:  trigger,
		stopCh:   make(chan struct{}),
	}
}

// Start runs an initial import and begins the periodic refresh.
func (si *SeedImporter) Start(ctx context.Context) error {
	if err := si.Import(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(si.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := si.Import(ctx); err != nil {
					si.logger.Error("periodic seed import failed",
						logger.Error(err))
				}
			case <-si.trigger:
				if err := si.Import(ctx); err != nil {
					si.logger.Error("triggered seed import failed",
						logger.Error(err))
				}
			case <-si.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the periodic refresh.
func (si *SeedImporter) Stop() {
	close(si.stopCh)
}

// Import loads the seed file and stores every bookmark that does not exist
// yet.
func (si *SeedImporter) Import(ctx context.Context) error {
	config, err := seedfile.NewLoader(si.filePath).Load()
	if err != nil {
		return err
	}

	seeded, err := seedfile.NewMapper().MapBookmarks(config, time.Now())
	if err != nil {
		return err
	}

	fresh := make([]*domain.Bookmark, 0, len(seeded))
	for _, bookmark := range seeded {
		_, err := si.store.GetBookmark(ctx, bookmark.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		fresh = append(fresh, bookmark)
	}

	if len(fresh) > 0 {
		if err := si.store.SaveBookmarksMany(ctx, fresh); err != nil {
			return err
		}
	}

	si.logger.Info("seed import completed",
		logger.Int("seeded", len(seeded)),
		logger.Int("created", len(fresh)))

	return nil
}
