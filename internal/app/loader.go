package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/five82/passport/internal/countries"
	"github.com/five82/passport/internal/state"
)

const fetchKey = "countries"

// Loader performs the single country fetch and settles the store with its
// outcome.
type Loader struct {
	fetcher countries.Fetcher
	store   *state.Store
	logger  *zap.Logger

	group singleflight.Group
	once  sync.Once
}

// NewLoader returns a Loader. A nil logger discards output.
func NewLoader(fetcher countries.Fetcher, store *state.Store, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, store: store, logger: logger}
}

// Start launches the fetch in the background. Only the first call has an
// effect.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go func() {
			_, _ = l.Load(ctx)
		}()
	})
}

// Load returns the country list, fetching it if the store has not settled.
// Concurrent callers share one request; later callers get the settled
// result without touching the network.
func (l *Loader) Load(ctx context.Context) ([]countries.Country, error) {
	if snap := l.store.Snapshot(); !snap.Loading() {
		return snap.Countries, snap.Err
	}

	v, err, shared := l.group.Do(fetchKey, func() (any, error) {
		if snap := l.store.Snapshot(); !snap.Loading() {
			return snap.Countries, snap.Err
		}

		l.store.Begin()
		start := time.Now()
		list, err := l.fetcher.FetchCountries(ctx)
		l.store.Resolve(list, err)

		if err != nil {
			l.logger.Error("fetch countries failed",
				zap.Error(err),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil, err
		}
		l.logger.Info("countries loaded",
			zap.Int("count", len(list)),
			zap.Duration("elapsed", time.Since(start)),
		)
		return list, nil
	})
	if shared {
		l.logger.Debug("joined in-flight country fetch")
	}
	if err != nil {
		return nil, err
	}
	list, _ := v.([]countries.Country)
	return list, nil
}
