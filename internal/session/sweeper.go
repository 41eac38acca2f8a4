package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper periodically removes idle sessions
type Sweeper struct {
	store    *Store
	logger   *zerolog.Logger
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewSweeper creates a new sweeper for idle session cleanup
func NewSweeper(store *Store, logger *zerolog.Logger, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start runs the sweep loop until ctx is cancelled or Stop is called
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.interval).
		Dur("ttl", s.store.cfg.TTL).
		Msg("Starting session sweeper")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Session sweeper stopping (context cancelled)")
			return
		case <-s.stopChan:
			s.logger.Info().Msg("Session sweeper stopping (stop signal)")
			return
		case <-ticker.C:
			s.SweepOnce()
		}
	}
}

// Stop signals the sweeper to stop
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// SweepOnce removes idle sessions now
func (s *Sweeper) SweepOnce() int {
	removed := s.store.Sweep()
	if removed > 0 {
		s.logger.Info().
			Int("removed", removed).
			Int("active", s.store.Len()).
			Msg("Swept idle sessions")
	} else {
		s.logger.Debug().Int("active", s.store.Len()).Msg("No idle sessions")
	}
	return removed
}
