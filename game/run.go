package game

import (
	"context"
	"errors"
	"time"
)

// Run ticks the session every interval until ctx is cancelled. onTick, if
// set, is called after each tick with a fresh snapshot. Journal errors are
// logged by Tick and do not stop the loop.
func (s *Session) Run(ctx context.Context, interval time.Duration, onTick func(Snapshot)) error {
	if interval <= 0 {
		return errors.New("game: tick interval must be positive")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = s.Tick()
			if onTick != nil {
				onTick(s.Snapshot())
			}
		}
	}
}

// RunTicks applies n ticks back to back.
func (s *Session) RunTicks(n int) error {
	var errs []error
	for i := 0; i < n; i++ {
		if err := s.Tick(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
