package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/flow/internal/logtail"
	"github.com/five82/flow/internal/state"
)

const (
	defaultPollInterval = time.Second
	maxBackoff          = 30 * time.Second
)

// StartFollower launches a background goroutine that polls f and pushes what
// it finds into inbox. It polls on every interval and whenever the file
// changes; failures back off exponentially. It returns immediately.
func StartFollower(ctx context.Context, inbox *state.Inbox, f *logtail.Follower, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	wake, err := f.Watch(ctx)
	if err != nil {
		logger.Warn("file watch unavailable, polling only", "path", f.Path(), "error", err)
	}

	go func() {
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			if poll(inbox, f, logger) {
				failures = 0
			} else {
				failures++
			}
			timer.Reset(calculateBackoff(failures, interval))

			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			case _, ok := <-wake:
				if !ok {
					wake = nil
				}
			}
		}
	}()
}

func poll(inbox *state.Inbox, f *logtail.Follower, logger *slog.Logger) bool {
	batch, err := f.Poll()
	if err != nil {
		inbox.Fail(err)
		logger.Warn("log poll failed", "path", f.Path(), "error", err)
		return false
	}
	if batch.Reset {
		logger.Info("log source truncated or rotated", "path", f.Path())
	}
	inbox.Push(batch.Lines, batch.Reset)
	return true
}

// calculateBackoff doubles base for each consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for range failures {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
