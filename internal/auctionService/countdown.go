package auction

import (
	"context"
	"time"
)

// Countdown is a running countdown for a single auction view. It invokes
// its callback with the formatted remaining time at a fixed cadence and
// guarantees the underlying ticker is released when the view goes away,
// either through context cancellation or an explicit Stop.
type Countdown struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// StartCountdown begins emitting the time remaining until end, once
// immediately and then on every interval tick. The callback receives
// HH:MM:SS strings and a final "Ended" once the target passes, after
// which the countdown stops on its own.
func StartCountdown(ctx context.Context, end time.Time, interval time.Duration, fn func(remaining string)) *Countdown {
	ctx, cancel := context.WithCancel(ctx)
	c := &Countdown{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(c.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		fn(FormatClock(end, time.Now()))
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				fn(FormatClock(end, now))
				if !now.Before(end) {
					return
				}
			}
		}
	}()

	return c
}

// Stop cancels the countdown and waits for the tick loop to exit. Safe to
// call more than once and after the countdown finished on its own.
func (c *Countdown) Stop() {
	c.cancel()
	<-c.done
}

// Done is closed once the tick loop has exited.
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}
