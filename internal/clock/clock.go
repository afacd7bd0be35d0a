// Package clock provides the countdown primitive used by the timer: a tick
// source that calls back once per interval and once more when the total
// duration has elapsed.
package clock

import (
	"sync"
	"time"
)

// Handle is an active subscription to a tick source.
type Handle interface {
	// Cancel stops further callbacks. It is idempotent and never blocks.
	Cancel()
}

// TickSource starts countdowns. onTick receives the time left until the
// countdown ends; onFinish is called once when it ends.
//
// Implementations fire the first onTick immediately after Start, the same
// way platform countdown timers do.
type TickSource interface {
	Start(total, interval time.Duration, onTick func(remaining time.Duration), onFinish func()) Handle
}

// System is the wall-clock TickSource. Callbacks run on a goroutine owned
// by the subscription.
var System TickSource = systemSource{}

type systemSource struct{}

func (systemSource) Start(total, interval time.Duration, onTick func(time.Duration), onFinish func()) Handle {
	h := &systemHandle{done: make(chan struct{})}
	go h.run(total, interval, onTick, onFinish)
	return h
}

type systemHandle struct {
	once sync.Once
	done chan struct{}
}

func (h *systemHandle) Cancel() {
	h.once.Do(func() { close(h.done) })
}

func (h *systemHandle) cancelled() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

func (h *systemHandle) run(total, interval time.Duration, onTick func(time.Duration), onFinish func()) {
	start := time.Now()
	deadline := time.NewTimer(total)
	defer deadline.Stop()

	if total > 0 {
		onTick(total)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-deadline.C:
			if !h.cancelled() {
				onFinish()
			}
			return
		case now := <-ticker.C:
			left := total - now.Sub(start)
			if left < interval/2 {
				// The deadline is about to fire; let it report the end.
				continue
			}
			if h.cancelled() {
				return
			}
			onTick(left.Round(interval))
		}
	}
}
