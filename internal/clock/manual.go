package clock

import (
	"sync"
	"time"
)

// Manual is a deterministic TickSource. Time only moves when Advance is
// called, and callbacks run on the goroutine calling Advance.
type Manual struct {
	mu   sync.Mutex
	now  time.Duration
	subs []*manualHandle
}

// NewManual returns a Manual source at time zero.
func NewManual() *Manual {
	return &Manual{}
}

type manualHandle struct {
	src      *Manual
	start    time.Duration
	total    time.Duration
	interval time.Duration
	next     time.Duration // offset of the next tick from start
	onTick   func(time.Duration)
	onFinish func()
	stopped  bool
}

func (h *manualHandle) Cancel() {
	h.src.mu.Lock()
	defer h.src.mu.Unlock()
	h.stopped = true
}

// Start registers a countdown. The immediate first tick is delivered by the
// next Advance call, including Advance(0).
func (m *Manual) Start(total, interval time.Duration, onTick func(time.Duration), onFinish func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := &manualHandle{
		src:      m,
		start:    m.now,
		total:    total,
		interval: interval,
		onTick:   onTick,
		onFinish: onFinish,
	}
	m.subs = append(m.subs, h)
	return h
}

// Active reports how many subscriptions have neither finished nor been
// cancelled.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, h := range m.subs {
		if !h.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by d and fires every callback that falls due,
// in order. Callbacks may cancel or start subscriptions.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		fire, at := m.nextDue(target)
		if fire == nil {
			break
		}
		m.mu.Lock()
		if at > m.now {
			m.now = at
		}
		m.mu.Unlock()
		fire()
	}

	m.mu.Lock()
	m.now = target
	m.prune()
	m.mu.Unlock()
}

// nextDue pops the earliest callback due at or before target.
func (m *Manual) nextDue(target time.Duration) (func(), time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var best *manualHandle
	var bestAt time.Duration
	for _, h := range m.subs {
		if h.stopped {
			continue
		}
		at := h.start + h.next
		if h.next >= h.total {
			at = h.start + h.total
		}
		if at > target {
			continue
		}
		if best == nil || at < bestAt {
			best, bestAt = h, at
		}
	}
	if best == nil {
		return nil, 0
	}

	h := best
	if h.next >= h.total {
		h.stopped = true
		return func() {
			if h.onFinish != nil {
				h.onFinish()
			}
		}, bestAt
	}
	remaining := h.total - h.next
	h.next += h.interval
	return func() { h.onTick(remaining) }, bestAt
}

func (m *Manual) prune() {
	live := m.subs[:0]
	for _, h := range m.subs {
		if !h.stopped {
			live = append(live, h)
		}
	}
	m.subs = live
}
