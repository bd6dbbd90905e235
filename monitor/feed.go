// SPDX-License-Identifier: MIT

package monitor

import "sync"

// Publisher is the sink a Feed drains into; *Hub implements it.
type Publisher interface {
	Publish(ev Event) (int, error)
}

// Feed decouples a producer from slow clients: Offer never blocks, and a
// single goroutine forwards queued events to the Publisher in order.
type Feed struct {
	pub     Publisher
	ch      chan Event
	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	closed  bool
	dropped int
}

// NewFeed starts a feed with room for buffer pending events (minimum 1).
func NewFeed(pub Publisher, buffer int) *Feed {
	if buffer < 1 {
		buffer = 1
	}
	f := &Feed{
		pub:  pub,
		ch:   make(chan Event, buffer),
		done: make(chan struct{}),
	}
	go f.drain()

	return f
}

func (f *Feed) drain() {
	defer close(f.done)
	for ev := range f.ch {
		_, _ = f.pub.Publish(ev)
	}
}

// Offer queues ev and reports whether it was accepted. A full queue or a
// closed feed drops ev.
func (f *Feed) Offer(ev Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		f.dropped++
		return false
	}
	select {
	case f.ch <- ev:
		return true
	default:
		f.dropped++
		return false
	}
}

// Dropped reports how many events Offer rejected.
func (f *Feed) Dropped() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.dropped
}

// Close stops accepting events and waits until the queued ones are published.
// Close is idempotent.
func (f *Feed) Close() {
	f.once.Do(func() {
		f.mu.Lock()
		f.closed = true
		close(f.ch)
		f.mu.Unlock()
	})
	<-f.done
}
