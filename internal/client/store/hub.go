package store

import "sync"

// Listener receives the snapshot produced by one commit.
type Listener func(Snapshot)

type subscription struct {
	id uint64
	fn Listener
}

// hub holds the state tree and fans commits out to listeners.
//
// Delivery is sequential and in commit order. A commit made while another
// goroutine (or a listener on the same goroutine) is delivering is queued
// and delivered by that goroutine, so listeners may call back into the
// store without deadlocking.
type hub struct {
	mu        sync.Mutex
	state     Snapshot
	listeners []subscription
	nextID    uint64
	queue     []Snapshot
	draining  bool
}

func newHub(initial Snapshot) *hub {
	return &hub{state: initial}
}

func (h *hub) snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// commit applies mutate atomically and schedules one notification.
// mutate must not retain or modify slices of the previous state in place.
func (h *hub) commit(mutate func(*Snapshot)) {
	h.mu.Lock()
	mutate(&h.state)
	h.queue = append(h.queue, h.state)
	if h.draining {
		h.mu.Unlock()
		return
	}
	h.draining = true

	for len(h.queue) > 0 {
		next := h.queue[0]
		h.queue[0] = Snapshot{}
		h.queue = h.queue[1:]
		listeners := make([]subscription, len(h.listeners))
		copy(listeners, h.listeners)
		h.mu.Unlock()

		for _, l := range listeners {
			l.fn(next)
		}

		h.mu.Lock()
	}

	h.draining = false
	h.queue = nil
	h.mu.Unlock()
}

func (h *hub) subscribe(fn Listener) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { h.unsubscribe(id) })
	}
}

func (h *hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := make([]subscription, 0, len(h.listeners))
	for _, l := range h.listeners {
		if l.id != id {
			kept = append(kept, l)
		}
	}
	h.listeners = kept
}
