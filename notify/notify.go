// Package notify fans out new-feedback events to admin subscribers. It is
// fire-and-forget by design: publishing never blocks the ingest path, and a
// subscriber that falls behind simply misses events.
package notify

import (
	"sync"
	"time"
)

// Event carries the fields admins see when a feedback lands.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Airport   string    `json:"airport"`
	Service   string    `json:"service"`
	Comment   string    `json:"comment"`
	Sentiment string    `json:"sentiment"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}

// subscriber channels are buffered so a briefly slow reader doesn't drop
// events immediately.
const subscriberBuffer = 16

// Hub distributes events to any number of subscribers.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber and returns its channel plus a cancel
// function that must be called when the subscriber goes away.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber whose buffer has room.
// With no subscribers it is a no-op; it never blocks the caller.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
