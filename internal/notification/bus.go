package notification

import (
	"context"
	"sync"
)

// Bus fans notifications out to every listener of a company, across
// processes when backed by Redis.
type Bus interface {
	Publish(ctx context.Context, n Notification) error
	// Subscribe returns a channel of the company's notifications and a
	// cancel func that must be called to release it.
	Subscribe(ctx context.Context, empresaID string) (<-chan Notification, func(), error)
	Close() error
}

const subscriberBuffer = 32

// Hub is the in-process Bus.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[chan Notification]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: map[string]map[chan Notification]struct{}{}}
}

func (h *Hub) Publish(_ context.Context, n Notification) error {
	h.deliver(n)
	return nil
}

// deliver drops the message for subscribers whose buffer is full.
func (h *Hub) deliver(n Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[n.EmpresaID] {
		select {
		case ch <- n:
		default:
		}
	}
}

func (h *Hub) Subscribe(_ context.Context, empresaID string) (<-chan Notification, func(), error) {
	ch := make(chan Notification, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}, nil
	}
	if h.subs[empresaID] == nil {
		h.subs[empresaID] = map[chan Notification]struct{}{}
	}
	h.subs[empresaID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[empresaID][ch]; ok {
				delete(h.subs[empresaID], ch)
				if len(h.subs[empresaID]) == 0 {
					delete(h.subs, empresaID)
				}
				close(ch)
			}
		})
	}
	return ch, cancel, nil
}

// Subscribers returns how many listeners a company has.
func (h *Hub) Subscribers(empresaID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[empresaID])
}

func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	for id, set := range h.subs {
		for ch := range set {
			close(ch)
		}
		delete(h.subs, id)
	}
	return nil
}
