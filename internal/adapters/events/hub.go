// Package events implements the change feed that keeps open views of a shift current.
package events

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portsevents "github.com/SscSPs/shift_cashbox_app/internal/core/ports/events"
)

type subscription struct {
	match    func(domain.ChangeEvent) bool
	listener portsevents.Listener
	active   atomic.Bool
}

// Hub fans events out to in-process listeners.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]*subscription
}

var _ portsevents.ChangeFeed = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]*subscription)}
}

// Publish delivers event synchronously to every matching listener. A listener
// unsubscribed earlier in the same delivery is skipped.
func (h *Hub) Publish(_ context.Context, event domain.ChangeEvent) {
	h.mu.RLock()
	targets := make([]*subscription, 0, len(h.subs))
	for _, s := range h.subs {
		if s.match(event) {
			targets = append(targets, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range targets {
		if s.active.Load() {
			s.listener(event)
		}
	}
}

func (h *Hub) SubscribeShifts(listener portsevents.Listener) portsevents.Unsubscribe {
	return h.subscribe(func(e domain.ChangeEvent) bool {
		return e.Kind == domain.ShiftChanged
	}, listener)
}

func (h *Hub) SubscribeShift(shiftID string, listener portsevents.Listener) portsevents.Unsubscribe {
	return h.subscribe(func(e domain.ChangeEvent) bool {
		return e.ShiftID == shiftID && (e.Kind == domain.ShiftChanged || e.Kind == domain.IncidentsChanged)
	}, listener)
}

func (h *Hub) SubscribeMovements(shiftID string, listener portsevents.Listener) portsevents.Unsubscribe {
	return h.subscribe(func(e domain.ChangeEvent) bool {
		return e.ShiftID == shiftID && e.Kind == domain.MovementsChanged
	}, listener)
}

// Len reports the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) subscribe(match func(domain.ChangeEvent) bool, listener portsevents.Listener) portsevents.Unsubscribe {
	sub := &subscription{match: match, listener: listener}
	sub.active.Store(true)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.active.Store(false)
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}
