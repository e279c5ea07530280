package chain

import (
	"log/slog"
	"slices"
	"sync"

	"chaindb/internal/metrics"
)

// Tracker keeps the ids this node forwarded downstream (sent) and the subset
// still waiting for an acknowledgment from the tail (pending).
//
// An acknowledgment can overtake the forwarding node's own bookkeeping: the
// successor's Update handler returns only after the tail has already emitted
// the ack. While a forward of an id is in flight, acks for it are parked in
// early and consumed when the forward completes or fails.
type Tracker struct {
	mu       sync.Mutex
	sent     map[string]struct{}
	pending  map[string]struct{}
	inflight map[string]int
	early    map[string]struct{}
}

type TrackerSnapshot struct {
	Sent    []string
	Pending []string
}

func NewTracker() *Tracker {
	return &Tracker{
		sent:     make(map[string]struct{}),
		pending:  make(map[string]struct{}),
		inflight: make(map[string]int),
		early:    make(map[string]struct{}),
	}
}

func (t *Tracker) MarkSent(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.markSentLocked(id)
}

func (t *Tracker) MarkPending(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.markPendingLocked(id)
}

// BeginForward announces a forward of id to the successor. Every call must be
// matched by MarkForwarded or AbortForward.
func (t *Tracker) BeginForward(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inflight[id]++
}

// MarkForwarded records a successful forward in a single critical section so
// a concurrent ClearPending observes either nothing or both sets updated. An
// ack parked while the forward was in flight retires the id right away.
func (t *Tracker) MarkForwarded(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, acked := t.early[id]
	delete(t.early, id)
	t.endForwardLocked(id)

	t.markSentLocked(id)
	if !acked {
		t.markPendingLocked(id)
	}
}

// AbortForward ends a forward that did not reach the successor.
func (t *Tracker) AbortForward(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endForwardLocked(id)
}

// ClearPending retires id and reports whether it was pending. Retiring an id
// that is neither pending nor in flight is a no-op.
func (t *Tracker) ClearPending(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, wasPending := t.pending[id]
	if wasPending {
		delete(t.pending, id)
		metrics.ChainPendingWrites.Set(float64(len(t.pending)))
	}

	if t.inflight[id] > 0 {
		t.early[id] = struct{}{}
		slog.Debug("ack arrived before forward was registered", "id", id)
	}
	return wasPending
}

func (t *Tracker) IsPending(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[id]
	return ok
}

func (t *Tracker) WasSent(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.sent[id]
	return ok
}

func (t *Tracker) Snapshot() TrackerSnapshot {
	t.mu.Lock()
	sent := make([]string, 0, len(t.sent))
	for id := range t.sent {
		sent = append(sent, id)
	}
	pending := make([]string, 0, len(t.pending))
	for id := range t.pending {
		pending = append(pending, id)
	}
	t.mu.Unlock()

	slices.Sort(sent)
	slices.Sort(pending)
	return TrackerSnapshot{Sent: sent, Pending: pending}
}

func (t *Tracker) markSentLocked(id string) {
	if _, ok := t.sent[id]; ok {
		return
	}
	t.sent[id] = struct{}{}
	metrics.ChainSentWrites.Set(float64(len(t.sent)))
}

func (t *Tracker) markPendingLocked(id string) {
	t.pending[id] = struct{}{}
	metrics.ChainPendingWrites.Set(float64(len(t.pending)))
}

func (t *Tracker) endForwardLocked(id string) {
	if t.inflight[id] > 1 {
		t.inflight[id]--
		return
	}
	delete(t.inflight, id)
	delete(t.early, id)
}
