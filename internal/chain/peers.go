package chain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chaindb/internal/metrics"
)

// Direction selects a neighbour. The head has no Prev, the tail has no Next.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Peer is an established connection to a neighbour.
type Peer interface {
	Update(ctx context.Context, rec WriteRecord) error
	AckWrite(ctx context.Context, id string) error
	Close() error
}

// Dialer opens a connection to the neighbour at addr. PeerManager reports any
// dial error as ErrPeerUnreachable.
type Dialer interface {
	Dial(ctx context.Context, addr string) (Peer, error)
}

type DialerFunc func(ctx context.Context, addr string) (Peer, error)

func (f DialerFunc) Dial(ctx context.Context, addr string) (Peer, error) {
	return f(ctx, addr)
}

type peerSlot struct {
	mu   sync.Mutex
	addr string
	peer Peer
}

// PeerManager lazily dials and caches one connection per direction. The slot
// lock covers the cache check, the dial and the store, never a call made on
// the returned Peer.
type PeerManager struct {
	dialer      Dialer
	dialTimeout time.Duration
	slots       [2]*peerSlot
}

func NewPeerManager(pos Position, dialer Dialer, dialTimeout time.Duration) *PeerManager {
	return &PeerManager{
		dialer:      dialer,
		dialTimeout: dialTimeout,
		slots: [2]*peerSlot{
			Next: {addr: pos.NextAddr},
			Prev: {addr: pos.PrevAddr},
		},
	}
}

func (m *PeerManager) Addr(dir Direction) string {
	return m.slots[dir].addr
}

// Get returns the cached connection for dir, dialing it on first use.
// A nil Peer with a nil error means there is no neighbour in that direction.
func (m *PeerManager) Get(ctx context.Context, dir Direction) (Peer, error) {
	s := m.slots[dir]
	if s.addr == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.peer != nil {
		return s.peer, nil
	}

	dialCtx := ctx
	if m.dialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, m.dialTimeout)
		defer cancel()
	}

	slog.Debug("dialing peer", "direction", dir, "addr", s.addr)
	p, err := m.dialer.Dial(dialCtx, s.addr)
	if err != nil {
		metrics.PeerDialsTotal.WithLabelValues(dir.String(), "failed").Inc()
		return nil, &PeerError{
			Direction: dir,
			Addr:      s.addr,
			Err:       fmt.Errorf("%w: dial: %w", ErrPeerUnreachable, err),
		}
	}

	metrics.PeerDialsTotal.WithLabelValues(dir.String(), "ok").Inc()
	slog.Info("connected to peer", "direction", dir, "addr", s.addr)
	s.peer = p
	return p, nil
}

// Invalidate drops the cached connection if it is still p, so the next Get
// dials again. A stale failure never evicts a newer connection.
func (m *PeerManager) Invalidate(dir Direction, p Peer) {
	s := m.slots[dir]

	s.mu.Lock()
	if s.peer == nil || s.peer != p {
		s.mu.Unlock()
		return
	}
	s.peer = nil
	s.mu.Unlock()

	metrics.PeerInvalidationsTotal.WithLabelValues(dir.String()).Inc()
	slog.Warn("dropping peer connection", "direction", dir, "addr", s.addr)
	if err := p.Close(); err != nil {
		slog.Debug("close invalidated peer", "direction", dir, "error", err)
	}
}

// Close closes both cached connections and returns the first error.
func (m *PeerManager) Close() error {
	var firstErr error
	for dir, s := range m.slots {
		s.mu.Lock()
		p := s.peer
		s.peer = nil
		s.mu.Unlock()

		if p == nil {
			continue
		}
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close %s peer: %w", Direction(dir), err)
		}
	}
	return firstErr
}
