package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chaindb/internal/metrics"
)

// Store is the local durable key-value engine.
type Store interface {
	Get(key []byte) ([]byte, bool, error)
	Put(key, value []byte) error
}

type Config struct {
	Position    Position
	CallTimeout time.Duration
	DialTimeout time.Duration
}

// Coordinator runs the chain write and acknowledgment protocols for one node.
//
// A write is persisted locally, forwarded to the successor and then registered
// as pending. The tail, having no successor, emits the acknowledgment that
// travels back through every predecessor, each one retiring the id.
type Coordinator struct {
	store    Store
	peers    *PeerManager
	tracker  *Tracker
	position Position

	callTimeout time.Duration

	mu       sync.Mutex
	closed   bool
	requests sync.WaitGroup
	tailAck  sync.WaitGroup

	log *slog.Logger
}

// New builds a coordinator for the node at cfg.Position. Neighbours are dialed
// lazily through dialer on first use.
func New(store Store, dialer Dialer, cfg Config) *Coordinator {
	return &Coordinator{
		store:       store,
		peers:       NewPeerManager(cfg.Position, dialer, cfg.DialTimeout),
		tracker:     NewTracker(),
		position:    cfg.Position,
		callTimeout: cfg.CallTimeout,
		log:         slog.With("component", "chain", "role", cfg.Position.Role()),
	}
}

func (c *Coordinator) Position() Position {
	return c.position
}

// HandleUpdate persists rec locally and forwards it to the successor. On the
// tail it starts the acknowledgment wave instead. It returns rec.ID once the
// rest of the chain holds the write.
func (c *Coordinator) HandleUpdate(ctx context.Context, rec WriteRecord) (string, error) {
	if !c.enter() {
		return "", ErrClosed
	}
	defer c.requests.Done()
	if len(rec.Key) == 0 || len(rec.Value) == 0 {
		metrics.ChainWritesTotal.WithLabelValues("invalid").Inc()
		return "", fmt.Errorf("%w: empty key or value", ErrInvalidArgument)
	}

	if err := c.store.Put(rec.Key, rec.Value); err != nil {
		metrics.ChainWritesTotal.WithLabelValues("storage_error").Inc()
		return "", fmt.Errorf("%w: persist write %q: %w", ErrStorage, rec.ID, err)
	}

	next, err := c.peers.Get(ctx, Next)
	if err != nil {
		metrics.ChainWritesTotal.WithLabelValues("forward_failed").Inc()
		c.log.Error("successor unavailable, write kept locally", "id", rec.ID, "error", err)
		return "", err
	}

	if next == nil {
		metrics.ChainWritesTotal.WithLabelValues("tail").Inc()
		c.log.Debug("write persisted at tail", "id", rec.ID)
		c.emitTailAck(rec.ID)
		return rec.ID, nil
	}

	c.tracker.BeginForward(rec.ID)
	start := time.Now()
	callCtx, cancel := c.callContext(ctx)
	err = next.Update(callCtx, rec)
	cancel()
	metrics.ChainForwardDuration.WithLabelValues(Next.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		c.tracker.AbortForward(rec.ID)
		metrics.ChainWritesTotal.WithLabelValues("forward_failed").Inc()
		perr := c.peerFailure(Next, next, err)
		c.log.Error("forward failed, write kept locally", "id", rec.ID, "error", perr)
		return "", perr
	}

	c.tracker.MarkForwarded(rec.ID)
	metrics.ChainWritesTotal.WithLabelValues("forwarded").Inc()
	c.log.Debug("write forwarded", "id", rec.ID, "next", c.peers.Addr(Next))
	return rec.ID, nil
}

// HandleAck retires id from the pending set and passes the acknowledgment on
// to the predecessor. Acks for unknown or already retired ids still propagate.
func (c *Coordinator) HandleAck(ctx context.Context, id string) error {
	if !c.enter() {
		return ErrClosed
	}
	defer c.requests.Done()
	if id == "" {
		metrics.ChainAcksTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: empty write id", ErrInvalidArgument)
	}

	if !c.tracker.ClearPending(id) {
		c.log.Debug("ack for write that is not pending", "id", id)
	}

	return c.propagateAck(ctx, id)
}

// HandleQuery reads key from the local store.
func (c *Coordinator) HandleQuery(_ context.Context, id string, key []byte) (QueryResult, error) {
	if len(key) == 0 {
		return QueryResult{}, fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}

	value, ok, err := c.store.Get(key)
	if err != nil {
		return QueryResult{}, fmt.Errorf("%w: read %q: %w", ErrStorage, key, err)
	}
	if !ok {
		return QueryResult{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	return QueryResult{ID: id, Key: key, Value: value}, nil
}

// Inspect reports the node's role, neighbours and outstanding writes.
func (c *Coordinator) Inspect() NodeStatus {
	snap := c.tracker.Snapshot()
	return NodeStatus{
		Role:     c.position.Role(),
		NextAddr: c.position.NextAddr,
		PrevAddr: c.position.PrevAddr,
		Sent:     snap.Sent,
		Pending:  snap.Pending,
	}
}

// Close waits for the updates and acks already accepted, then for the tail
// acknowledgments they started, and closes the cached peer connections. Calls
// arriving afterwards fail with ErrClosed.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.requests.Wait()
	c.tailAck.Wait()
	return c.peers.Close()
}

func (c *Coordinator) propagateAck(ctx context.Context, id string) error {
	prev, err := c.peers.Get(ctx, Prev)
	if err != nil {
		metrics.ChainAcksTotal.WithLabelValues("forward_failed").Inc()
		return err
	}
	if prev == nil {
		metrics.ChainAcksTotal.WithLabelValues("head").Inc()
		c.log.Debug("ack reached head", "id", id)
		return nil
	}

	start := time.Now()
	callCtx, cancel := c.callContext(ctx)
	err = prev.AckWrite(callCtx, id)
	cancel()
	metrics.ChainForwardDuration.WithLabelValues(Prev.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ChainAcksTotal.WithLabelValues("forward_failed").Inc()
		return c.peerFailure(Prev, prev, err)
	}

	metrics.ChainAcksTotal.WithLabelValues("forwarded").Inc()
	return nil
}

// emitTailAck starts the backward acknowledgment wave for a write this node
// persisted with no successor. It runs detached from the request so the
// Update reply does not wait on the predecessors. Callers hold a request slot,
// so Close cannot reach tailAck.Wait before the Add below.
func (c *Coordinator) emitTailAck(id string) {
	if c.position.PrevAddr == "" {
		metrics.ChainTailAcksTotal.WithLabelValues("local").Inc()
		return
	}

	c.tailAck.Add(1)

	go func() {
		defer c.tailAck.Done()

		if err := c.propagateAck(context.Background(), id); err != nil {
			metrics.ChainTailAcksTotal.WithLabelValues("failed").Inc()
			c.log.Error("tail ack failed", "id", id, "error", err)
			return
		}
		metrics.ChainTailAcksTotal.WithLabelValues("sent").Inc()
	}()
}

func (c *Coordinator) peerFailure(dir Direction, p Peer, err error) error {
	switch {
	case errors.Is(err, ErrPeerUnreachable):
		c.peers.Invalidate(dir, p)
	case errors.Is(err, ErrReplication), errors.Is(err, context.Canceled):
	default:
		c.peers.Invalidate(dir, p)
		err = fmt.Errorf("%w: %w", ErrPeerUnreachable, err)
	}

	return &PeerError{Direction: dir, Addr: c.peers.Addr(dir), Err: err}
}

func (c *Coordinator) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.callTimeout)
}

// enter takes a request slot unless the coordinator is closed.
func (c *Coordinator) enter() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.requests.Add(1)
	return true
}
