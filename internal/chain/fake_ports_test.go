package chain

import (
	"context"
	"errors"
	"sync"
)

type fakeStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	putErr error
	getErr error

	// putHook runs at the start of Put, outside the fake's lock
	putHook func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Get(key []byte) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	v, ok := s.data[string(key)]
	return v, ok, nil
}

func (s *fakeStore) Put(key, value []byte) error {
	s.mu.Lock()
	hook := s.putHook
	s.mu.Unlock()
	if hook != nil {
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.data[string(key)] = value
	return nil
}

func (s *fakeStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

type fakePeer struct {
	mu        sync.Mutex
	addr      string
	updates   []WriteRecord
	acks      []string
	updateErr error
	ackErr    error
	closed    bool

	// onUpdate and onAck run inside Update and AckWrite, outside the fake's lock
	onUpdate func(rec WriteRecord)
	onAck    func(id string)
}

func (p *fakePeer) Update(_ context.Context, rec WriteRecord) error {
	p.mu.Lock()
	p.updates = append(p.updates, rec)
	err := p.updateErr
	hook := p.onUpdate
	p.mu.Unlock()

	if hook != nil {
		hook(rec)
	}
	return err
}

func (p *fakePeer) AckWrite(_ context.Context, id string) error {
	p.mu.Lock()
	p.acks = append(p.acks, id)
	err := p.ackErr
	hook := p.onAck
	p.mu.Unlock()

	if hook != nil {
		hook(id)
	}
	return err
}

func (p *fakePeer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *fakePeer) ackCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.acks)
}

func (p *fakePeer) updateCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.updates)
}

func (p *fakePeer) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

var errDialRefused = errors.New("connection refused")

// fakeDialer hands out a fresh fakePeer per dial unless the address is
// marked down.
type fakeDialer struct {
	mu    sync.Mutex
	dials map[string]int
	down  map[string]bool
	peers map[string][]*fakePeer

	// configure runs on every new peer before it is returned
	configure func(p *fakePeer)
}

func newFakeDialer() *fakeDialer {
	return &fakeDialer{
		dials: make(map[string]int),
		down:  make(map[string]bool),
		peers: make(map[string][]*fakePeer),
	}
}

func (d *fakeDialer) Dial(_ context.Context, addr string) (Peer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dials[addr]++
	if d.down[addr] {
		return nil, errDialRefused
	}

	p := &fakePeer{addr: addr}
	if d.configure != nil {
		d.configure(p)
	}
	d.peers[addr] = append(d.peers[addr], p)
	return p, nil
}

func (d *fakeDialer) setDown(addr string, down bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.down[addr] = down
}

func (d *fakeDialer) dialCount(addr string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials[addr]
}

func (d *fakeDialer) lastPeer(addr string) *fakePeer {
	d.mu.Lock()
	defer d.mu.Unlock()
	ps := d.peers[addr]
	if len(ps) == 0 {
		return nil
	}
	return ps[len(ps)-1]
}

func (d *fakeDialer) totalDials() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.dials {
		n += c
	}
	return n
}
