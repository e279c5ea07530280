package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument rejects an update with an empty key or value, or an empty ack id.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorage wraps a local store failure. Nothing is forwarded after it.
	ErrStorage = errors.New("storage failure")

	// ErrNotFound is returned by a query for a key the local store does not hold.
	ErrNotFound = errors.New("key not found")

	// ErrPeerUnreachable marks connection or transport failures towards a neighbour.
	// The cached connection is dropped when a call fails with it.
	ErrPeerUnreachable = errors.New("peer unreachable")

	// ErrReplication is returned when the neighbour answered, but with a failure of its own.
	ErrReplication = errors.New("replication failed")

	// ErrClosed is returned by updates and acks that arrive after Close.
	ErrClosed = errors.New("coordinator closed")
)

// PeerError is a failed call towards the neighbour at Addr.
type PeerError struct {
	Direction Direction
	Addr      string
	Err       error
}

func (e *PeerError) Error() string {
	return fmt.Sprintf("%s peer %s: %v", e.Direction, e.Addr, e.Err)
}

func (e *PeerError) Unwrap() error {
	return e.Err
}
