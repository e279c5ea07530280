package chain

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_ForwardThenAck(t *testing.T) {
	tr := NewTracker()

	tr.MarkForwarded("w1")
	require.True(t, tr.WasSent("w1"))
	require.True(t, tr.IsPending("w1"))

	require.True(t, tr.ClearPending("w1"))
	require.True(t, tr.WasSent("w1"))
	require.False(t, tr.IsPending("w1"))
}

func TestTracker_ClearPendingIsIdempotent(t *testing.T) {
	tr := NewTracker()
	tr.MarkForwarded("w1")

	require.True(t, tr.ClearPending("w1"))
	require.False(t, tr.ClearPending("w1"))
	require.False(t, tr.IsPending("w1"))
}

func TestTracker_MarkIsIdempotent(t *testing.T) {
	tr := NewTracker()
	tr.MarkSent("w1")
	tr.MarkSent("w1")
	tr.MarkPending("w1")
	tr.MarkPending("w1")

	snap := tr.Snapshot()
	require.Equal(t, []string{"w1"}, snap.Sent)
	require.Equal(t, []string{"w1"}, snap.Pending)
}

func TestTracker_EarlyAckIsConsumedByRegistration(t *testing.T) {
	tr := NewTracker()

	tr.BeginForward("w1")
	require.False(t, tr.ClearPending("w1"))
	tr.MarkForwarded("w1")

	require.True(t, tr.WasSent("w1"))
	require.False(t, tr.IsPending("w1"))
}

func TestTracker_AckWithoutForwardInFlightIsNotParked(t *testing.T) {
	tr := NewTracker()

	require.False(t, tr.ClearPending("w1"))

	tr.BeginForward("w1")
	tr.MarkForwarded("w1")
	require.True(t, tr.IsPending("w1"))
}

func TestTracker_RetriedIdDrainsAfterItsOwnAck(t *testing.T) {
	tr := NewTracker()

	tr.BeginForward("w1")
	tr.MarkForwarded("w1")
	require.True(t, tr.ClearPending("w1"))

	// retry, ack overtakes registration
	tr.BeginForward("w1")
	require.False(t, tr.ClearPending("w1"))
	tr.MarkForwarded("w1")
	require.False(t, tr.IsPending("w1"))

	// retry, ack after registration
	tr.BeginForward("w1")
	tr.MarkForwarded("w1")
	require.True(t, tr.IsPending("w1"))
	require.True(t, tr.ClearPending("w1"))

	snap := tr.Snapshot()
	require.Equal(t, []string{"w1"}, snap.Sent)
	require.Empty(t, snap.Pending)
}

func TestTracker_RetryOfUnackedIdDrains(t *testing.T) {
	tr := NewTracker()

	tr.BeginForward("w1")
	tr.MarkForwarded("w1")

	tr.BeginForward("w1")
	require.True(t, tr.ClearPending("w1"))
	tr.MarkForwarded("w1")

	require.False(t, tr.IsPending("w1"))
}

func TestTracker_AbortedForwardDropsParkedAck(t *testing.T) {
	tr := NewTracker()

	tr.BeginForward("w1")
	require.False(t, tr.ClearPending("w1"))
	tr.AbortForward("w1")
	require.False(t, tr.WasSent("w1"))

	tr.BeginForward("w1")
	tr.MarkForwarded("w1")
	require.True(t, tr.IsPending("w1"))
}

func TestTracker_OverlappingForwardsKeepParkedAck(t *testing.T) {
	tr := NewTracker()

	tr.BeginForward("w1")
	tr.BeginForward("w1")
	require.False(t, tr.ClearPending("w1"))

	tr.AbortForward("w1")
	tr.MarkForwarded("w1")
	require.False(t, tr.IsPending("w1"))
}

func TestTracker_SnapshotIsSortedCopy(t *testing.T) {
	tr := NewTracker()
	tr.MarkForwarded("c")
	tr.MarkForwarded("a")
	tr.MarkForwarded("b")
	tr.ClearPending("a")

	snap := tr.Snapshot()
	require.Equal(t, []string{"a", "b", "c"}, snap.Sent)
	require.Equal(t, []string{"b", "c"}, snap.Pending)

	snap.Sent[0] = "z"
	require.Equal(t, []string{"a", "b", "c"}, tr.Snapshot().Sent)
}

func TestTracker_PendingIsSubsetOfSent(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := range 100 {
		id := fmt.Sprintf("w%d", i)
		tr.BeginForward(id)
		wg.Add(2)
		go func() {
			defer wg.Done()
			tr.MarkForwarded(id)
		}()
		go func() {
			defer wg.Done()
			tr.ClearPending(id)
		}()
	}
	wg.Wait()

	snap := tr.Snapshot()
	require.Len(t, snap.Sent, 100)
	require.Empty(t, snap.Pending)
}
