package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutnet/mfs/ntk"
)

func TestAreaVisitsHighMffcNodesFirst(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	// mid has exactly one area-critical fan-in (a2, single fan-out), giving
	// it an MffcEstimate of 1; a2 itself has zero area-critical fan-ins
	// (both ci0/ci1 are CIs), giving it an estimate of 0.
	a2 := n.CreateNode(0x8, []int32{int32(ci0), int32(ci1)})
	mid := n.CreateNode(0x2, []int32{int32(a2)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, mid)

	var order []int
	Area(n, func(id int) bool {
		order = append(order, id)
		return true
	})

	require.Equal(t, []int{mid, a2}, order)
}

func TestAreaStopsWhenVisitReturnsFalse(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	a2 := n.CreateNode(0x8, []int32{int32(ci0), int32(ci1)})
	mid := n.CreateNode(0x2, []int32{int32(a2)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, mid)

	calls := 0
	Area(n, func(id int) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestDelayQueuePopsHighestPriorityFirst(t *testing.T) {
	q := NewDelayQueue()
	q.Push(1, 10)
	q.Push(2, 50)
	q.Push(3, 20)
	assert.True(t, q.IsMember(2))

	id, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, id)

	q.Update(1, 100)
	id, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, id)

	id, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, id)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestDelayQueueUpdateOnAbsentIDPushesIt(t *testing.T) {
	q := NewDelayQueue()
	q.Update(7, 5)
	assert.True(t, q.IsMember(7))
	assert.Equal(t, 1, q.Len())
}
