package mfs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutnet/mfs/ntk"
)

func TestOptimizeNodeFoldsConstantXorSelf(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	// z = ci0 xor ci0 is always 0, regardless of how the truth table is
	// spelled out over a single nominal fan-in: xor-of-a-variable-with-
	// itself collapses to the constant-0 function (0x0000000000000000),
	// over a declared support of just ci0.
	z := n.CreateNode(0, []int32{int32(ci0)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, z)
	n.RecomputeAllTiming()

	e := New()
	p := New_testParams()
	accepted, err := e.OptimizeNode(n, z, p, &Stats{})
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, uint64(0), n.Truth(z))
	assert.Equal(t, 0, n.FaninNum(z))
}

func TestOptimizeNodeDropsRedundantFanin(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	pivot := n.CreateNode(0xAAAAAAAAAAAAAAAA, []int32{int32(ci0), int32(ci1)}) // f = x0
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	e := New()
	p := New_testParams()
	var stats Stats
	accepted, err := e.OptimizeNode(n, pivot, p, &stats)
	require.NoError(t, err)
	require.True(t, accepted)
	assert.Equal(t, 1, stats.ChangesSupp1)
	assert.Equal(t, 1, n.FaninNum(pivot))
	assert.Equal(t, []int32{int32(ci0)}, n.Fanins(pivot))
}

func TestOptimizeNodeAppliesSupp3TwoNodeMerge(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	ci2 := n.AllocNode(ntk.TypeCI, 0)
	ci3 := n.AllocNode(ntk.TypeCI, 0)
	ci4 := n.AllocNode(ntk.TypeCI, 0)
	ci5 := n.AllocNode(ntk.TypeCI, 0)
	h1 := n.CreateNode(0x8888888888888888, []int32{int32(ci0), int32(ci1)})
	h2 := n.CreateNode(0x8888888888888888, []int32{int32(ci2), int32(ci3)})
	// f = h1 xor h2 xor ci4 xor ci5, with h1 = ci0 and ci1, h2 = ci2 and
	// ci3, both fanout-1: only Supp3's merge of h1 and h2 into one new
	// node fits a 4-LUT budget, since either alone still leaves 5
	// divisors (see support.TestSupp3MergesTwoAreaCriticalFanins).
	pivot := n.CreateNode(0x6996699669966996, []int32{int32(h1), int32(h2), int32(ci4), int32(ci5)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	e := New()
	p := NewParams(WithLutSize(4), WithWindow(3, 2, 10, 100), WithArea(), WithAshen())
	var stats Stats
	accepted, err := e.OptimizeNode(n, pivot, p, &stats)
	require.NoError(t, err)
	require.True(t, accepted)
	assert.Equal(t, 1, stats.ChangesSupp3)
	assert.Equal(t, 3, n.FaninNum(pivot))
}

func TestRunVisitsEveryInteriorNodeOnce(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	a2 := n.CreateNode(0x8888888888888888, []int32{int32(ci0), int32(ci1)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, a2)
	n.RecomputeAllTiming()

	e := New()
	stats := e.Run(context.Background(), n, New_testParams())
	assert.Equal(t, 1, stats.NodesVisited)
}

// New_testParams returns a Params sized for the tiny fixtures in this
// file's tests.
func New_testParams() Params {
	return NewParams(WithLutSize(6), WithWindow(3, 2, 10, 100), WithArea())
}
