package support

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutnet/mfs/ntk"
	"github.com/lutnet/mfs/window"
)

// buildRedundantFanin wires a pivot whose truth table ignores one of its
// two declared fan-ins (AND2 on ci0,ci1 that never reads ci1's value would
// need a real truth table; instead we use a buffer of ci0 over a 2-input
// support, i.e. truth independent of variable 1), so Supp1 should find
// dropping that fan-in behavior-preserving.
func buildRedundantFanin(t *testing.T) (*ntk.Network, *window.Window) {
	t.Helper()
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	// 0xAAAAAAAAAAAAAAAA is "var0" regardless of var1: f(x0,x1) = x0.
	pivot := n.CreateNode(0xAAAAAAAAAAAAAAAA, []int32{int32(ci0), int32(ci1)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	w, err := window.Build(n, pivot, window.Limits{TfiLevs: 3, TfoLevs: 2, FanoutMax: 10, NodeMax: 100}, false)
	require.NoError(t, err)
	return n, w
}

func TestSupp1FindsRedundantFanin(t *testing.T) {
	n, w := buildRedundantFanin(t)
	res, err := Supp1(n, w)
	require.NoError(t, err)
	require.NotNil(t, res, "dropping the unread fan-in must be certified safe")
	assert.Len(t, res.DivIdx, w.NDivs-1)
}

// buildTwoNodeMergeCandidate wires a pivot whose function is the 4-input
// parity of two fanout-1 AND nodes (h1, h2, each area critical) and two
// side inputs (ci4, ci5): f = h1 xor h2 xor ci4 xor ci5, with
// h1 = ci0 and ci1, h2 = ci2 and ci3. Re-expressing the pivot as
// G(H(ci0,ci1,ci2,ci3), ci4, ci5) with H = h1 xor h2 is a valid two-node
// decomposition that neither Supp1 (the pivot genuinely reads all four of
// its current fan-ins) nor Supp2 (expanding either h1 or h2 alone still
// leaves 5 divisors, one over a 4-LUT budget) can certify, since it needs
// both area-critical fan-ins folded into one new node at once.
type twoNodeMergeFixture struct {
	n              *ntk.Network
	pivot, lutSize int
	ci0, ci1, ci2, ci3, ci4, ci5 int32
}

func buildTwoNodeMergeCandidate(t *testing.T) twoNodeMergeFixture {
	t.Helper()
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	ci2 := n.AllocNode(ntk.TypeCI, 0)
	ci3 := n.AllocNode(ntk.TypeCI, 0)
	ci4 := n.AllocNode(ntk.TypeCI, 0)
	ci5 := n.AllocNode(ntk.TypeCI, 0)
	h1 := n.CreateNode(0x8888888888888888, []int32{int32(ci0), int32(ci1)})
	h2 := n.CreateNode(0x8888888888888888, []int32{int32(ci2), int32(ci3)})
	pivot := n.CreateNode(0x6996699669966996, []int32{int32(h1), int32(h2), int32(ci4), int32(ci5)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()
	return twoNodeMergeFixture{
		n: n, pivot: pivot, lutSize: 4,
		ci0: int32(ci0), ci1: int32(ci1), ci2: int32(ci2),
		ci3: int32(ci3), ci4: int32(ci4), ci5: int32(ci5),
	}
}

func TestSupp3MergesTwoAreaCriticalFanins(t *testing.T) {
	f := buildTwoNodeMergeCandidate(t)
	n, pivot, lutSize := f.n, f.pivot, f.lutSize
	w, err := window.Build(n, pivot, window.Limits{TfiLevs: 3, TfoLevs: 2, FanoutMax: 10, NodeMax: 100}, false)
	require.NoError(t, err)
	require.GreaterOrEqual(t, n.MffcEstimate(pivot), 2)

	// Supp1 and Supp2 both fail first, confirming the merge genuinely
	// needs Supp3's two-node machinery.
	s1, err := Supp1(n, w)
	require.NoError(t, err)
	assert.Nil(t, s1)
	s2, err := Supp2(n, w, false, lutSize)
	require.NoError(t, err)
	assert.Nil(t, s2)

	h, g, err := Supp3(n, w, lutSize)
	require.NoError(t, err)
	require.NotNil(t, h)
	require.NotNil(t, g)
	assert.LessOrEqual(t, len(h.DivIdx), lutSize)
	assert.LessOrEqual(t, len(g.DivIdx), lutSize-1)

	idSet := func(idx []int) map[int32]bool {
		ids := make(map[int32]bool, len(idx))
		for _, j := range idx {
			ids[w.Nodes[j].ID] = true
		}
		return ids
	}
	hIDs, gIDs := idSet(h.DivIdx), idSet(g.DivIdx)
	assert.ElementsMatch(t, []int32{f.ci0, f.ci1, f.ci2, f.ci3}, keys(hIDs))
	assert.ElementsMatch(t, []int32{f.ci4, f.ci5}, keys(gIDs))
}

func keys(m map[int32]bool) []int32 {
	out := make([]int32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestSupp1FindsNothingWhenBothFaninsMatter(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	pivot := n.CreateNode(0x8888888888888888, []int32{int32(ci0), int32(ci1)}) // and2
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	w, err := window.Build(n, pivot, window.Limits{TfiLevs: 3, TfoLevs: 2, FanoutMax: 10, NodeMax: 100}, false)
	require.NoError(t, err)

	res, err := Supp1(n, w)
	require.NoError(t, err)
	assert.Nil(t, res, "and2 genuinely needs both fan-ins")
}
