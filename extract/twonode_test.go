package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutnet/mfs/ntk"
	"github.com/lutnet/mfs/window"
)

func TestComputeTwoNodeFunctionRecoversXorOfAndAndSideInput(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	ci2 := n.AllocNode(ntk.TypeCI, 0)
	// f(x0,x1,x2) = (x0 AND x1) XOR x2, decomposed as G(H,x2) with
	// H(x0,x1) = x0 AND x1.
	pivot := n.CreateNode(0x7878787878787878, []int32{int32(ci0), int32(ci1), int32(ci2)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	w, err := window.Build(n, pivot, window.Limits{TfiLevs: 3, TfoLevs: 2, FanoutMax: 10, NodeMax: 100}, false)
	require.NoError(t, err)

	hTruth := uint64(0x8888888888888888) // AND(ci0, ci1)
	gTruth, err := ComputeTwoNodeFunction(n, w, []int{2}, []int{0, 1}, hTruth)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x6666666666666666), gTruth)
}

func TestComputeTwoNodeFunctionRejectsConstantHTruth(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	pivot := n.CreateNode(0xAAAAAAAAAAAAAAAA, []int32{int32(ci0), int32(ci1)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	w, err := window.Build(n, pivot, window.Limits{TfiLevs: 3, TfoLevs: 2, FanoutMax: 10, NodeMax: 100}, false)
	require.NoError(t, err)

	_, err = ComputeTwoNodeFunction(n, w, []int{0}, []int{1}, 0)
	assert.ErrorIs(t, err, ErrEmptyExtractedFunction)
}
