package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutnet/mfs/ntk"
	"github.com/lutnet/mfs/window"
)

func TestComputeFunctionRecoversRestrictedTruth(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	pivot := n.CreateNode(0x8888888888888888, []int32{int32(ci0), int32(ci1)}) // and2
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	w, err := window.Build(n, pivot, window.Limits{TfiLevs: 3, TfoLevs: 2, FanoutMax: 10, NodeMax: 100}, false)
	require.NoError(t, err)

	truth, err := ComputeFunction(n, w, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8888888888888888), truth)
}

func TestComputeFunctionOverSingleVarGivesBuffer(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	// f(x0,x1) = x0, independent of x1.
	pivot := n.CreateNode(0xAAAAAAAAAAAAAAAA, []int32{int32(ci0), int32(ci1)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	w, err := window.Build(n, pivot, window.Limits{TfiLevs: 3, TfoLevs: 2, FanoutMax: 10, NodeMax: 100}, false)
	require.NoError(t, err)

	truth, err := ComputeFunction(n, w, []int{0})
	require.NoError(t, err)
	assert.Equal(t, uint64(0xAAAAAAAAAAAAAAAA), truth)
}

func TestComputeFunctionRejectsOversizeSupport(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	pivot := n.CreateNode(0xAAAAAAAAAAAAAAAA, []int32{int32(ci0)})
	co := n.AllocNode(ntk.TypeCO, 1)
	n.AddFanin(co, pivot)
	n.RecomputeAllTiming()

	w, err := window.Build(n, pivot, window.Limits{TfiLevs: 3, TfoLevs: 2, FanoutMax: 10, NodeMax: 100}, false)
	require.NoError(t, err)

	_, err = ComputeFunction(n, w, []int{0, 0, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrTooManyVars)
}
