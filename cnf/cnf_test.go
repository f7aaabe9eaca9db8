package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutnet/mfs/ntk"
)

// parseClauses splits a CNF byte string into clauses of literal bytes.
func parseClauses(t *testing.T, buf []byte) [][]byte {
	t.Helper()
	var clauses [][]byte
	var cur []byte
	for _, b := range buf {
		if b == term {
			clauses = append(clauses, cur)
			cur = nil
			continue
		}
		cur = append(cur, b)
	}
	require.Nil(t, cur, "byte string must end on a clause terminator")
	return clauses
}

func evalClause(t *testing.T, clause []byte, assign []bool, y bool) bool {
	t.Helper()
	for _, l := range clause {
		v, neg := int(l/2), l%2 == 1
		var val bool
		if v == len(assign) {
			val = y
		} else {
			val = assign[v]
		}
		if neg {
			val = !val
		}
		if val {
			return true
		}
	}
	return false
}

// checkCnfMatchesTruth brute-forces every input assignment and confirms the
// derived clause set is satisfied only when y equals truth's bit at that
// assignment — i.e. the clauses functionally define y = f(x).
func checkCnfMatchesTruth(t *testing.T, truth uint64, nVars int) {
	t.Helper()
	buf := DeriveCnfFromTruth(truth, nVars)
	clauses := parseClauses(t, buf)

	for m := 0; m < (1 << nVars); m++ {
		assign := make([]bool, nVars)
		for v := 0; v < nVars; v++ {
			assign[v] = (m>>v)&1 == 1
		}
		want := (truth>>m)&1 == 1
		for _, y := range []bool{true, false} {
			sat := true
			for _, c := range clauses {
				if !evalClause(t, c, assign, y) {
					sat = false
					break
				}
			}
			assert.Equal(t, y == want, sat, "assignment %v, y=%v, truth=%#x", assign, y, truth)
		}
	}
}

func TestDeriveCnfFromTruthMatchesTruthTable(t *testing.T) {
	cases := []struct {
		name  string
		truth uint64
		nVars int
	}{
		{"const0", 0, 0},
		{"const1", ^uint64(0), 0},
		{"buf", 0xAAAAAAAAAAAAAAAA, 1},
		{"inv", 0x5555555555555555, 1},
		{"and2", 0x8888888888888888, 2},
		{"xor2", 0x6666666666666666, 2},
		{"mux3", 0xD8D8D8D8D8D8D8D8, 3},
		{"and6", 0x8000000000000000, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkCnfMatchesTruth(t, tc.truth, tc.nVars)
		})
	}
}

func TestDeriveForNodeCachesResult(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	a2 := n.CreateNode(0x8888888888888888, []int32{int32(ci0), int32(ci1)})

	require.Nil(t, n.Cnf(a2))
	first := DeriveForNode(n, a2)
	require.NotNil(t, n.Cnf(a2))
	second := DeriveForNode(n, a2)
	assert.Equal(t, first, second)
}

func TestDeriveForNodeInvalidatesOnTruthChange(t *testing.T) {
	n := ntk.NewNetwork(6)
	ci0 := n.AllocNode(ntk.TypeCI, 0)
	ci1 := n.AllocNode(ntk.TypeCI, 0)
	a2 := n.CreateNode(0x8888888888888888, []int32{int32(ci0), int32(ci1)})
	_ = DeriveForNode(n, a2)

	require.NoError(t, n.UpdateNode(a2, 0x6666666666666666, []int32{int32(ci0), int32(ci1)}))
	assert.Nil(t, n.Cnf(a2), "truth change must invalidate the cache")

	refreshed := DeriveForNode(n, a2)
	checkCnfMatchesTruth(t, 0x6666666666666666, 2)
	assert.NotEmpty(t, refreshed)
}
