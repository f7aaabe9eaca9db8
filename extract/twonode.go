// File: twonode.go
// Role: extracts the pivot's G-side truth table for a Supp3 two-node
// commit (§4.6's two-node case), once the H-side function is already
// known. H's variable doesn't exist as a SAT literal until the new node
// is actually committed to the network, so this evaluates the pivot with
// H's contribution folded in via a representative hIdx assignment instead
// of a real H-node variable: since Supp3's own SAT certificate already
// proved the pivot depends on H only through H's output value (never on
// which specific hIdx assignment produces it), any one minterm of hTruth
// per output bit is a valid stand-in.
package extract

import (
	"github.com/irifrance/gini/z"

	"github.com/lutnet/mfs/cnf"
	"github.com/lutnet/mfs/ntk"
	"github.com/lutnet/mfs/satx"
	"github.com/lutnet/mfs/window"
)

// ComputeTwoNodeFunction returns the truth table the pivot must realize
// over gIdx plus one extra "H output" variable appended last, given that
// hTruth is already the confirmed function of hIdx. gIdx and hIdx must be
// disjoint (Supp3 guarantees this by construction).
func ComputeTwoNodeFunction(n *ntk.Network, w *window.Window, gIdx, hIdx []int, hTruth uint64) (uint64, error) {
	nG, nH := len(gIdx), len(hIdx)
	if nG+1 > cnf.MaxVars {
		return 0, ErrTooManyVars
	}

	var rep [2]int
	rep[0], rep[1] = -1, -1
	for m := 0; m < (1 << nH); m++ {
		bit := int((hTruth >> uint(m)) & 1)
		if rep[bit] == -1 {
			rep[bit] = m
		}
		if rep[0] != -1 && rep[1] != -1 {
			break
		}
	}
	if rep[0] == -1 || rep[1] == -1 {
		return 0, ErrEmptyExtractedFunction
	}

	m, err := satx.BuildMiter(n, w, 1)
	if err != nil {
		return 0, err
	}
	s := m.Solver
	outVar := m.NodeVars[0][w.PivotIdx]

	var low uint64
	for mask := 0; mask < (1 << (nG + 1)); mask++ {
		hBit := (mask >> uint(nG)) & 1
		lits := make([]z.Lit, 0, nG+nH)
		for k, j := range gIdx {
			v := m.NodeVars[0][j]
			if (mask>>uint(k))&1 == 1 {
				lits = append(lits, v)
			} else {
				lits = append(lits, v.Not())
			}
		}
		hRep := rep[hBit]
		for k, j := range hIdx {
			v := m.NodeVars[0][j]
			if (hRep>>uint(k))&1 == 1 {
				lits = append(lits, v)
			} else {
				lits = append(lits, v.Not())
			}
		}
		s.Assume(lits...)
		if !s.Solve() {
			return 0, ErrInconsistent
		}
		if s.Value(outVar) {
			low |= uint64(1) << uint(mask)
		}
	}
	return broadcast(low, nG+1), nil
}
