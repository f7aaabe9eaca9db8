// File: extract.go
// Role: recovers the truth table a new node must have once its support has
// been fixed to a divisor subset (§4.5). Grounded on Acb_ComputeFunction
// (acbMfs.c, ~line 347 onward): repeatedly solve under an assumption fixing
// the candidate support's values, read the pivot's output bit off the
// model, and move to the next assignment. This module implements that
// direct bit-by-bit enumeration; it does not port Acb_ComputeFunction's
// cube-expansion (fExpand) refinement, which generalizes each found model
// into a larger don't-care cube before moving on purely as a speed
// optimization — every output bit is still derived correctly, just with
// one SAT call per minterm instead of one per maximal cube (see
// DESIGN.md).
package extract

import (
	"errors"

	"github.com/irifrance/gini/z"

	"github.com/lutnet/mfs/cnf"
	"github.com/lutnet/mfs/ntk"
	"github.com/lutnet/mfs/satx"
	"github.com/lutnet/mfs/window"
)

// ErrTooManyVars is returned when the requested support exceeds the K<=6
// truth-table word size.
var ErrTooManyVars = errors.New("extract: support exceeds max LUT size")

// ErrInconsistent is returned when the window's own CNF is unsatisfiable
// under a support assignment that should always be free — an internal
// consistency failure in window/CNF construction, never expected in a
// well-formed window.
var ErrInconsistent = errors.New("extract: window CNF unsatisfiable for a free support assignment")

var ErrEmptyExtractedFunction = errors.New("extract: hTruth is constant, no representative minterm for the other output value")

// ComputeFunction returns the truth table the pivot must realize when its
// support is restricted to the divisors named by idx (positions into
// w.Nodes[:w.NDivs]), by enumerating every assignment of those divisors
// and reading the pivot's value off a single-copy miter.
func ComputeFunction(n *ntk.Network, w *window.Window, idx []int) (uint64, error) {
	if len(idx) > cnf.MaxVars {
		return 0, ErrTooManyVars
	}

	m, err := satx.BuildMiter(n, w, 1)
	if err != nil {
		return 0, err
	}
	s := m.Solver
	outVar := m.NodeVars[0][w.PivotIdx]

	nVars := len(idx)
	var low uint64
	for mask := 0; mask < (1 << nVars); mask++ {
		lits := make([]z.Lit, nVars)
		for k, j := range idx {
			v := m.NodeVars[0][j]
			if (mask>>k)&1 == 1 {
				lits[k] = v
			} else {
				lits[k] = v.Not()
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
	return broadcast(low, nVars), nil
}

// broadcast replicates the low 2^nVars bits of a truth table up through
// all 64 bits, the storage convention CreateNode/UpdateNode expect.
func broadcast(low uint64, nVars int) uint64 {
	bits := uint(1) << uint(nVars)
	if bits >= 64 {
		return low
	}
	word := low & (uint64(1)<<bits - 1)
	for shift := bits; shift < 64; shift <<= 1 {
		word |= word << shift
	}
	return word
}
