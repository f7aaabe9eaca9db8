// File: miter.go
// Role: assembles an incremental SAT miter around an assembled window
// (§4.3/§6.2). Grounded on acbMfs.c's Acb_NtkWindow2Cnf (per-copy clause
// translation from each node's cached CNF, XOR-difference detection wired
// at TFO roots) and Acb_NtkWindow2Solver (replicating that structure
// `copies` times and wiring buffer-enable gates between adjacent copies'
// divisor variables).
//
// The teacher's C layout builds one flat Cnf_Dat_t containing an
// already-doubled TFO region, then relifts it nTimes via Cnf_DataLift to
// avoid a second allocation. Go has no such pressure, so BuildMiter
// allocates `copies` fully independent timeframe copies directly instead of
// one lifted array — logically the same thing Window2Solver produces (N
// independent evaluations of the window, sharing nothing but the
// buffer-enable links between adjacent copies' divisors), organized flatly.
// This flattening is recorded as an Open Question decision in DESIGN.md.
package satx

import (
	"errors"

	"github.com/irifrance/gini/z"

	"github.com/lutnet/mfs/cnf"
	"github.com/lutnet/mfs/ntk"
	"github.com/lutnet/mfs/window"
)

// ErrBadCopies is returned by BuildMiter for any copy count other than the
// three Acb_NtkWindow2Solver asserts on (1, 2, or 6).
var ErrBadCopies = errors.New("satx: copies must be 1, 2 or 6")

// Miter is an assembled multi-timeframe SAT instance over one window.
type Miter struct {
	Solver *Solver
	Win    *window.Window
	Copies int

	// NodeVars[c][j] is the SAT variable for window.Nodes[j] in copy c.
	NodeVars [][]z.Lit

	// DiffVar is true iff some TFO root disagrees between some adjacent
	// pair of copies, anywhere around the Copies-cycle. Assume DiffVar
	// true to search for a distinguishing assignment (UNSAT then means no
	// such assignment survives the divisor pins in force); assume it
	// false to require that no root disagrees.
	DiffVar z.Lit

	// Groups is 2 for a 6-copy miter and 1 otherwise, mirroring
	// Acb_NtkWindow2Solver's nGroups for the 2- and 6-copy cases (a 1-copy
	// miter has no rounds, so its single group's enables gate nothing). A 6-copy
	// miter's six adjacent-copy rounds alternate between the two groups
	// (round r uses group r%Groups), giving Supp3 two independent
	// divisor-pin spaces inside one solve: one for the candidate new
	// node's support, one for the pivot's remaining support.
	Groups int

	// GroupEnable[g][j] gates the equality buffer on divisor j for every
	// round assigned to group g: asserting it true forces that divisor's
	// variable equal across that round's pair of copies, independently of
	// every other (group, divisor) pair. Supp1/Supp2 use the single group
	// of a 2-copy miter; Supp3 tags one
	// candidate set with group 0 and the other with group 1 so a single
	// MinimizeAssumptions call shrinks both at once and the result can be
	// partitioned back by tag.
	GroupEnable [][]z.Lit
}

// BuildMiter allocates copies independent timeframes of w's CNF, wires
// XOR-difference detectors at every TFO root, and links each pair of
// adjacent copies' divisor variables with an enable-gated equality buffer.
func BuildMiter(n *ntk.Network, w *window.Window, copies int) (*Miter, error) {
	if copies != 1 && copies != 2 && copies != 6 {
		return nil, ErrBadCopies
	}

	ids := make([]int32, len(w.Nodes))
	for j, nd := range w.Nodes {
		ids[j] = nd.ID
	}
	cnf.DeriveForWindow(n, ids)

	idxOf := make(map[int32]int, len(w.Nodes))
	for j, nd := range w.Nodes {
		idxOf[nd.ID] = j
	}

	s := NewSolver()
	nodeVars := make([][]z.Lit, copies)
	for c := range nodeVars {
		nodeVars[c] = make([]z.Lit, len(w.Nodes))
		for j := range w.Nodes {
			nodeVars[c][j] = s.NewVar()
		}
	}

	for c := 0; c < copies; c++ {
		for j, nd := range w.Nodes {
			if nd.Leaf {
				continue
			}
			faninIDs := n.Fanins(int(nd.ID))
			vars := make([]z.Lit, len(faninIDs)+1)
			for k, f := range faninIDs {
				vars[k] = nodeVars[c][idxOf[f]]
			}
			vars[len(faninIDs)] = nodeVars[c][j]
			addNodeClauses(s, cnf.DeriveForNode(n, int(nd.ID)), vars)
		}
	}

	groups := 1
	if copies > 2 {
		groups = 2
	}
	nRounds := copies - 1
	if copies > 2 {
		nRounds = copies
	}

	groupEnable := make([][]z.Lit, groups)
	for g := range groupEnable {
		groupEnable[g] = make([]z.Lit, w.NDivs)
		for j := range groupEnable[g] {
			groupEnable[g][j] = s.NewVar()
		}
	}

	// The pivot itself is always a comparison point: when it has no
	// in-window fan-out (it feeds a CO directly, as in the simplest
	// windows), the TFO side is empty and the pivot is the only root.
	rootIdx := map[int]bool{w.PivotIdx: true}
	for j := w.TfiLen(); j < len(w.Nodes); j++ {
		if w.Nodes[j].Leaf {
			rootIdx[j] = true
		}
	}

	var diffParts []z.Lit
	for round := 0; round < nRounds; round++ {
		a, b := round, (round+1)%copies
		group := round % groups
		for j := range rootIdx {
			d := s.NewVar()
			addXorDetect(s, nodeVars[a][j], nodeVars[b][j], d)
			diffParts = append(diffParts, d)
		}
		for j := 0; j < w.NDivs; j++ {
			addEqualityBuffer(s, nodeVars[a][j], nodeVars[b][j], groupEnable[group][j])
		}
	}
	diffVar := s.NewVar()
	addOrInto(s, diffVar, diffParts)

	return &Miter{
		Solver:      s,
		Win:         w,
		Copies:      copies,
		NodeVars:    nodeVars,
		DiffVar:     diffVar,
		Groups:      groups,
		GroupEnable: groupEnable,
	}, nil
}

// addNodeClauses translates one node's cached CNF byte string into solver
// clauses, resolving local variable indices through vars (fan-in positions
// in order, then the node's own output variable last).
func addNodeClauses(s *Solver, buf []byte, vars []z.Lit) {
	for _, clause := range cnf.Decode(buf) {
		lits := make([]z.Lit, len(clause))
		for i, l := range clause {
			lit := vars[l.Var]
			if l.Neg {
				lit = lit.Not()
			}
			lits[i] = lit
		}
		s.AddClause(lits...)
	}
}
