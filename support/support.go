// File: support.go
// Role: the three support-search strategies tried against a pivot's window
// (§4.4), in increasing cost/MFFC-gated order. Grounded on acbMfs.c's
// Acb_NtkFindSupp1/2/3: Supp1 seeds from the pivot's own current fan-ins and
// minimizes; Supp2 additionally tries re-expressing the function over one
// area/delay-critical fan-in's own fan-ins (or, in delay mode, over every
// non-critical fan-in plus the fan-ins of every critical one); Supp3
// operates on a 6-copy miter with two tagged divisor-pin groups and tries
// every ordered pair of area-critical fan-ins, gated on MFFC>=2 the same way
// the teacher gates its most expensive search. All three assume a single
// candidate set is sufficient by searching for a counterexample (DiffVar
// true) and minimizing on UNSAT via satx.MinimizeAssumptions, per
// Acb_NtkFindSupp1/2/3's shared sat_solver_minimize_assumptions call.
package support

import (
	"github.com/irifrance/gini/z"

	"github.com/lutnet/mfs/ntk"
	"github.com/lutnet/mfs/satx"
	"github.com/lutnet/mfs/window"
)

// Result is a found replacement support for the pivot: the subset of
// window divisor indices (into w.Nodes[:w.NDivs]) the pivot can be
// re-expressed over without changing its observable behavior.
type Result struct {
	DivIdx []int
}

// divIdxOf maps every divisor's network id to its position in
// w.Nodes[:w.NDivs].
func divIdxOf(w *window.Window) map[int32]int {
	idxOf := make(map[int32]int, w.NDivs)
	for j, nd := range w.Nodes[:w.NDivs] {
		idxOf[nd.ID] = j
	}
	return idxOf
}

// faninDivIdxExcept returns obj's fan-ins mapped to divisor indices, in
// fan-in order, skipping any fan-in listed in except.
func faninDivIdxExcept(n *ntk.Network, idxOf map[int32]int, obj int, except ...int) []int {
	var idx []int
	n.ForEachFanin(obj, func(_, f int) {
		for _, e := range except {
			if f == e {
				return
			}
		}
		if j, ok := idxOf[int32(f)]; ok {
			idx = append(idx, j)
		}
	})
	return idx
}

// appendFaninDivIdx appends obj's fan-ins (mapped to divisor indices) onto
// idx, skipping any already present.
func appendFaninDivIdx(n *ntk.Network, idxOf map[int32]int, idx []int, obj int) []int {
	seen := make(map[int]bool, len(idx))
	for _, j := range idx {
		seen[j] = true
	}
	n.ForEachFanin(obj, func(_, f int) {
		if j, ok := idxOf[int32(f)]; ok && !seen[j] {
			seen[j] = true
			idx = append(idx, j)
		}
	})
	return idx
}

// currentFaninDivIdx returns the pivot's own current fan-ins, mapped to
// divisor indices. This is the candidate base Acb_NtkFindSupp1 starts from
// (Acb_ObjForEachFaninFast), not the full bounded-TFI divisor pool.
func currentFaninDivIdx(n *ntk.Network, w *window.Window, idxOf map[int32]int) []int {
	return faninDivIdxExcept(n, idxOf, int(w.Pivot))
}

// orderByFanout returns idx sorted ascending by the fan-out count of the
// corresponding window node, via a selection sort (idx is always small
// enough that this beats pulling in sort.Slice for stability), mirroring
// Acb_NtkOrderByRefCount: a divisor with few fan-outs is more likely to be
// droppable, so trying those first gives MinimizeAssumptions's front-to-back
// deletion order the best chance of a quick shrink.
func orderByFanout(n *ntk.Network, w *window.Window, idx []int) []int {
	order := append([]int{}, idx...)
	for a := 0; a < len(order); a++ {
		best := a
		for b := a + 1; b < len(order); b++ {
			if n.FanoutNum(int(w.Nodes[order[b]].ID)) < n.FanoutNum(int(w.Nodes[order[best]].ID)) {
				best = b
			}
		}
		order[a], order[best] = order[best], order[a]
	}
	return order
}

// orderByLevel returns idx sorted ascending by forward level, mirroring
// Acb_NtkFindSupp2's Vec_IntSelectSortCost(&p->vLevelD) over the fan-ins
// spliced in from an expanded critical fan-in.
func orderByLevel(n *ntk.Network, w *window.Window, idx []int) []int {
	order := append([]int{}, idx...)
	for a := 0; a < len(order); a++ {
		best := a
		for b := a + 1; b < len(order); b++ {
			if n.LevelD(int(w.Nodes[order[b]].ID)) < n.LevelD(int(w.Nodes[order[best]].ID)) {
				best = b
			}
		}
		order[a], order[best] = order[best], order[a]
	}
	return order
}

// groupPins returns, for idx in order, the group-g enable literal of each
// divisor together with a reverse lookup from literal back to divisor
// index, used to translate a minimized assumption set back into DivIdx.
func groupPins(m *satx.Miter, group int, idx []int) ([]z.Lit, map[z.Lit]int) {
	lits := make([]z.Lit, len(idx))
	litDiv := make(map[z.Lit]int, len(idx))
	for k, j := range idx {
		l := m.GroupEnable[group][j]
		lits[k] = l
		litDiv[l] = j
	}
	return lits, litDiv
}

// trySufficient builds a copies-copy miter, pins idx's divisors equal via
// group's enable literals, and assumes a counterexample exists (DiffVar
// true) together with those pins. If that is UNSAT, idx is a sufficient
// support for the pivot's behavior; trySufficient then shrinks it with
// MinimizeAssumptions and returns the kept divisors. If it is SAT, a
// distinguishing assignment survives even with idx pinned, so idx is not
// sufficient and trySufficient reports that without minimizing.
func trySufficient(n *ntk.Network, w *window.Window, copies, group int, idx []int) (*Result, bool, error) {
	if len(idx) == 0 {
		return nil, false, nil
	}
	m, err := satx.BuildMiter(n, w, copies)
	if err != nil {
		return nil, false, err
	}
	pins, litDiv := groupPins(m, group, idx)
	m.Solver.Assume(append([]z.Lit{m.DiffVar}, pins...)...)
	if m.Solver.Solve() {
		return nil, false, nil
	}
	kept := m.Solver.MinimizeAssumptions([]z.Lit{m.DiffVar}, pins)
	out := make([]int, 0, len(kept))
	for _, l := range kept {
		out = append(out, litDiv[l])
	}
	return &Result{DivIdx: out}, true, nil
}

// Supp1 seeds its candidate set from the pivot's own current fan-ins only
// (Acb_NtkFindSupp1), orders them by ascending fan-out, and checks whether
// that whole set is a sufficient support; MinimizeAssumptions then shrinks
// it. A strict shrink (fewer divisors than the pivot already has) is the
// only case worth committing.
func Supp1(n *ntk.Network, w *window.Window) (*Result, error) {
	idxOf := divIdxOf(w)
	idx := currentFaninDivIdx(n, w, idxOf)
	if len(idx) == 0 {
		return nil, nil
	}
	idx = orderByFanout(n, w, idx)

	res, ok, err := trySufficient(n, w, 2, 0, idx)
	if err != nil || !ok {
		return nil, err
	}
	if len(res.DivIdx) >= len(idx) {
		return nil, nil
	}
	return res, nil
}

// Supp2 re-expresses the pivot over a candidate set built from one
// critical fan-in's own fan-ins spliced into the rest of the pivot's
// support, per Acb_NtkFindSupp2. delayMode selects its delay branch (expand
// every delay-critical fan-in at once) over its area branch (try each
// area-critical fan-in's expansion in turn). k is the LUT size the
// minimized result must fit.
func Supp2(n *ntk.Network, w *window.Window, delayMode bool, k int) (*Result, error) {
	pivot := int(w.Pivot)
	idxOf := divIdxOf(w)

	if delayMode {
		idx := currentFaninDivIdx(n, w, idxOf)
		var kept, expand []int
		for _, j := range idx {
			if n.IsDelayCriticalFanin(pivot, int(w.Nodes[j].ID)) {
				expand = append(expand, j)
			} else {
				kept = append(kept, j)
			}
		}
		for _, j := range expand {
			kept = appendFaninDivIdx(n, idxOf, kept, int(w.Nodes[j].ID))
		}
		kept = orderByLevel(n, w, kept)

		res, ok, err := trySufficient(n, w, 2, 0, kept)
		if err != nil {
			return nil, err
		}
		if ok && len(res.DivIdx) <= k {
			return res, nil
		}
		return nil, nil
	}

	var candidates []int
	n.ForEachFanin(pivot, func(_, f int) {
		if n.IsAreaCritical(f) {
			candidates = append(candidates, f)
		}
	})

	for _, cand := range candidates {
		idx := faninDivIdxExcept(n, idxOf, pivot, cand)
		idx = appendFaninDivIdx(n, idxOf, idx, cand)
		idx = orderByLevel(n, w, idx)

		res, ok, err := trySufficient(n, w, 2, 0, idx)
		if err != nil {
			return nil, err
		}
		if ok && len(res.DivIdx) <= k {
			return res, nil
		}
	}
	return nil, nil
}

// trySupp3Pair builds the 6-copy miter and tags the pivot's remaining
// fan-ins (excluding i and j) with group 0, and the union of i's and j's
// own fan-ins with group 1, then assumes both groups' pins together with a
// single counterexample search. On UNSAT, MinimizeAssumptions shrinks the
// combined set in one call and the result is partitioned back by tag: group
// 1 becomes the new node's support (h, capped at k), group 0 becomes the
// pivot's remaining support once the new node replaces i and j (g, capped
// at k-1 since the new node itself occupies one of the pivot's k fan-ins).
func trySupp3Pair(n *ntk.Network, w *window.Window, idxOf map[int32]int, pivot, i, j, k int) (h, g *Result, err error) {
	outer := faninDivIdxExcept(n, idxOf, pivot, i, j)
	inner := appendFaninDivIdx(n, idxOf, faninDivIdxExcept(n, idxOf, i), j)
	if len(outer) == 0 || len(inner) == 0 {
		return nil, nil, nil
	}

	m, err := satx.BuildMiter(n, w, 6)
	if err != nil {
		return nil, nil, err
	}
	outerLits, outerDiv := groupPins(m, 0, outer)
	innerLits, innerDiv := groupPins(m, 1, inner)

	assume := append([]z.Lit{m.DiffVar}, outerLits...)
	assume = append(assume, innerLits...)
	m.Solver.Assume(assume...)
	if m.Solver.Solve() {
		return nil, nil, nil
	}

	pins := append(append([]z.Lit{}, outerLits...), innerLits...)
	minimized := m.Solver.MinimizeAssumptions([]z.Lit{m.DiffVar}, pins)

	var gIdx, hIdx []int
	for _, l := range minimized {
		if d, ok := outerDiv[l]; ok {
			gIdx = append(gIdx, d)
		} else if d, ok := innerDiv[l]; ok {
			hIdx = append(hIdx, d)
		}
	}
	if len(gIdx) == 0 || len(gIdx) > k-1 || len(hIdx) == 0 || len(hIdx) > k {
		return nil, nil, nil
	}
	return &Result{DivIdx: hIdx}, &Result{DivIdx: gIdx}, nil
}

// Supp3 is the most expensive search: it tries every ordered pair of the
// pivot's area-critical fan-ins as the two roots of a candidate new node,
// mirroring Acb_NtkFindSupp3's two nested loops. Callers gate this on
// MFFC >= 2, same as the teacher. k is the LUT size both the new node's
// support (h) and the pivot's post-replacement support (g, implicitly
// g+1) must fit.
func Supp3(n *ntk.Network, w *window.Window, k int) (h, g *Result, err error) {
	pivot := int(w.Pivot)
	idxOf := divIdxOf(w)

	var crit []int
	n.ForEachFanin(pivot, func(_, f int) {
		if n.IsAreaCritical(f) {
			crit = append(crit, f)
		}
	})

	for _, i := range crit {
		for _, j := range crit {
			if i == j {
				continue
			}
			h, g, err := trySupp3Pair(n, w, idxOf, pivot, i, j, k)
			if err != nil {
				return nil, nil, err
			}
			if h != nil && g != nil {
				return h, g, nil
			}
		}
	}
	return nil, nil, nil
}
