// File: window.go
// Role: top-level window assembly, orchestrating the collection passes
// above in the exact sequence their traversal-id generations depend on.
// Grounded on Acb_NtkWindow (acbMfs.c lines ~789-823).
package window

import "github.com/lutnet/mfs/ntk"

// Build assembles the bounded window around pivot. fDelay selects the
// delay-oriented TFO expansion (first hop restricted to delay-critical
// fan-outs only); divisor collection itself has no delay-mode branch (see
// divisors.go).
//
// Build returns ErrTooLarge without mutating pivot's network state further
// if the assembled window exceeds lim.NodeMax.
func Build(n *ntk.Network, pivot int, lim Limits, fDelay bool) (*Window, error) {
	tfoLevMax := int(n.LevelD(pivot)) + lim.TfoLevs

	divs := collectDivisors(n, pivot, lim.TfiLevs)
	marked := markTfoOfDivisors(n, divs, pivot, tfoLevMax, lim.FanoutMax)
	tfo, roots := deriveTfo(n, pivot, tfoLevMax, lim.FanoutMax, fDelay)
	side := collectSideInputs(n, pivot, tfo)
	remarkGeneration(n, marked)

	tfiNew, nDivs := collectNewTfi(n, pivot, divs, side)
	nodes := collectWindowNodes(n, pivot, tfiNew, tfo, roots)

	if lim.NodeMax > 0 && len(nodes) > lim.NodeMax {
		return nil, ErrTooLarge
	}

	return &Window{
		Pivot:    int32(pivot),
		PivotIdx: len(tfiNew) - 1,
		NDivs:    nDivs,
		Nodes:    nodes,
	}, nil
}
