// File: divisors.go
// Role: bounded-TFI divisor collection (Acb_NtkDivisors_rec/Acb_NtkDivisors,
// acbMfs.c lines ~464-518).
//
// acbMfs.c guards a delay-oriented variant (start from the pivot's critical
// fan-ins, then add the rest) behind a literal `if ( 0 )`: the upstream
// engine ships it disabled. collectDivisors only implements the live
// branch; see SPEC_FULL.md's Open Question decisions for why delay-mode
// divisor seeding stays out of scope here too.
package window

import "github.com/lutnet/mfs/ntk"

// collectDivisorsRec walks fan-ins of iObj depth-first, stopping once
// tfiLevMin goes negative (for non-CI objects), and appends each object to
// divs after its fan-ins — a postorder closure, same shape as
// Network.CollectTFI but depth-bounded and travID-marked by the caller's
// generation.
func collectDivisorsRec(n *ntk.Network, iObj, tfiLevMin int, divs *[]int32) {
	if !n.IsCI(iObj) && tfiLevMin < 0 {
		return
	}
	if n.SetTravIdCur(iObj) {
		return
	}
	n.ForEachFanin(iObj, func(_, f int) {
		collectDivisorsRec(n, f, tfiLevMin-1, divs)
	})
	*divs = append(*divs, int32(iObj))
}

// collectDivisors returns pivot's bounded fan-in divisors: the depth-bounded
// TFI closure of pivot (pivot itself excluded), followed by any of pivot's
// direct fan-ins the depth bound didn't already reach.
func collectDivisors(n *ntk.Network, pivot, tfiLevMin int) []int32 {
	divs := make([]int32, 0, 32)
	n.IncTravID()

	collectDivisorsRec(n, pivot, tfiLevMin, &divs)
	// collectDivisorsRec always appends pivot last; drop it.
	divs = divs[:len(divs)-1]

	n.ForEachFanin(pivot, func(_, f int) {
		if !n.SetTravIdCur(f) {
			divs = append(divs, int32(f))
		}
	})
	return divs
}
