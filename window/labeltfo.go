// File: labeltfo.go
// Role: classifies every node in the TFO-of-TFI-of-divisors region as
// "inner" (fully inside the window, re-expressed in the CNF), "root" (a
// window boundary whose value becomes a window output), or "none" (outside
// the window entirely). Grounded on Acb_ObjLabelTfo_rec/Acb_ObjLabelTfo
// (acbMfs.c lines ~572-601).
//
// The three labels ride on Network's small-offset traversal-id diff, the
// same mechanism acbUtil.c's Acb_ObjTravIdDiff/Acb_ObjSetTravIdDiff use:
// diff 0 means inner, diff 1 means root, diff 2 means none, and diffs 3/4
// (set by markTfoOfDivisors/remarkGeneration, or never marked at all) are
// the "not yet classified" inputs this pass resolves.
package window

import "github.com/lutnet/mfs/ntk"

const (
	labelInner    int32 = 0
	labelRoot     int32 = 1
	labelNone     int32 = 2
	labelTfoOfTfi int32 = 3 // pre-classification: reachable, not yet labeled
)

// labelTfoRec classifies iObj and, where it is still part of the window
// interior, recurses into its fan-outs. fFirst restricts the very first
// hop to delay-critical fan-outs only, matching the fDelay flag threaded
// through from labelTfo.
func labelTfoRec(n *ntk.Network, iObj, tfoLevMax, fanMax int, fFirst bool) int32 {
	if diff := n.TravIdDiff(iObj); diff <= 2 {
		return diff
	}
	diffBefore := n.TravIdDiff(iObj)
	n.SetTravIdDiff(iObj, labelNone)

	if n.IsCO(iObj) || int(n.LevelD(iObj)) > tfoLevMax {
		return labelNone
	}
	if int(n.LevelD(iObj)) == tfoLevMax || n.FanoutNum(iObj) > fanMax {
		if diffBefore == labelTfoOfTfi {
			n.SetTravIdDiff(iObj, labelRoot)
		}
		return n.TravIdDiff(iObj)
	}

	hasNone := false
	n.ForEachFanout(iObj, func(_, fo int) {
		if !fFirst || n.IsDelayCriticalFanin(fo, iObj) {
			if labelTfoRec(n, fo, tfoLevMax, fanMax, false) == labelNone {
				hasNone = true
			}
		}
	})
	switch {
	case hasNone && diffBefore == labelTfoOfTfi:
		n.SetTravIdDiff(iObj, labelRoot)
	case !hasNone:
		n.SetTravIdDiff(iObj, labelInner)
	}
	return n.TravIdDiff(iObj)
}

// labelTfo runs three fresh traversal generations over root's TFO (so the
// labelTfoRec memoization above has a clean "none/marked/unmarked" base to
// read travID diffs against) and returns root's own resolved label.
func labelTfo(n *ntk.Network, root, tfoLevMax, fanMax int, fDelay bool) int32 {
	n.IncTravID()
	n.IncTravID()
	n.IncTravID()
	return labelTfoRec(n, root, tfoLevMax, fanMax, fDelay)
}
