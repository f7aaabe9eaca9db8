// File: derivetfo.go
// Role: walks the labels labelTfo just assigned and turns them into two
// ordered lists: tfo (every inner node plus every root, postorder) and
// roots (just the roots). Grounded on Acb_ObjDeriveTfo_rec/Acb_ObjDeriveTfo
// (acbMfs.c lines ~615-645).
package window

import "github.com/lutnet/mfs/ntk"

func deriveTfoRec(n *ntk.Network, iObj int, tfo, roots *[]int32, fFirst bool) {
	diff := n.TravIdDiff(iObj)
	if n.SetTravIdCur(iObj) {
		return
	}
	if diff == 2 { // root: labelRoot(1) re-read one generation later
		*roots = append(*roots, int32(iObj))
		*tfo = append(*tfo, int32(iObj))
		return
	}
	// diff == 1 here: labelInner(0) re-read one generation later.
	n.ForEachFanout(iObj, func(_, fo int) {
		if !fFirst || n.IsDelayCriticalFanin(fo, iObj) {
			deriveTfoRec(n, fo, tfo, roots, false)
		}
	})
	*tfo = append(*tfo, int32(iObj))
}

// deriveTfo labels pivot's TFO, and — only when the pivot itself comes out
// "inner" — walks it into an ordered (tfo, roots) pair. If the pivot is
// itself a root or falls outside the TFO entirely, both lists are empty:
// there is no TFO-side expansion to fold into the window.
func deriveTfo(n *ntk.Network, pivot, tfoLevMax, fanMax int, fDelay bool) (tfo, roots []int32) {
	if res := labelTfo(n, pivot, tfoLevMax, fanMax, fDelay); res != labelInner {
		return nil, nil
	}
	n.IncTravID()
	deriveTfoRec(n, pivot, &tfo, &roots, fDelay)
	// deriveTfoRec always appends pivot last; drop it, it is not its own TFO.
	tfo = tfo[:len(tfo)-1]
	reverseInt32(tfo)
	reverseInt32(roots)
	return tfo, roots
}

func reverseInt32(s []int32) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
