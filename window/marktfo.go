// File: marktfo.go
// Role: marks the bounded TFO of every divisor plus the pivot itself, so
// labelTfo later knows which nodes are "inside" the TFO-of-TFI region.
// Grounded on Acb_ObjMarkTfo_rec/Acb_ObjMarkTfo/Acb_ObjMarkTfo2
// (acbMfs.c lines ~531-559).
package window

import "github.com/lutnet/mfs/ntk"

func markTfoRec(n *ntk.Network, iObj, tfoLevMax, fanMax int, marked *[]int32) {
	if n.SetTravIdCur(iObj) {
		return
	}
	*marked = append(*marked, int32(iObj))
	if int(n.LevelD(iObj)) > tfoLevMax || n.FanoutNum(iObj) > fanMax {
		return
	}
	n.ForEachFanout(iObj, func(_, fo int) {
		markTfoRec(n, fo, tfoLevMax, fanMax, marked)
	})
}

// markTfoOfDivisors marks pivot and the bounded TFO of every entry in divs,
// returning every marked object id.
func markTfoOfDivisors(n *ntk.Network, divs []int32, pivot, tfoLevMax, fanMax int) []int32 {
	marked := make([]int32, 0, 64)
	n.IncTravID()
	n.SetTravIdCur(pivot)
	marked = append(marked, int32(pivot))
	for _, d := range divs {
		markTfoRec(n, int(d), tfoLevMax, fanMax, &marked)
	}
	return marked
}

// remarkGeneration starts a fresh traversal generation and re-marks every
// id in marked under it, so later "was this in the TFO-of-TFI set" checks
// (via IsTravIdPrev) see exactly this set one generation back.
func remarkGeneration(n *ntk.Network, marked []int32) {
	n.IncTravID()
	for _, id := range marked {
		n.SetTravIdCur(int(id))
	}
}
