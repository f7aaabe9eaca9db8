// File: newtfi.go
// Role: from the divisor set and the TFO's side inputs, pulls in whatever
// extra TFI nodes the window needs so every node it contains has its
// fan-ins either inside the window or marked as a leaf. Grounded on
// Acb_NtkCollectNewTfi1_rec/2_rec/Acb_NtkCollectNewTfi
// (acbMfs.c lines ~687-734).
//
// Callers must call remarkGeneration(n, marked) — the set markTfoOfDivisors
// returned — immediately before collectNewTfi, so IsTravIdPrev below reads
// exactly that set as "one generation back".
package window

import "github.com/lutnet/mfs/ntk"

// collectNewTfi1Rec walks iObj's fan-ins only while iObj itself was part of
// the TFO-of-divisors set (IsTravIdPrev), appending a full ancestor closure
// the way collectDivisorsRec does.
func collectNewTfi1Rec(n *ntk.Network, iObj int, tfiNew *[]int32) {
	if !n.IsTravIdPrev(iObj) {
		return
	}
	if n.SetTravIdCur(iObj) {
		return
	}
	n.ForEachFanin(iObj, func(_, f int) {
		collectNewTfi1Rec(n, f, tfiNew)
	})
	*tfiNew = append(*tfiNew, int32(iObj))
}

// collectNewTfi2Rec is the side-input variant: it only recurses into
// fan-ins when iObj was part of the TFO-of-divisors set AND iObj is not a
// CI (a CI has no fan-ins to pull in anyway), but always appends iObj
// itself once visited, marked or not.
func collectNewTfi2Rec(n *ntk.Network, iObj int, tfiNew *[]int32) {
	wasMarked := n.IsTravIdPrev(iObj)
	if n.SetTravIdCur(iObj) {
		return
	}
	if wasMarked && !n.IsCI(iObj) {
		n.ForEachFanin(iObj, func(_, f int) {
			collectNewTfi2Rec(n, f, tfiNew)
		})
	}
	*tfiNew = append(*tfiNew, int32(iObj))
}

// collectNewTfi assembles the window's TFI-side node list: the ancestor
// closure of every divisor and of the pivot (the pivot itself left out),
// then (recorded past nDivs) the ancestor closure of every TFO side input.
// The pivot is appended last.
func collectNewTfi(n *ntk.Network, pivot int, divs, side []int32) (tfiNew []int32, nDivs int) {
	n.IncTravID()

	for _, d := range divs {
		collectNewTfi1Rec(n, int(d), &tfiNew)
	}
	collectNewTfi1Rec(n, pivot, &tfiNew)
	// collectNewTfi1Rec appends pivot last once its closure is walked.
	tfiNew = tfiNew[:len(tfiNew)-1]

	nDivs = len(tfiNew)

	for _, s := range side {
		collectNewTfi2Rec(n, int(s), &tfiNew)
	}
	tfiNew = append(tfiNew, int32(pivot))
	return tfiNew, nDivs
}
