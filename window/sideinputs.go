// File: sideinputs.go
// Role: collects every fan-in of the TFO set that isn't itself in the TFO
// (or the pivot) — the "side inputs" a TFO node depends on besides the
// pivot's own cone. Grounded on Acb_NtkCollectTfoSideInputs
// (acbMfs.c lines ~660-674).
package window

import "github.com/lutnet/mfs/ntk"

func collectSideInputs(n *ntk.Network, pivot int, tfo []int32) []int32 {
	side := make([]int32, 0, 16)
	n.IncTravID()

	marked := append(append([]int32(nil), tfo...), int32(pivot))
	for _, id := range marked {
		n.SetTravIdCur(int(id))
	}
	for _, node := range tfo {
		n.ForEachFanin(int(node), func(_, f int) {
			if !n.SetTravIdCur(f) && f != pivot {
				side = append(side, int32(f))
			}
		})
	}
	return side
}
