// File: collectwindow.go
// Role: final assembly of the TFI and TFO node lists into one Window,
// marking each entry leaf/root vs interior. Grounded on
// Acb_NtkCollectWindow (acbMfs.c lines ~747-776).
package window

import "github.com/lutnet/mfs/ntk"

func collectWindowNodes(n *ntk.Network, pivot int, tfi, tfo, roots []int32) []Node {
	nodes := make([]Node, 0, len(tfi)+len(tfo))

	// TFI side: a node is a leaf either because it's a CI, or because one
	// of its fan-ins sits outside the TFI set (so the CNF has nowhere to
	// derive its value from and must treat it as a free input instead).
	n.IncTravID()
	for _, id := range tfi {
		n.SetTravIdCur(int(id))
	}
	for _, id := range tfi {
		leaf := n.IsCI(int(id))
		if !leaf {
			n.ForEachFanin(int(id), func(_, f int) {
				if !n.IsTravIdCur(f) {
					leaf = true
				}
			})
		}
		nodes = append(nodes, Node{ID: id, Leaf: leaf})
	}

	// TFO side: a node is a root (a window output) iff deriveTfo marked it
	// so; every other TFO entry is interior.
	n.IncTravID()
	for _, id := range roots {
		n.SetTravIdCur(int(id))
	}
	for _, id := range tfo {
		nodes = append(nodes, Node{ID: id, Leaf: n.IsTravIdCur(int(id))})
	}
	return nodes
}
