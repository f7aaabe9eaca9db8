// File: area.go
// Role: area-mode node ordering (§4.7): a three-pass sweep over
// decreasing MFFC estimate, so nodes whose removal frees the most
// structure are attempted first. Grounded on Acb_NtkOpt's area loop
// (acbMfs.c), which sweeps n = 2, 1, 0 and skips nodes already visited in
// an earlier pass via a Vec_Bit_t bitmap.
package schedule

import "github.com/lutnet/mfs/ntk"

// Area walks every interior node of n in three passes (MFFC estimate 2 or
// more, then 1, then 0), calling visit once per node in that order. visit
// returning false stops the whole walk (e.g. on context cancellation).
// The visited bitmap grows to cover nodes visit itself creates, so a
// visit that commits a replacement and allocates new objects never
// revisits or skips incorrectly within the same Area call.
func Area(n *ntk.Network, visit func(id int) bool) {
	visited := make([]bool, n.ObjCount())
	grow := func() {
		if want := n.ObjCount(); want > len(visited) {
			next := make([]bool, want)
			copy(next, visited)
			visited = next
		}
	}

	for target := 2; target >= 0; target-- {
		grow()
		for id := 1; id < len(visited); id++ {
			if visited[id] || !n.IsInterior(id) {
				continue
			}
			if n.MffcEstimate(id) < target {
				continue
			}
			visited[id] = true
			if !visit(id) {
				return
			}
			grow()
		}
	}
}
