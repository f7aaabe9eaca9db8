// File: methods_mutate.go
// Role: node creation, recursive dangling cleanup, and the commit path a
// resynthesis edit drives at the end of a successful attempt (§4.6).
// Grounded on acbUtil.c's Acb_NtkCreateNode/Acb_NtkResetNode/
// Acb_NtkUpdateNode (lines ~636-696).
package ntk

// CreateNode allocates a fresh interior LUT node with the given truth table
// and ordered fan-in support, and returns its id (Acb_NtkCreateNode).
func (n *Network) CreateNode(truth uint64, supp []int32) int {
	id := n.AllocNode(TypeLUT, len(supp))
	n.SetTruth(id, truth)
	n.AddFanins(id, supp)
	return id
}

// resetNode tears down interior node i: it drops i's registration from every
// current fan-in's fan-out list, clears i's own fan-in list and cached CNF,
// and marks i dead. Any fan-in that is left with zero fan-outs as a result
// — and is itself interior, not a CI — is reset recursively, mirroring
// Acb_NtkResetNode's dangling-cone cleanup.
func (n *Network) resetNode(i int) {
	if !n.IsInterior(i) {
		return
	}
	oldFanins := n.Fanins(i)

	n.removeFaninFanout(i)
	n.clearFanins(i)
	n.ClearCnf(i)
	n.SetTruth(i, 0)

	n.muObjs.Lock()
	n.objs[i].Type = TypeNone
	n.muObjs.Unlock()

	for _, f := range oldFanins {
		fi := int(f)
		if n.IsInterior(fi) && n.FanoutNum(fi) == 0 {
			n.resetNode(fi)
		}
	}
}

// UpdateNode replaces pivot's function and support in place: any fan-in no
// longer present in newSupp is dropped (and recursively cleaned up if that
// leaves it dangling), pivot's truth table and fan-in list are overwritten,
// and the CNF cache is invalidated. Callers are responsible for calling
// UpdateTiming(pivot) afterward (§4.8's "every attempt, success or not,
// leaves the network internally consistent before returning").
//
// Grounded on Acb_NtkUpdateNode: the old support is saved, fan-outs among
// the old fan-ins not present in the new support are removed (with
// recursive dangling cleanup via resetNode), then the new support is
// installed and the truth table overwritten.
func (n *Network) UpdateNode(pivot int, truth uint64, newSupp []int32) error {
	if !n.IsInterior(pivot) {
		return ErrNotInterior
	}
	if len(newSupp) > n.lutSize {
		return ErrFaninOverflow
	}

	oldFanins := n.Fanins(pivot)
	keep := make(map[int32]bool, len(newSupp))
	for _, f := range newSupp {
		keep[f] = true
	}

	n.removeFaninFanout(pivot)
	n.clearFanins(pivot)
	n.SetTruth(pivot, truth)
	n.ClearCnf(pivot)
	n.AddFanins(pivot, newSupp)

	for _, f := range oldFanins {
		if keep[f] {
			continue
		}
		fi := int(f)
		if n.IsInterior(fi) && n.FanoutNum(fi) == 0 {
			n.resetNode(fi)
		}
	}
	return nil
}

// CommitTwoNode installs a Supp3 two-node replacement: hNode is a fresh
// interior node over hSupp, and pivot is updated to gNode's function over
// gOtherSupp plus hNode appended as its last fan-in. It is the
// network-editing half of Acb_NtkOptNode's two-node commit branch; callers
// build hTruth/gTruth/hSupp/gOtherSupp from the extracted SAT functions
// before calling this.
func (n *Network) CommitTwoNode(pivot int, hTruth uint64, hSupp []int32, gTruth uint64, gOtherSupp []int32) (hNode int, err error) {
	if !n.IsInterior(pivot) {
		return 0, ErrNotInterior
	}
	if len(hSupp) > n.lutSize || len(gOtherSupp)+1 > n.lutSize {
		return 0, ErrFaninOverflow
	}
	hNode = n.CreateNode(hTruth, hSupp)
	gSupp := append(append([]int32(nil), gOtherSupp...), int32(hNode))
	if err := n.UpdateNode(pivot, gTruth, gSupp); err != nil {
		n.resetNode(hNode)
		return 0, err
	}
	return hNode, nil
}
