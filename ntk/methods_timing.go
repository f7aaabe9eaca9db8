// File: methods_timing.go
// Role: whole-network and pivot-scoped level/path recompute (§6.1), plus the
// priority-queue notification hook the delay-mode scheduler hangs off of.
// Grounded on acbUtil.c's Acb_NtkComputeLevelD/R, Acb_NtkComputePaths{D,R},
// and Acb_NtkUpdateTiming (lines ~376-380, ~570-615).
package ntk

// PriorityQueue is the hook UpdateTiming notifies whenever a node's pathD or
// pathR changes, so the delay-mode scheduler (schedule package) can re-push
// or reorder it without ntk importing schedule.
type PriorityQueue interface {
	IsMember(id int) bool
	Push(id int, priority int64)
	Update(id int, priority int64)
}

// SetPriorityQueue installs the scheduler hook used by UpdateTiming's path
// recompute. Passing nil disables notification (area mode does not need it).
func (n *Network) SetPriorityQueue(q PriorityQueue) {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.queue = q
}

func (n *Network) notifyPriority(i int) {
	n.muObjs.RLock()
	q := n.queue
	n.muObjs.RUnlock()
	if q == nil {
		return
	}
	priority := int64(n.PathD(i)) * int64(n.PathR(i))
	if q.IsMember(i) {
		q.Update(i, priority)
	} else {
		q.Push(i, priority)
	}
}

// UpdateLevelD recomputes forward levels for pivot and every object
// reachable from it by fan-out (its strict descendants), then refreshes
// LevelMax. CollectTFO returns that closure in postorder (descendants
// before pivot); reversing it yields pivot-first order, so each node is
// recomputed only after the fan-ins that feed it (pivot, or an
// already-updated descendant) are already current.
func (n *Network) UpdateLevelD(pivot int) {
	list := n.CollectTFO(pivot)
	reverseInt32(list)
	for _, o := range list {
		n.ComputeLevelD(int(o))
	}
	n.recomputeLevelMax()
}

// UpdateLevelR recomputes reverse levels for pivot and every ancestor of it
// (its TFI closure), symmetric to UpdateLevelD: CollectTFI's postorder
// reversed puts pivot first, so each ancestor is recomputed only after the
// fan-outs that determine its reverse level are already current.
func (n *Network) UpdateLevelR(pivot int) {
	list := n.CollectTFI(pivot)
	reverseInt32(list)
	for _, o := range list {
		n.ComputeLevelR(int(o))
	}
}

// recomputeLevelMax scans every CO and stores the maximum forward level.
func (n *Network) recomputeLevelMax() {
	var max int32
	for _, co := range n.Cos() {
		if lv := n.LevelD(int(co)); lv > max {
			max = lv
		}
	}
	n.muObjs.Lock()
	n.LevelMax = max
	n.muObjs.Unlock()
}

// UpdateTiming recomputes levels and path counts for pivot's full TFI/TFO
// closure after an edit, then notifies the priority-queue hook for every
// touched node whose path product may have changed. Grounded on
// Acb_NtkUpdateTiming: a full rebuild of levels/paths restricted to the
// nodes an edit could possibly affect, rather than a global network sweep.
func (n *Network) UpdateTiming(pivot int) {
	n.UpdateLevelD(pivot)
	n.UpdateLevelR(pivot)

	tfo := n.CollectTFO(pivot)
	reverseInt32(tfo)
	for _, o := range tfo {
		if n.IsInterior(int(o)) {
			n.ComputePathD(int(o))
		}
	}
	tfi := n.CollectTFI(pivot)
	reverseInt32(tfi)
	for _, o := range tfi {
		if n.IsInterior(int(o)) {
			n.ComputePathR(int(o))
		}
	}
	for _, o := range tfo {
		n.notifyPriority(int(o))
	}
	for _, o := range tfi {
		n.notifyPriority(int(o))
	}
}

// RecomputeAllTiming performs a from-scratch level/path sweep over every
// live object, seeded from the CI and CO boundaries. Used once, at the start
// of a run, before any pivot-scoped UpdateTiming call is meaningful.
func (n *Network) RecomputeAllTiming() {
	fwd := n.collectAllClosure(n.Cos(), func(i int) []int32 { return n.Fanins(i) })
	for _, o := range fwd {
		n.ComputeLevelD(int(o))
	}
	n.recomputeLevelMax()

	rev := n.collectAllClosure(n.Cis(), func(i int) []int32 { return n.Fanouts(i) })
	for _, o := range rev {
		n.ComputeLevelR(int(o))
	}
	for _, o := range fwd {
		if n.IsInterior(int(o)) {
			n.ComputePathD(int(o))
		}
	}
	for _, o := range rev {
		if n.IsInterior(int(o)) {
			n.ComputePathR(int(o))
		}
	}
}
