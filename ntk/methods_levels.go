// File: methods_levels.go
// Role: forward/reverse levels, path counts, slack, and the criticality
// predicates §4 builds Supp2/Supp3 candidate sets from. Grounded on
// acbUtil.c's Acb_Obj{LevelD,LevelR,PathD,PathR,Slack} family and
// acbMfs.c's Acb_ObjIsAreaCritical/Acb_ObjIsDelayCriticalFanin.
package ntk

// LevelD returns the forward level of object i.
func (n *Network) LevelD(i int) int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return n.objs[i].levelD
}

// SetLevelD sets the forward level of object i and returns it.
func (n *Network) SetLevelD(i int, v int32) int32 {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.objs[i].levelD = v
	return v
}

// LevelR returns the reverse level of object i.
func (n *Network) LevelR(i int) int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return n.objs[i].levelR
}

// SetLevelR sets the reverse level of object i and returns it.
func (n *Network) SetLevelR(i int, v int32) int32 {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.objs[i].levelR = v
	return v
}

// PathD returns the forward path count of object i.
func (n *Network) PathD(i int) int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return n.objs[i].pathD
}

// SetPathD sets the forward path count of object i and returns it.
func (n *Network) SetPathD(i int, v int32) int32 {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.objs[i].pathD = v
	return v
}

// PathR returns the reverse path count of object i.
func (n *Network) PathR(i int) int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return n.objs[i].pathR
}

// SetPathR sets the reverse path count of object i and returns it.
func (n *Network) SetPathR(i int, v int32) int32 {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.objs[i].pathR = v
	return v
}

// Slack returns LevelMax - (levelD + levelR) + 1 for interior nodes, and
// LevelMax - (levelD + levelR) at CI/CO endpoints (§3.1).
func (n *Network) Slack(i int) int32 {
	n.muObjs.RLock()
	isCio := n.objs[i].Type == TypeCI || n.objs[i].Type == TypeCO
	sum := n.objs[i].levelD + n.objs[i].levelR
	n.muObjs.RUnlock()
	bump := int32(1)
	if isCio {
		bump = 0
	}
	return bump + n.LevelMax - sum
}

// IsAreaCritical reports whether fanin f is "area critical" relative to its
// single consumer: not a CI and with exactly one fan-out.
func (n *Network) IsAreaCritical(f int) bool {
	return !n.IsCI(f) && n.FanoutNum(f) == 1
}

// IsDelayCriticalFanin reports whether fanin f of i lies on a critical path
// into i: f is not a CI and levelR(i) + levelD(f) == LevelMax.
func (n *Network) IsDelayCriticalFanin(i, f int) bool {
	return !n.IsCI(f) && n.LevelR(i)+n.LevelD(f) == n.LevelMax
}

// IsCritical dispatches to the delay- or area-critical predicate.
func (n *Network) IsCritical(i, f int, delay bool) bool {
	if delay {
		return n.IsDelayCriticalFanin(i, f)
	}
	return n.IsAreaCritical(f)
}

// MffcEstimate is the cheap, saturated maximum-fan-out-free-cone estimate
// used by the scheduler's bucketing and by Supp2/Supp3 gating: the count of
// area-critical direct fan-ins, plus (only when that count is exactly 1) the
// area-critical fan-in count of that one fan-in.
func (n *Network) MffcEstimate(i int) int {
	count := 0
	faninCrit := -1
	n.ForEachFanin(i, func(_, f int) {
		if n.IsAreaCritical(f) {
			faninCrit = f
			count++
		}
	})
	if count != 1 {
		return count
	}
	n.ForEachFanin(faninCrit, func(_, f int) {
		if n.IsAreaCritical(f) {
			count++
		}
	})
	return count
}

// ComputeLevelD recomputes and stores the forward level of i from its
// current fan-ins: max(levelD(fanin)) + 1 for interior nodes, or
// max(levelD(fanin)) at CI/CO.
func (n *Network) ComputeLevelD(i int) int32 {
	var level int32
	n.ForEachFanin(i, func(_, f int) {
		if lv := n.LevelD(f); lv > level {
			level = lv
		}
	})
	if !n.IsCIO(i) {
		level++
	}
	return n.SetLevelD(i, level)
}

// ComputeLevelR recomputes and stores the reverse level of i from its
// current fan-outs.
func (n *Network) ComputeLevelR(i int) int32 {
	var level int32
	n.ForEachFanout(i, func(_, fo int) {
		if lv := n.LevelR(fo); lv > level {
			level = lv
		}
	})
	if !n.IsCIO(i) {
		level++
	}
	return n.SetLevelR(i, level)
}

// ComputePathD recomputes and stores the forward path count of interior
// node i, summing pathD over fan-ins that sit on a zero-slack (critical)
// path into i.
func (n *Network) ComputePathD(i int) int32 {
	var path int32
	n.ForEachFanin(i, func(_, f int) {
		if n.Slack(f) == 0 {
			path += n.PathD(f)
		}
	})
	return n.SetPathD(i, path)
}

// ComputePathR recomputes and stores the reverse path count of interior
// node i, summing pathR over fan-outs that sit on a zero-slack path from i.
func (n *Network) ComputePathR(i int) int32 {
	var path int32
	n.ForEachFanout(i, func(_, fo int) {
		if n.Slack(fo) == 0 {
			path += n.PathR(fo)
		}
	})
	return n.SetPathR(i, path)
}
