// File: methods_edges.go
// Role: fan-in/fan-out edit primitives (§6.1 addFanin/removeFaninIndex/
// patchFanin) and the jagged fan-out array (§3.4). Fan-out lists are
// maintained as the exact reverse of fan-in lists at every call boundary.
package ntk

// FaninNum returns the fan-in count of object i.
func (n *Network) FaninNum(i int) int {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return len(n.objs[i].fanins)
}

// Fanin returns the k-th fan-in id of object i.
func (n *Network) Fanin(i, k int) int {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return int(n.objs[i].fanins[k])
}

// Fanins returns a copy of the ordered fan-in list of object i.
func (n *Network) Fanins(i int) []int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	out := make([]int32, len(n.objs[i].fanins))
	copy(out, n.objs[i].fanins)
	return out
}

// FanoutNum returns the fan-out count of object i.
func (n *Network) FanoutNum(i int) int {
	n.muFanout.RLock()
	defer n.muFanout.RUnlock()
	return len(n.objs[i].fanouts)
}

// Fanout returns the k-th fan-out id of object i.
func (n *Network) Fanout(i, k int) int {
	n.muFanout.RLock()
	defer n.muFanout.RUnlock()
	return int(n.objs[i].fanouts[k])
}

// Fanouts returns a copy of the fan-out list of object i.
func (n *Network) Fanouts(i int) []int32 {
	n.muFanout.RLock()
	defer n.muFanout.RUnlock()
	out := make([]int32, len(n.objs[i].fanouts))
	copy(out, n.objs[i].fanouts)
	return out
}

// AddFanin appends fanin to i's ordered fan-in list and registers i into
// fanin's fan-out list. It does not enforce K; callers that must respect
// LutSize check FaninNum first (AllocNode-time checks happen in the mutate
// layer, where K is actually known for the edit being committed).
func (n *Network) AddFanin(i, fanin int) {
	n.muObjs.Lock()
	n.objs[i].fanins = append(n.objs[i].fanins, int32(fanin))
	n.muObjs.Unlock()

	n.muFanout.Lock()
	n.objs[fanin].fanouts = append(n.objs[fanin].fanouts, int32(i))
	n.muFanout.Unlock()
}

// AddFanins appends every id in supp, in order, as a new fan-in of i.
func (n *Network) AddFanins(i int, supp []int32) {
	for _, f := range supp {
		n.AddFanin(i, int(f))
	}
}

// RemoveFaninIndex deletes the fan-in at position idx from i's list and
// removes the matching entry from that fan-in's fan-out list.
func (n *Network) RemoveFaninIndex(i, idx int) {
	n.muObjs.Lock()
	fanin := int(n.objs[i].fanins[idx])
	n.objs[i].fanins = append(n.objs[i].fanins[:idx], n.objs[i].fanins[idx+1:]...)
	n.muObjs.Unlock()

	n.removeFanoutEntry(fanin, i)
}

// PatchFanin replaces every occurrence of from in i's fan-in list with to,
// updating both endpoints' fan-out lists accordingly.
func (n *Network) PatchFanin(i, from, to int) {
	n.muObjs.Lock()
	fanins := n.objs[i].fanins
	changed := 0
	for k, f := range fanins {
		if int(f) == from {
			fanins[k] = int32(to)
			changed++
		}
	}
	n.muObjs.Unlock()
	if changed == 0 {
		return
	}
	n.muFanout.Lock()
	for c := 0; c < changed; c++ {
		n.objs[to].fanouts = append(n.objs[to].fanouts, int32(i))
	}
	n.muFanout.Unlock()
	n.removeFanoutEntries(from, i, changed)
}

// removeFanoutEntry removes one occurrence of user from fanin's fan-out list.
func (n *Network) removeFanoutEntry(fanin, user int) {
	n.removeFanoutEntries(fanin, user, 1)
}

// removeFanoutEntries removes up to count occurrences of user from fanin's
// fan-out list.
func (n *Network) removeFanoutEntries(fanin, user, count int) {
	n.muFanout.Lock()
	defer n.muFanout.Unlock()
	list := n.objs[fanin].fanouts
	removed := 0
	for removed < count {
		idx := -1
		for k, f := range list {
			if int(f) == user {
				idx = k
				break
			}
		}
		if idx < 0 {
			break
		}
		list = append(list[:idx], list[idx+1:]...)
		removed++
	}
	n.objs[fanin].fanouts = list
}

// removeFaninFanout clears i's registration from every current fan-in's
// fan-out list, without touching i's own fan-in list (used by resetNode
// before the fan-in list itself is cleared).
func (n *Network) removeFaninFanout(i int) {
	n.muObjs.RLock()
	fanins := append([]int32(nil), n.objs[i].fanins...)
	n.muObjs.RUnlock()
	for _, f := range fanins {
		n.removeFanoutEntry(int(f), i)
	}
}

// clearFanins empties i's fan-in list in place.
func (n *Network) clearFanins(i int) {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.objs[i].fanins = n.objs[i].fanins[:0]
}

// ForEachFanin calls fn for every fan-in of object i, in order.
func (n *Network) ForEachFanin(i int, fn func(k, fanin int)) {
	n.muObjs.RLock()
	fanins := append([]int32(nil), n.objs[i].fanins...)
	n.muObjs.RUnlock()
	for k, f := range fanins {
		fn(k, int(f))
	}
}

// ForEachFanout calls fn for every fan-out of object i, in order.
func (n *Network) ForEachFanout(i int, fn func(k, fanout int)) {
	n.muFanout.RLock()
	fanouts := append([]int32(nil), n.objs[i].fanouts...)
	n.muFanout.RUnlock()
	for k, f := range fanouts {
		fn(k, int(f))
	}
}
