// File: methods.go
// Role: object allocation, type queries, and the CI/CO/interior predicates
// consumed by window and schedule (§6.1).
package ntk

// AllocNode allocates a fresh object of the given type with nFanins empty
// fan-in slots (ABC's Acb_ObjAlloc). The caller fills fanins with AddFanin.
func (n *Network) AllocNode(t Type, nFanins int) int {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()

	id := len(n.objs)
	obj := Obj{
		Type:   t,
		Func:   -1,
		copy:   -1,
		travID: noTravID,
	}
	if nFanins > 0 {
		obj.fanins = make([]int32, 0, nFanins)
	}
	n.objs = append(n.objs, obj)

	switch t {
	case TypeCI:
		n.cis = append(n.cis, int32(id))
	case TypeCO:
		n.cos = append(n.cos, int32(id))
	}
	return id
}

// Type returns the type tag of object i.
func (n *Network) Type(i int) Type {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return n.objs[i].Type
}

// IsCI reports whether i is a combinational input.
func (n *Network) IsCI(i int) bool { return n.Type(i) == TypeCI }

// IsCO reports whether i is a combinational output.
func (n *Network) IsCO(i int) bool { return n.Type(i) == TypeCO }

// IsCIO reports whether i is a CI or a CO (neither has a truth table).
func (n *Network) IsCIO(i int) bool {
	t := n.Type(i)
	return t == TypeCI || t == TypeCO
}

// IsInterior reports whether i is a LUT or constant node.
func (n *Network) IsInterior(i int) bool {
	t := n.Type(i)
	return t == TypeLUT || t == TypeConst
}

// IsDead reports whether object i has been reset to TypeNone.
func (n *Network) IsDead(i int) bool { return n.Type(i) == TypeNone }

// Cis returns the (copy of the) list of combinational-input object ids.
func (n *Network) Cis() []int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	out := make([]int32, len(n.cis))
	copy(out, n.cis)
	return out
}

// Cos returns the (copy of the) list of combinational-output object ids.
func (n *Network) Cos() []int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	out := make([]int32, len(n.cos))
	copy(out, n.cos)
	return out
}

// ForEachObj calls fn for every object id in [1, ObjCount), dead objects
// included; callers filter with IsDead when it matters.
func (n *Network) ForEachObj(fn func(id int)) {
	count := n.ObjCount()
	for i := 1; i < count; i++ {
		fn(i)
	}
}

// NameID returns the stable naming id attached to object i for reporting.
func (n *Network) NameID(i int) int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return n.objs[i].nameID
}

// SetNameID attaches a stable naming id to object i.
func (n *Network) SetNameID(i int, name int32) {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.objs[i].nameID = name
}

// Func returns the transient SAT-variable id of object i, or -1 if unset.
func (n *Network) Func(i int) int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return n.objs[i].Func
}

// SetFunc assigns the transient SAT-variable id of object i.
func (n *Network) SetFunc(i int, v int32) {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.objs[i].Func = v
}

// Copy returns the scratch duplication field of object i.
func (n *Network) Copy(i int) int32 {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return n.objs[i].copy
}

// SetCopy assigns the scratch duplication field of object i.
func (n *Network) SetCopy(i int, v int32) {
	n.muObjs.Lock()
	defer n.muObjs.Unlock()
	n.objs[i].copy = v
}
