// Package ntk implements the LUT-network store consumed by the rest of the
// engine: object allocation, fan-in/fan-out edit primitives, per-node truth
// tables, levels, and the traversal-id mechanism used by window and schedule.
//
// A Network is an arena of integer-indexed Objs, not a map of pointers: edges
// are stored as index slices, and a dead object keeps its id (never reused
// within a run) but loses its Type. This mirrors the "arena of index
// vectors, never owning pointers" guidance for this domain; it replaces the
// string-keyed, map-of-maps Graph this package started from, because the
// store here must support O(1) id-indexed access from hot SAT-building and
// windowing loops.
package ntk

import (
	"errors"
	"sync"
)

// Sentinel errors for network store operations.
var (
	// ErrBadID indicates an out-of-range or negative object id.
	ErrBadID = errors.New("ntk: object id out of range")

	// ErrNotInterior indicates an operation required an interior LUT node.
	ErrNotInterior = errors.New("ntk: object is not an interior node")

	// ErrNoFanout indicates a pivot with zero fan-outs was presented for optimization.
	ErrNoFanout = errors.New("ntk: object has no fanouts")

	// ErrFaninOverflow indicates an edit would exceed the configured LUT size K.
	ErrFaninOverflow = errors.New("ntk: fanin count exceeds K")

	// ErrDead indicates an operation referenced a dead (type-less) object.
	ErrDead = errors.New("ntk: object is dead")
)

// Type tags the role of an Obj in the network.
type Type int8

const (
	// TypeNone marks a dead or unused object slot.
	TypeNone Type = iota
	// TypeCI is a combinational input.
	TypeCI
	// TypeCO is a combinational output.
	TypeCO
	// TypeLUT is an interior node with a truth table over its fanins.
	TypeLUT
	// TypeConst is a 0-fanin constant LUT (truth table 0 or ~0).
	TypeConst
)

// MaxLutSize is the hard ceiling on fan-in count: truth tables are 64-bit
// words, so K <= 6.
const MaxLutSize = 6

// noTravID is the sentinel stored in travID before any mark has been made.
const noTravID = 0

// Obj is one network object: a CI, a CO, or an interior LUT/constant node.
//
// fanins and fanouts are index slices into the arena, never pointers.
// travID/travBase implement the small-offset traversal-id mechanism so up to
// three disjoint marks can coexist (§6.1): a mark is "current" when
// travID == travBase, and sits at offset d when travID == travBase-d.
type Obj struct {
	Type Type

	fanins  []int32
	fanouts []int32

	truth uint64 // meaningful for TypeLUT/TypeConst, arity = len(fanins)

	levelD int32
	levelR int32
	pathD  int32
	pathR  int32

	nameID int32

	// Func is the transient SAT-variable id assigned to this object while a
	// window is open; -1 when unassigned. Exported because the window/satx
	// packages assign and read it directly while building a miter.
	Func int32

	travID int32 // compared against Network.travBase-offset

	cnf  []byte // cached CNF byte string (§3.3); nil until first derived
	copy int32  // scratch field used by function/node duplication passes
}

// Network is the LUT-network store. It is the sole object every other
// package in this module (window, cnf, satx, support, extract, schedule,
// mfs) operates on.
//
// muObjs guards the Obj arena (allocation, type, truth, levels, fanins);
// muFanout guards fan-out lists specifically, mirroring the teacher's split
// between vertex and edge+adjacency locks — fan-out maintenance is the part
// of a mutation that touches objects other than the one being edited.
type Network struct {
	muObjs   sync.RWMutex
	muFanout sync.RWMutex

	objs []Obj

	cis []int32
	cos []int32

	lutSize int // K, configured ceiling on fanin count (<=6)

	// LevelMax is the maximum forward level over all CO nodes; read by
	// window and schedule to compute slack.
	LevelMax int32

	travBase int32 // bumped by IncTravID; current id is travBase, offset d is travBase-d

	// nPaths mirrors ABC's p->nPaths (total path count over all COs). No
	// method of this package sets or reads it; it stays zero.
	nPaths int64

	// queue is the optional delay-mode scheduler hook; see SetPriorityQueue.
	queue PriorityQueue
}

// NewNetwork creates an empty Network with the given LUT size K (1..6).
func NewNetwork(lutSize int) *Network {
	if lutSize < 1 {
		lutSize = 1
	}
	if lutSize > MaxLutSize {
		lutSize = MaxLutSize
	}
	return &Network{
		objs:     make([]Obj, 1), // id 0 is reserved/unused, like ABC's object 0
		lutSize:  lutSize,
		travBase: noTravID,
	}
}

// LutSize returns the configured maximum fan-in K.
func (n *Network) LutSize() int { return n.lutSize }

// ObjCount returns one past the highest allocated object id (ABC's
// Acb_NtkObjNumMax): valid ids for iteration are [1, ObjCount).
func (n *Network) ObjCount() int {
	n.muObjs.RLock()
	defer n.muObjs.RUnlock()
	return len(n.objs)
}
