// Package window builds the bounded TFI/TFO neighborhood around a pivot
// node that the cnf and satx packages turn into a miter, and the support
// package searches for a cheaper replacement over. Grounded on acbMfs.c's
// Acb_NtkWindow and its helpers (divisor collection, TFO marking/labeling,
// side-input and new-TFI collection, final window assembly).
package window

import (
	"errors"

	"github.com/lutnet/mfs/ntk"
)

// ErrTooLarge is returned by Build when the assembled window exceeds the
// configured node budget (ABC's p->pPars->nWinNodeMax).
var ErrTooLarge = errors.New("window: node count exceeds configured limit")

// Limits bounds how far Build looks in each direction from the pivot.
type Limits struct {
	// TfiLevs is how many levels back from the pivot divisor collection
	// walks fan-ins (acbMfs.c's nTfiLevMax).
	TfiLevs int
	// TfoLevs extends the TFO level ceiling beyond the pivot's own level
	// (nTfoLevMax = LevelD(Pivot) + TfoLevs).
	TfoLevs int
	// FanoutMax caps fan-out count during TFO expansion: a node with more
	// fan-outs than this becomes a window boundary (nFanMax).
	FanoutMax int
	// NodeMax caps the total assembled window size (nWinNodeMax).
	NodeMax int
}

// Node is one entry of an assembled Window: an object id plus whether it is
// a window boundary (a CNF leaf on the TFI side, or an unconsumed root on
// the TFO side) rather than an interior node to be re-expressed in the CNF.
// This replaces ABC's Abc_Var2Lit(id, flag) bit-packing, which exists there
// purely to save memory in a C Vec_Int_t; a two-field struct is the
// idiomatic Go equivalent of the same (id, flag) pair.
type Node struct {
	ID   int32
	Leaf bool
}

// Window is the assembled neighborhood: TFI-side entries first (divisors
// and the new fan-ins they pull in, ending with the pivot itself), then
// TFO-side entries (the pivot's descendants up to the window boundary).
type Window struct {
	Pivot int32
	// PivotIdx is Pivot's position within Nodes (always the last TFI
	// entry, per Acb_NtkCollectWindow's vTfi convention).
	PivotIdx int
	// NDivs is how many of the leading TFI entries are true divisors
	// (candidate replacement fan-ins), as opposed to nodes pulled in only
	// because they feed a divisor or the pivot (Acb_NtkCollectNewTfi's
	// pnDivs out-param).
	NDivs int
	Nodes []Node
}

// TfiLen returns the number of TFI-side entries (everything up to and
// including the pivot).
func (w *Window) TfiLen() int { return w.PivotIdx + 1 }

// Release clears the transient SAT-variable id (Network.Func) on every
// node in the window, so a later window can reuse the same object ids
// without stale state. Grounded on Acb_NtkWindowUndo.
func (w *Window) Release(n *ntk.Network) {
	for _, nd := range w.Nodes {
		n.SetFunc(int(nd.ID), -1)
	}
}
