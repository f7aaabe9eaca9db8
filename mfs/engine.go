// File: engine.go
// Role: the per-pivot attempt sequence and the state machine that drives
// it (§4.7/§4.8). Grounded on Acb_NtkOptNode's ordered strategy list
// (constant check, Supp1, Supp2, Supp3) and Acb_NtkOpt's outer scheduling
// loop (acbMfs.c).
package mfs

import (
	"context"

	"github.com/lutnet/mfs/extract"
	"github.com/lutnet/mfs/ntk"
	"github.com/lutnet/mfs/satx"
	"github.com/lutnet/mfs/schedule"
	"github.com/lutnet/mfs/support"
	"github.com/lutnet/mfs/window"
)

// Engine owns no per-run state today: each attempt builds its own
// short-lived gini instances via satx.BuildMiter rather than reusing three
// solvers across pivots like Acb_Mfs_t does, because gini's restart API
// was not present in the retrieval pack (see DESIGN.md). Kept as a type
// (not a bare function) so solver reuse can be added later without an API
// break.
type Engine struct{}

// New returns a ready-to-use Engine.
func New() *Engine { return &Engine{} }

// Run visits nodes per p's scheduling mode, attempting OptimizeNode on
// each, and returns the accumulated Stats. A cancelled ctx stops the walk
// between attempts, never mid-mutation.
func (e *Engine) Run(ctx context.Context, n *ntk.Network, p Params) Stats {
	var stats Stats
	visited := 0
	overBudget := func() bool {
		return ctx.Err() != nil || (p.NodesMax > 0 && visited >= p.NodesMax)
	}

	if p.Area {
		schedule.Area(n, func(id int) bool {
			if overBudget() {
				return false
			}
			for {
				visited++
				stats.NodesVisited++
				accepted, _ := e.OptimizeNode(n, id, p, &stats)
				if !accepted || n.FaninNum(id) == 0 || overBudget() {
					break
				}
			}
			return !overBudget()
		})
		return stats
	}

	q := schedule.NewDelayQueue()
	n.SetPriorityQueue(q)
	for id := 1; id < n.ObjCount(); id++ {
		if n.IsInterior(id) {
			q.Push(id, int64(n.PathD(id))*int64(n.PathR(id)))
		}
	}
	for {
		if overBudget() {
			break
		}
		id, ok := q.Pop()
		if !ok {
			break
		}
		if !n.IsInterior(id) {
			continue
		}
		visited++
		stats.NodesVisited++
		_, _ = e.OptimizeNode(n, id, p, &stats)
	}
	return stats
}

// OptimizeNode runs Acb_NtkOptNode's ordered strategy list against pivot,
// stopping and committing at the first successful strategy. It reports
// whether an edit was committed.
func (e *Engine) OptimizeNode(n *ntk.Network, pivot int, p Params, stats *Stats) (bool, error) {
	w, err := window.Build(n, pivot, window.Limits{
		TfiLevs:   p.TfiLevMax,
		TfoLevs:   p.TfoLevMax,
		FanoutMax: p.FanoutMax,
		NodeMax:   p.WinNodeMax,
	}, !p.Area)
	if err != nil {
		stats.WindowOverflow++
		return false, ErrWindowTooLarge
	}
	defer w.Release(n)

	stats.WindowsBuilt++
	stats.WindowSizeSum += len(w.Nodes)
	stats.DivisorSum += w.NDivs

	if ok, err := e.tryConstant(n, w, stats); ok || err != nil {
		return ok, err
	}

	if p.Area {
		if ok, err := e.trySupp1(n, w, stats); ok || err != nil {
			return ok, err
		}
	}

	if n.MffcEstimate(pivot) >= 1 {
		if ok, err := e.trySupp2(n, w, p, stats); ok || err != nil {
			return ok, err
		}
	}

	if p.Area && p.Ashen && n.MffcEstimate(pivot) >= 2 {
		if ok, err := e.trySupp3(n, w, p, stats); ok || err != nil {
			return ok, err
		}
	}

	return false, nil
}

func (e *Engine) tryConstant(n *ntk.Network, w *window.Window, stats *Stats) (bool, error) {
	m, err := satx.BuildMiter(n, w, 1)
	if err != nil {
		return false, err
	}
	outVar := m.NodeVars[0][w.PivotIdx]

	m.Solver.Assume(outVar.Not())
	if !m.Solver.Solve() {
		if err := n.UpdateNode(int(w.Pivot), ^uint64(0), nil); err != nil {
			return false, err
		}
		n.UpdateTiming(int(w.Pivot))
		stats.ChangesConst++
		return true, nil
	}

	m.Solver.Assume(outVar)
	if !m.Solver.Solve() {
		if err := n.UpdateNode(int(w.Pivot), 0, nil); err != nil {
			return false, err
		}
		n.UpdateTiming(int(w.Pivot))
		stats.ChangesConst++
		return true, nil
	}
	return false, nil
}

func (e *Engine) trySupp1(n *ntk.Network, w *window.Window, stats *Stats) (bool, error) {
	res, err := support.Supp1(n, w)
	if err != nil || res == nil {
		return false, err
	}
	truth, err := extract.ComputeFunction(n, w, res.DivIdx)
	if err != nil {
		return false, err
	}
	if err := n.UpdateNode(int(w.Pivot), truth, idxToIDs(w, res.DivIdx)); err != nil {
		return false, err
	}
	n.UpdateTiming(int(w.Pivot))
	stats.ChangesSupp1++
	return true, nil
}

func (e *Engine) trySupp2(n *ntk.Network, w *window.Window, p Params, stats *Stats) (bool, error) {
	res, err := support.Supp2(n, w, !p.Area, p.LutSize)
	if err != nil || res == nil {
		return false, err
	}
	truth, err := extract.ComputeFunction(n, w, res.DivIdx)
	if err != nil {
		return false, err
	}
	if err := n.UpdateNode(int(w.Pivot), truth, idxToIDs(w, res.DivIdx)); err != nil {
		return false, err
	}
	n.UpdateTiming(int(w.Pivot))
	stats.ChangesSupp2++
	return true, nil
}

func (e *Engine) trySupp3(n *ntk.Network, w *window.Window, p Params, stats *Stats) (bool, error) {
	h, g, err := support.Supp3(n, w, p.LutSize)
	if err != nil || h == nil || g == nil {
		return false, err
	}
	hTruth, err := extract.ComputeFunction(n, w, h.DivIdx)
	if err != nil {
		return false, err
	}
	if hTruth == 0 || hTruth == ^uint64(0) {
		return false, ErrEmptyExtractedFunction
	}
	gTruth, err := extract.ComputeTwoNodeFunction(n, w, g.DivIdx, h.DivIdx, hTruth)
	if err != nil {
		return false, err
	}
	hNode, err := n.CommitTwoNode(int(w.Pivot), hTruth, idxToIDs(w, h.DivIdx), gTruth, idxToIDs(w, g.DivIdx))
	if err != nil {
		return false, err
	}
	n.UpdateTiming(hNode)
	n.UpdateTiming(int(w.Pivot))
	stats.ChangesSupp3++
	return true, nil
}

func idxToIDs(w *window.Window, idx []int) []int32 {
	out := make([]int32, len(idx))
	for k, j := range idx {
		out[k] = w.Nodes[j].ID
	}
	return out
}
