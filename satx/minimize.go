// File: minimize.go
// Role: deletion-based assumption minimization (§4.3's
// minimize_assumptions): given an assumption set that makes the solver
// unsatisfiable, shrink it to a locally-minimal unsatisfiable subset by
// repeatedly trying to drop one assumption at a time. Used by the support
// package to find the smallest set of round-enable/divisor-equality
// assumptions a candidate fan-in removal still holds up under.
package satx

import "github.com/irifrance/gini/z"

// MinimizeAssumptions assumes must plus lits, which is required to already
// be unsatisfiable, and returns a subset of lits, in their original order,
// that remains unsatisfiable together with must and from which no single
// literal can be dropped (locally minimal, not necessarily the smallest).
// lits is tried front to back; Solver.Why after the final call names the
// literals actually used.
func (s *Solver) MinimizeAssumptions(must, lits []z.Lit) []z.Lit {
	kept := append([]z.Lit{}, lits...)
	for i := 0; i < len(kept); {
		trial := make([]z.Lit, 0, len(kept)-1)
		trial = append(trial, kept[:i]...)
		trial = append(trial, kept[i+1:]...)

		s.Assume(append(append([]z.Lit{}, must...), trial...)...)
		if s.Solve() {
			// dropping kept[i] made it satisfiable again: it was needed.
			i++
			continue
		}
		kept = trial
	}
	s.Assume(append(append([]z.Lit{}, must...), kept...)...)
	s.Solve()
	return kept
}
