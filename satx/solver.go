// File: solver.go
// Role: a thin incremental-SAT wrapper around gini (§4.3). Grounded on the
// vendored github.com/irifrance/gini/logic.C found in the retrieval pack
// (ToCnf's "dst.Add(lit); ...; dst.Add(0)" clause-building convention
// against the inter.Adder interface) for the Add/terminate-by-zero shape;
// gini's own Gini type source was not in the pack, so Assume/Solve/Value/Why
// are used per the library's documented public surface rather than a
// retrieved file — see DESIGN.md.
package satx

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// Solver owns one incremental gini instance plus the next-variable cursor.
// BuildMiter creates a fresh Solver for every miter; no instance is reused
// across windows.
type Solver struct {
	g       *gini.Gini
	nextVar int32
}

// NewSolver creates an empty solver with no variables allocated yet.
func NewSolver() *Solver {
	return &Solver{g: gini.New(), nextVar: 1}
}

// NewVar allocates a fresh SAT variable and returns its positive literal.
func (s *Solver) NewVar() z.Lit {
	v := z.Var(s.nextVar)
	s.nextVar++
	return v.Pos()
}

// AddClause adds one clause (a disjunction of lits) to the solver.
func (s *Solver) AddClause(lits ...z.Lit) {
	for _, l := range lits {
		s.g.Add(l)
	}
	s.g.Add(0)
}

// Assume sets the assumption literals for the next Solve call.
func (s *Solver) Assume(lits ...z.Lit) {
	s.g.Assume(lits...)
}

// Solve runs the solver under whatever assumptions were last set.
func (s *Solver) Solve() bool {
	return s.g.Solve() == 1
}

// Value reports the model value of a literal after a satisfiable Solve.
func (s *Solver) Value(l z.Lit) bool {
	return s.g.Value(l)
}

// Why returns the final conflict clause (a subset of the last assumptions)
// after an unsatisfiable Solve, used by MinimizeAssumptions.
func (s *Solver) Why() []z.Lit {
	return s.g.Why(nil)
}
