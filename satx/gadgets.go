// File: gadgets.go
// Role: small Tseitin gadgets the miter builder assembles windows of CNF
// with: XOR-difference detection at TFO roots and conditional-equality
// buffers linking divisor variables across timeframes.
package satx

import "github.com/irifrance/gini/z"

// addXorDetect asserts d <-> (a xor b) via the four-clause Tseitin
// encoding. Grounded on acbMfs.c's Acb_NtkWindow2Cnf, which pushes exactly
// these four clauses (same literals, different order) when wiring a TFO
// root's duplicate-copy comparison into the miter's difference output.
func addXorDetect(s *Solver, a, b, d z.Lit) {
	s.AddClause(a.Not(), b.Not(), d.Not())
	s.AddClause(a.Not(), b, d)
	s.AddClause(a, b.Not(), d)
	s.AddClause(a, b, d.Not())
}

// addOrInto asserts out <-> OR(parts). An empty parts forces out false.
func addOrInto(s *Solver, out z.Lit, parts []z.Lit) {
	if len(parts) == 0 {
		s.AddClause(out.Not())
		return
	}
	for _, p := range parts {
		s.AddClause(p.Not(), out)
	}
	wide := append([]z.Lit{}, parts...)
	wide = append(wide, out.Not())
	s.AddClause(wide...)
}

// addEqualityBuffer asserts enable -> (a <-> b), leaving a and b
// unconstrained relative to each other when enable is false. Named for
// ABC's sat_solver_add_buffer_enable, which gates the same kind of
// conditional divisor-equality link between adjacent timeframe copies.
func addEqualityBuffer(s *Solver, a, b, enable z.Lit) {
	s.AddClause(enable.Not(), a.Not(), b)
	s.AddClause(enable.Not(), a, b.Not())
}
