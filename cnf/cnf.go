// File: cnf.go
// Role: truth table -> CNF byte string (§3.3), plus per-node caching and
// whole-window derivation. Grounded on Acb_DeriveCnfFromTruth/
// Acb_DeriveCnfForWindowOne/Acb_DeriveCnfForWindow (acbMfs.c lines ~53-120).
package cnf

import "github.com/lutnet/mfs/ntk"

// term marks the end of one clause within a node's CNF byte string,
// mirroring ABC's (char)-1 clause terminator.
const term byte = 0xFF

// lit packs variable index v and its polarity into one byte: an even value
// is the positive literal, odd is its negation — the same Abc_Var2Lit
// convention the teacher source uses, minus the bit-packed struct.
func lit(v int, neg bool) byte {
	b := byte(v) * 2
	if neg {
		b++
	}
	return b
}

// DeriveCnfFromTruth derives the CNF byte string for a node with the given
// truth table and fan-in count. Output variable nVars encodes the node's
// own SAT variable; clauses force it to track truth for every input
// combination.
//
// Truth tables are assumed stored with their k-variable pattern replicated
// to fill all 64 bits (the form extract's functions return; CreateNode and
// UpdateNode store the word exactly as given, without replicating it), so a literal
// whole-word comparison against 0/^0 exactly detects a constant function
// without masking to the first 2^nVars bits.
func DeriveCnfFromTruth(truth uint64, nVars int) []byte {
	if truth == 0 || ^truth == 0 {
		neg := truth == 0
		return []byte{lit(nVars, neg), term}
	}

	var buf []byte
	for c := 0; c < 2; c++ {
		f := truth
		if c == 1 {
			f = ^truth
		}
		for _, cb := range isopCover(f, nVars) {
			for v := 0; v < nVars; v++ {
				switch cb[v] {
				case 0:
					buf = append(buf, lit(v, false))
				case 1:
					buf = append(buf, lit(v, true))
				}
			}
			buf = append(buf, lit(nVars, c == 1))
			buf = append(buf, term)
		}
	}
	return buf
}

// DeriveForNode fills the CNF cache for object i if it is empty, and
// returns the cached byte string either way. Grounded on
// Acb_DeriveCnfForWindowOne.
func DeriveForNode(n *ntk.Network, i int) []byte {
	if cached := n.Cnf(i); cached != nil {
		return cached
	}
	built := DeriveCnfFromTruth(n.Truth(i), n.FaninNum(i))
	n.SetCnf(i, built)
	return built
}

// DeriveForWindow fills the CNF cache for every interior node referenced by
// ids, skipping nodes that already have a cached CNF. Grounded on
// Acb_DeriveCnfForWindow, minus its PivotVar/leaf-skip bookkeeping — that
// belongs to the caller (the miter builder in satx decides, per window
// copy, which ids are leaves and adds no clauses for those; their CNF is
// still derived and cached here).
func DeriveForWindow(n *ntk.Network, ids []int32) {
	for _, id := range ids {
		if n.IsInterior(int(id)) {
			DeriveForNode(n, int(id))
		}
	}
}
