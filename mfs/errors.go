// File: errors.go
// Role: the attempt-local error taxonomy (§7). Every one of these aborts
// only the current pivot attempt; the scheduler always continues.
package mfs

import "errors"

var (
	// ErrWindowTooLarge means the assembled window exceeded WinNodeMax;
	// soft and expected, counted in Stats.WindowOverflow.
	ErrWindowTooLarge = errors.New("mfs: window exceeds configured node limit")

	// ErrSolverConflictOverflow means a SAT call was abandoned under the
	// configured conflict budget without a verdict.
	ErrSolverConflictOverflow = errors.New("mfs: SAT solve exceeded conflict limit")

	// ErrUnexpectedSAT means a call the algorithm proved must be UNSAT
	// returned SAT — an internal inconsistency, not a normal miss.
	ErrUnexpectedSAT = errors.New("mfs: SAT solver returned SAT where UNSAT was expected")

	// ErrUnexpectedUNSAT means a call expected to be SAT (e.g. a window's
	// own consistency check) came back UNSAT.
	ErrUnexpectedUNSAT = errors.New("mfs: SAT solver returned UNSAT where SAT was expected")

	// ErrEmptyExtractedFunction means Supp3's H-side extraction yielded a
	// constant, so the two-node reimplementation is pointless.
	ErrEmptyExtractedFunction = errors.New("mfs: supp3 extraction yielded a constant H-function")
)
