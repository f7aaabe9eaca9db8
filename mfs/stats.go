// File: stats.go
// Role: end-of-run report (§6.3's Verbose/VeryVerbose, supplemented from
// Acb_NtkOpt's closing printf, acbMfs.c lines ~1618-1633): node/window/
// divisor counts, per-strategy acceptance counts, and the two diagnostic
// counters ABC only ever prints, never branches on.
package mfs

import "fmt"

// Stats accumulates counters over one Engine.Run call. Returned by value
// so a caller can inspect it without a logging dependency, mirroring the
// teacher's DFSResult/BFSResult pattern of a returned result struct.
type Stats struct {
	NodesVisited int
	WindowsBuilt int
	WindowSizeSum int
	DivisorSum    int

	// ChangesConst/Supp1/Supp2/Supp3 count accepted attempts per strategy,
	// ABC's nChanges[0..3].
	ChangesConst int
	ChangesSupp1 int
	ChangesSupp2 int
	ChangesSupp3 int

	// WindowOverflow counts attempts skipped for exceeding WinNodeMax.
	WindowOverflow int

	// BecameUnsatAtWrongPlace is a pure diagnostic counter (ABC's
	// StrCount), never read back into control flow. No code path in this
	// module increments it, so it always reports 0.
	BecameUnsatAtWrongPlace int
}

// String renders the same summary shape Acb_NtkOpt prints at the end of a
// run.
func (s *Stats) String() string {
	return fmt.Sprintf(
		"mfs: visited=%d windows=%d avgWin=%.2f avgDiv=%.2f const=%d supp1=%d supp2=%d supp3=%d overflow=%d unsatAtWrongPlace=%d",
		s.NodesVisited, s.WindowsBuilt, s.avgWindowSize(), s.avgDivisors(),
		s.ChangesConst, s.ChangesSupp1, s.ChangesSupp2, s.ChangesSupp3,
		s.WindowOverflow, s.BecameUnsatAtWrongPlace,
	)
}

func (s *Stats) avgWindowSize() float64 {
	if s.WindowsBuilt == 0 {
		return 0
	}
	return float64(s.WindowSizeSum) / float64(s.WindowsBuilt)
}

func (s *Stats) avgDivisors() float64 {
	if s.WindowsBuilt == 0 {
		return 0
	}
	return float64(s.DivisorSum) / float64(s.WindowsBuilt)
}
