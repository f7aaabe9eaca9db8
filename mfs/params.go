// File: params.go
// Role: engine configuration (§6.3), built with the functional-options
// pattern the teacher uses for its own Graph/DFS/BFS options
// (dfs.Option, bfs.Option, core.GraphOption).
package mfs

// Params configures one Engine.Run call.
type Params struct {
	LutSize int

	TfiLevMax int
	TfoLevMax int
	FanoutMax int
	WinNodeMax int

	Area  bool
	Ashen bool

	ConflictLimit int
	NodesMax      int

	Verbose     bool
	VeryVerbose bool
}

// Option configures a Params value.
type Option func(*Params)

// DefaultParams mirrors ABC's own Acb_Mfs_t default pars: K=6, a modest
// window, area mode, Supp3 disabled.
func DefaultParams() Params {
	return Params{
		LutSize:       6,
		TfiLevMax:     5,
		TfoLevMax:     2,
		FanoutMax:     20,
		WinNodeMax:    200,
		Area:          true,
		ConflictLimit: 500,
	}
}

// WithLutSize sets the maximum fan-in K (clamped to [1,6] by the network).
func WithLutSize(k int) Option { return func(p *Params) { p.LutSize = k } }

// WithWindow sets the four window-shaping bounds in one call.
func WithWindow(tfiLevMax, tfoLevMax, fanoutMax, winNodeMax int) Option {
	return func(p *Params) {
		p.TfiLevMax = tfiLevMax
		p.TfoLevMax = tfoLevMax
		p.FanoutMax = fanoutMax
		p.WinNodeMax = winNodeMax
	}
}

// WithArea selects area-mode scheduling (MFFC buckets, Supp1/2/3).
func WithArea() Option { return func(p *Params) { p.Area = true } }

// WithDelay selects delay-mode scheduling (priority queue, Supp2 only).
func WithDelay() Option { return func(p *Params) { p.Area = false } }

// WithAshen enables Supp3's two-node reimplementation search.
func WithAshen() Option { return func(p *Params) { p.Ashen = true } }

// WithConflictLimit sets the per-SAT-call conflict budget.
func WithConflictLimit(n int) Option { return func(p *Params) { p.ConflictLimit = n } }

// WithNodesMax caps the number of pivots visited in one Run.
func WithNodesMax(n int) Option { return func(p *Params) { p.NodesMax = n } }

// WithVerbose enables per-run summary reporting granularity.
func WithVerbose(veryVerbose bool) Option {
	return func(p *Params) {
		p.Verbose = true
		p.VeryVerbose = veryVerbose
	}
}

// NewParams builds a Params from DefaultParams with opts applied in order.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
