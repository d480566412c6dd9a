package minimax

// searchParams is the per-node search state threaded down the recursion.
// Parameters flow downward only: a child receives a copy via child() and
// nothing it does is visible to its parent.
type searchParams interface {
	remainingDepth() int
	// child returns the parameter set for a recursive call, one ply deeper.
	child() searchParams
	raiseAlpha(v float64)
	lowerBeta(v float64)
	prune() bool
}

// plainParams drives plain minimax: remaining depth only, the alpha/beta
// updates are no-ops, and pruning never triggers.
type plainParams struct {
	depth int
}

func (p *plainParams) remainingDepth() int { return p.depth }
func (p *plainParams) child() searchParams { return &plainParams{depth: p.depth - 1} }
func (p *plainParams) raiseAlpha(float64)  {}
func (p *plainParams) lowerBeta(float64)   {}
func (p *plainParams) prune() bool         { return false }

// pruningParams drives alpha-beta: alpha is the best value the first player
// can already guarantee, beta the best for the second.
type pruningParams struct {
	depth int
	alpha float64
	beta  float64
}

func (p *pruningParams) remainingDepth() int { return p.depth }

func (p *pruningParams) child() searchParams {
	return &pruningParams{depth: p.depth - 1, alpha: p.alpha, beta: p.beta}
}

func (p *pruningParams) raiseAlpha(v float64) {
	if v > p.alpha {
		p.alpha = v
	}
}

func (p *pruningParams) lowerBeta(v float64) {
	if v < p.beta {
		p.beta = v
	}
}

func (p *pruningParams) prune() bool { return p.alpha >= p.beta }
