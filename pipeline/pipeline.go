package pipeline

import (
	"github.com/kaya-arro/sc-simplify/oracle"
	"github.com/kaya-arro/sc-simplify/pinch"
	"github.com/kaya-arro/sc-simplify/scomplex"
)

// Result holds the output of Run.
type Result[L scomplex.Label] struct {
	// Reduced is the input complex after nerve-reduction and pinching.
	Reduced *scomplex.Complex[L]
	// Pair is the second half of the (Reduced, Pair) output pair: a
	// contractible subcomplex of Reduced, minimized against it unless
	// WithSkipMinimizePair was given. Nil when WithNoPair was given.
	Pair *scomplex.Complex[L]
	// NerveReductions is the number of nerve-taking steps performed.
	NerveReductions int
	// PinchSweeps is the number of pinch sweeps performed.
	PinchSweeps int
	// PinchCount is the total number of edges pinched across all sweeps.
	PinchCount int
	// Cancelled reports whether Cancel fired before Run finished.
	Cancelled bool
}

// Run simplifies c: nerve-reduce to a fixed point, then pinch in
// bounded sweeps, then (unless disabled) extract a contractible
// subcomplex and minimize the resulting pair (spec.md §4.4).
func Run[L scomplex.Label](c *scomplex.Complex[L], opts ...Option) *Result[L] {
	o := defaultOptions()
	for _, apply := range opts {
		apply(o)
	}

	res := &Result[L]{Reduced: c}

	if !o.SkipNerve {
		reduced, n := nerveReduce(c, o.Progress, o.Cancel)
		res.Reduced = reduced
		res.NerveReductions = n
		c = reduced
	}

	contractible := oracle.IsContractible[L]
	for res.PinchSweeps < o.MaxPinchLoops {
		select {
		case <-o.Cancel:
			res.Cancelled = true
			res.Reduced = c

			return res
		default:
		}

		next, n, cancelled := pinch.Sweep(c, contractible, o.Cancel)
		res.PinchSweeps++
		res.PinchCount += n
		o.Progress.OnProgress("pinch", res.PinchSweeps, o.MaxPinchLoops, "")

		if cancelled {
			res.Cancelled = true
			res.Reduced = next

			return res
		}
		if n == 0 {
			c = next

			break
		}

		c = next.RelabelDescending()
	}
	res.Reduced = c

	select {
	case <-o.Cancel:
		res.Cancelled = true

		return res
	default:
	}

	if o.NoPair {
		return res
	}

	sub := oracle.ContractibleSubcomplex(c)
	if o.SkipMinimizePair {
		res.Pair = sub

		return res
	}

	res.Pair = minimizePair(c, sub)

	return res
}
