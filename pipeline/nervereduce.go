package pipeline

import (
	"github.com/kaya-arro/sc-simplify/progress"
	"github.com/kaya-arro/sc-simplify/scomplex"
)

// nerveReduce repeatedly takes Čech nerves to shrink c. Every step
// compares the nerve's height to c's height and the nerve's facet count
// to c's vertex count, the two axes on which successive nerves can make
// progress; the parity of the step count decides which direction counts
// as progress and whether the double nerve or the single nerve is
// adopted. It stops as soon as neither axis improves and reports how
// many reductions it performed.
//
// Grounded directly on the original's nerve_reduce: a single nerve can
// increase facet count even while reducing height (or vice versa), so
// checking only one axis misses real progress; that is why both axes
// are checked at every step.
func nerveReduce[L scomplex.Label](c *scomplex.Complex[L], sink progress.Sink, cancel <-chan struct{}) (*scomplex.Complex[L], int) {
	n := 0
	baseVertexCount := c.VertexCount()
	if baseVertexCount == 0 {
		return c, 0
	}

	nerve := c.Nerve()
	for {
		select {
		case <-cancel:
			if n%2 != 0 {
				return nerve, n
			}

			return c, n
		default:
		}

		if n%2 == 0 {
			if !(nerve.Height() < c.Height() || nerve.FacetCount() < baseVertexCount) {
				break
			}
			c = nerve.Nerve()
			baseVertexCount = c.VertexCount()
		} else {
			if !(nerve.Height() > c.Height() || nerve.FacetCount() > baseVertexCount) {
				break
			}
			nerve = c.Nerve()
		}
		n++
		sink.OnProgress("nerve-reduce", n, 0, "")
	}

	if n%2 != 0 {
		c = nerve
	}

	return c, n
}
