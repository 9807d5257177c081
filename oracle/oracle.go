// Package oracle implements a one-sidedly-sound contractibility test: it
// may answer "not contractible" when the complex actually is (a false
// negative), but it never answers "contractible" when the complex is
// not (spec.md §4.5). Every exact branch is a real topological fact; the
// only approximation is that the final fallback can give up.
package oracle

import (
	"github.com/kaya-arro/sc-simplify/accretion"
	"github.com/kaya-arro/sc-simplify/face"
	"github.com/kaya-arro/sc-simplify/scomplex"
)

// Thresholds below which the nerve-reduction fixed point is treated as
// inconclusive evidence of non-contractibility rather than grounds for
// a deeper (and more expensive) subcomplex search. spec.md §9 leaves
// these as tunable constants rather than derived values.
const (
	minVertexCountForDeepCheck = 5
	minFacetCountForDeepCheck  = 5
	minHeightForDeepCheck      = 3
)

// IsContractible reports whether c is contractible, favoring false
// negatives over false positives wherever it cannot decide exactly.
func IsContractible[L scomplex.Label](c *scomplex.Complex[L]) bool {
	if c.Height() == 0 {
		return false
	}

	sc := c
	for {
		facetCount := sc.FacetCount()
		if facetCount == 1 {
			return true
		}

		height := sc.Height()
		if height == 1 {
			return false
		}

		vertexCount := sc.VertexCount()
		if facetCount == 2 {
			facets := sc.Facets()
			return vertexCount != facets[0].Len()+facets[1].Len()
		}

		nerve := sc.Nerve()
		nerveFacetCount := nerve.FacetCount()
		if vertexCount != nerveFacetCount {
			// The nerve has fewer facets than sc has vertices: progress,
			// so recurse on it.
			sc = nerve
			continue
		}

		// Taking the nerve made no progress. There exist contractible
		// complexes that never reduce this way, but not below this size,
		// so below it we report non-contractible rather than pay for the
		// subcomplex search.
		if vertexCount < minVertexCountForDeepCheck || facetCount < minFacetCountForDeepCheck || height < minHeightForDeepCheck {
			return false
		}

		target := nerve
		if nerve.Height() >= height {
			target = nerve.Nerve()
		}

		seed := scomplex.FromCheckSorted([]*face.Face[L]{target.Facets()[0]})

		return accretion.IsDeformationRetract(seed, target, IsContractible[L])
	}
}

// IsDeformationRetract reports whether sub is a deformation retract of
// whole, using IsContractible to validate each accretion step.
func IsDeformationRetract[L scomplex.Label](sub, whole *scomplex.Complex[L]) bool {
	return accretion.IsDeformationRetract(sub, whole, IsContractible[L])
}

// ContractibleSubcomplex grows a contractible subcomplex of c, using
// IsContractible to validate each accretion step.
func ContractibleSubcomplex[L scomplex.Label](c *scomplex.Complex[L]) *scomplex.Complex[L] {
	return accretion.ContractibleSubcomplex(c, IsContractible[L])
}
