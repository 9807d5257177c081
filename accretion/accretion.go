// Package accretion builds subcomplexes up one facet at a time, only
// ever adding a facet when doing so is known not to change homotopy
// type. It never imports oracle: the contractibility test it needs is
// passed in as a function value, so oracle can depend on accretion
// without the reverse import existing (spec.md §4.6, §4.7).
package accretion

import (
	"github.com/kaya-arro/sc-simplify/face"
	"github.com/kaya-arro/sc-simplify/scomplex"
)

// Contractible is the shape of the test EnlargeFromComplex needs.
// oracle.IsContractible satisfies this signature.
type Contractible[L scomplex.Label] func(*scomplex.Complex[L]) bool

// EnlargeFromComplex grows seed by repeatedly folding in a facet of
// other whenever the intersection of that facet with the current
// accumulation is contractible: the gluing-lemma condition under which
// attaching a simplex preserves homotopy type.
//
// Only facets that share a vertex with the current accumulation are
// ever tested, since a vertex-disjoint facet intersects it in the void
// complex, which is never contractible. When a facet is accepted, only
// the facets sharing a vertex with THAT facet specifically are
// requeued for testing — their standing relative to the rest of the
// accumulation hasn't changed, so retesting them against the whole
// thing again would repeat work for no new information.
//
// Returns the grown complex and whether every facet of other ended up
// covered (the accumulation became a deformation retract of other).
func EnlargeFromComplex[L scomplex.Label](seed, other *scomplex.Complex[L], contractible Contractible[L]) (*scomplex.Complex[L], bool) {
	if seed.IsEmptyComplex() {
		return seed.Clone(), other.IsEmptyComplex()
	}

	accFacets := seed.Facets()

	var queue, remaining []*face.Face[L]
	for _, of := range other.Facets() {
		if intersectsAny(of, accFacets) {
			queue = append(queue, of)
		} else {
			remaining = append(remaining, of)
		}
	}

	for len(queue) > 0 {
		candidate := queue[0]
		queue = queue[1:]

		inter := intersectionWithFacets(candidate, accFacets)
		if !contractible(inter) {
			remaining = append(remaining, candidate)
			continue
		}

		accFacets = append(accFacets, candidate)

		next := remaining[:0:0]
		for _, of := range remaining {
			if ov, ok := candidate.MaybeIntersection(of); ok && !inter.HasFace(ov) {
				queue = append(queue, of)
			} else {
				next = append(next, of)
			}
		}
		remaining = next
	}

	return scomplex.FromCheckUnique(accFacets), len(remaining) == 0
}

// IsDeformationRetract reports whether sub accretes, under contractible,
// to cover every facet of whole: the last-resort test oracle falls back
// to when its cheaper structural checks are inconclusive, and the
// edge-safety test pinch runs before contracting an edge.
func IsDeformationRetract[L scomplex.Label](sub, whole *scomplex.Complex[L], contractible Contractible[L]) bool {
	_, covered := EnlargeFromComplex(sub, whole, contractible)

	return covered
}

// ContractibleSubcomplex greedily grows a contractible subcomplex of c,
// seeded from c's first facet (itself always contractible, being a
// simplex). The result is not guaranteed to cover all of c; callers
// that need that guarantee should test the result against c with
// IsDeformationRetract.
func ContractibleSubcomplex[L scomplex.Label](c *scomplex.Complex[L], contractible Contractible[L]) *scomplex.Complex[L] {
	if c.IsEmptyComplex() {
		return c.Clone()
	}

	facets := c.Facets()
	seed := scomplex.FromCheckSorted([]*face.Face[L]{facets[0]})
	grown, _ := EnlargeFromComplex(seed, c, contractible)

	return grown
}

func intersectsAny[L scomplex.Label](f *face.Face[L], facets []*face.Face[L]) bool {
	for _, g := range facets {
		if !f.IsDisjoint(g) {
			return true
		}
	}

	return false
}

// intersectionWithFacets intersects candidate against every facet in
// accFacets, keeping only the non-empty results, and returns the
// resulting Complex.
func intersectionWithFacets[L scomplex.Label](candidate *face.Face[L], accFacets []*face.Face[L]) *scomplex.Complex[L] {
	out := make([]*face.Face[L], 0, len(accFacets))
	for _, f := range accFacets {
		if inter, ok := f.MaybeIntersection(candidate); ok {
			out = append(out, inter)
		}
	}

	return scomplex.FromCheckUnique(out)
}
