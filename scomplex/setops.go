package scomplex

import "github.com/kaya-arro/sc-simplify/face"

// Intersection pairwise-intersects every facet of a with every facet of
// b, keeps the non-empty results, and maximalifies: the facet-level
// analogue of set intersection at the complex level. Used by
// pipeline's minimizePair and by the pinch edge-safety test (spec.md §4.8, §4.11).
func Intersection[L Label](a, b *Complex[L]) *Complex[L] {
	candidates := make([]*face.Face[L], 0, len(a.facets)+len(b.facets))
	for _, fa := range a.facets {
		for _, fb := range b.facets {
			if inter, ok := fa.MaybeIntersection(fb); ok {
				candidates = append(candidates, inter)
			}
		}
	}

	return FromCheckUnique(candidates)
}

// FacetDifference returns the facets of a whose Key does not match any
// facet of b: a facet-multiset subtraction, not a vertex-level one.
// Since the result is a subsequence of a's already-maximal, already-
// unique facets, only the descending-cardinality sort needs restoring.
func FacetDifference[L Label](a, b *Complex[L]) *Complex[L] {
	exclude := make(map[face.Key]struct{}, len(b.facets))
	for _, f := range b.facets {
		exclude[f.Key()] = struct{}{}
	}

	kept := make([]*face.Face[L], 0, len(a.facets))
	for _, f := range a.facets {
		if _, skip := exclude[f.Key()]; !skip {
			kept = append(kept, f)
		}
	}

	return FromCheckSorted(kept)
}
