package pipeline

import "github.com/kaya-arro/sc-simplify/scomplex"

// minimizePair computes Y' for a pair (X, Y): first X'' = X - Y (the
// facets of X not already present in Y), then Y' = X'' ∩ Y. The
// emitted pair is (X, Y') — X itself is never altered.
//
// When Y == X, X'' is the canonical empty complex, and intersecting
// the empty complex with anything yields the canonical empty complex
// back: the pathological case of minimizing a complex against itself
// is intentionally well-defined as producing an empty second half.
func minimizePair[L scomplex.Label](x, y *scomplex.Complex[L]) *scomplex.Complex[L] {
	xDoublePrime := scomplex.FacetDifference(x, y)

	return scomplex.Intersection(xDoublePrime, y)
}
