// Package scomplex implements Complex, an ordered sequence of maximal
// Faces (facets) satisfying the invariants of spec.md §3:
//
//	(I1) the empty complex is represented as a single facet: the empty Face.
//	(I2) no facet is a strict subset of another.
//	(I3) facets are sorted by descending cardinality (ties free).
//	(I4) no duplicate facets.
//
// Every exported function that returns a *Complex re-establishes all four
// invariants before returning; callers may assume they hold on entry to
// any other exported function in this package or in accretion, oracle,
// pinch, or pipeline.
package scomplex

import (
	"sort"

	"github.com/kaya-arro/sc-simplify/face"
)

// Label re-exports the shared vertex-label constraint.
type Label = face.Label

// Complex is an ordered sequence of facets over vertex labels of type L.
type Complex[L Label] struct {
	facets []*face.Face[L]
}

// FromCheckUnique builds a Complex from candidate facets that may contain
// duplicates and may not be maximal: it deduplicates via each Face's Key,
// then maximalifies. Use this when the input is fully untrusted.
func FromCheckUnique[L Label](candidates []*face.Face[L]) *Complex[L] {
	seen := make(map[face.Key]*face.Face[L], len(candidates))
	for _, f := range candidates {
		seen[f.Key()] = f
	}
	uniq := make([]*face.Face[L], 0, len(seen))
	for _, f := range seen {
		uniq = append(uniq, f)
	}
	c := &Complex[L]{facets: uniq}
	c.maximalify()

	return c
}

// FromCheckMaximal builds a Complex from candidate faces assumed unique
// but not necessarily maximal: it skips deduplication and only
// maximalifies. Use this for --check-input, where the caller trusts the
// parser's per-line dedup but not maximality.
func FromCheckMaximal[L Label](candidates []*face.Face[L]) *Complex[L] {
	c := &Complex[L]{facets: append([]*face.Face[L](nil), candidates...)}
	c.maximalify()

	return c
}

// FromCheckSorted builds a Complex from candidate facets assumed already
// unique and maximal: it only restores the descending-cardinality sort
// order. Use this for trusted facet lists (the default, non-check-input
// read path).
func FromCheckSorted[L Label](candidates []*face.Face[L]) *Complex[L] {
	c := &Complex[L]{facets: append([]*face.Face[L](nil), candidates...)}
	c.canonicalizeEmpty()
	sort.SliceStable(c.facets, func(i, j int) bool { return c.facets[i].Len() > c.facets[j].Len() })

	return c
}

// empty returns the canonical empty complex: a single facet, the empty
// Face (spec.md §3 invariant I1).
func empty[L Label]() *Complex[L] {
	return &Complex[L]{facets: []*face.Face[L]{face.Empty[L]()}}
}

// canonicalizeEmpty replaces a zero-facet slice with the canonical
// single-empty-facet representation required by invariant I1. Every
// constructor and mutator must call this before returning.
func (c *Complex[L]) canonicalizeEmpty() {
	if len(c.facets) == 0 {
		c.facets = []*face.Face[L]{face.Empty[L]()}
	}
}

// Facets returns the Complex's facets, sorted by descending cardinality.
// The returned slice is a copy of the header (not of the Faces
// themselves); Faces are treated as read-only by convention once stored
// in a Complex.
func (c *Complex[L]) Facets() []*face.Face[L] {
	out := make([]*face.Face[L], len(c.facets))
	copy(out, c.facets)

	return out
}

// FacetCount returns the number of facets.
func (c *Complex[L]) FacetCount() int { return len(c.facets) }

// IsEmptyComplex reports whether c is the canonical empty complex (its
// only facet is the empty Face).
func (c *Complex[L]) IsEmptyComplex() bool {
	return len(c.facets) == 1 && c.facets[0].IsEmpty()
}

// Height is the cardinality of the largest facet: 0 for the empty
// complex, 1 for a discrete complex.
func (c *Complex[L]) Height() int {
	if len(c.facets) == 0 {
		return 0
	}

	return c.facets[0].Len()
}

// Clone returns a Complex with its own facet slice. The Face values
// themselves are shared with c; Faces stored in a Complex are treated
// as read-only by convention (see Facets), so only the slice is copied.
func (c *Complex[L]) Clone() *Complex[L] {
	out := make([]*face.Face[L], len(c.facets))
	copy(out, c.facets)

	return &Complex[L]{facets: out}
}
