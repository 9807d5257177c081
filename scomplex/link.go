package scomplex

import "github.com/kaya-arro/sc-simplify/face"

// Link returns the link of f in c: { g − f : g a facet of c, f ⊆ g },
// viewed as a Complex. Distinct facets can produce the same difference
// (or one contained in another), so this is re-maximalified via
// FromCheckUnique rather than assembled with FromCheckSorted.
func (c *Complex[L]) Link(f *face.Face[L]) *Complex[L] {
	candidates := make([]*face.Face[L], 0, len(c.facets))
	for _, g := range c.facets {
		if f.Leq(g) {
			candidates = append(candidates, g.Difference(f))
		}
	}

	return FromCheckUnique(candidates)
}

// Star returns the cofaces of f: the facets of c that contain f.
func (c *Complex[L]) Star(f *face.Face[L]) []*face.Face[L] {
	out := make([]*face.Face[L], 0, len(c.facets))
	for _, g := range c.facets {
		if f.Leq(g) {
			out = append(out, g)
		}
	}

	return out
}
