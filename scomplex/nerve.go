package scomplex

import "github.com/kaya-arro/sc-simplify/face"

// Nerve builds the Čech nerve of c: for each vertex v of c, the set of
// facet indices that contain v becomes a facet of the nerve (spec.md
// §3, §4.3).
//
// Two distinct vertices can be contained in exactly the same set of
// facets, producing duplicate candidate faces; spec.md §4.3 calls for
// deduplicating those before maximalifying, so this goes through
// FromCheckUnique rather than the bare maximalify FromCheckMaximal would
// give. The nerve of the empty complex is itself empty.
func (c *Complex[L]) Nerve() *Complex[L] {
	if c.IsEmptyComplex() {
		return empty[L]()
	}

	vertices := c.VertexSet().Tuple()
	candidates := make([]*face.Face[L], 0, len(vertices))
	for _, v := range vertices {
		idxs := make([]L, 0, len(c.facets))
		for i, f := range c.facets {
			if f.Contains(v) {
				idxs = append(idxs, L(i))
			}
		}
		candidates = append(candidates, face.FromSlice(idxs))
	}

	return FromCheckUnique(candidates)
}
