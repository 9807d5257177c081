package scomplex

import "github.com/kaya-arro/sc-simplify/face"

// VertexSet returns the union of every facet's vertex labels.
func (c *Complex[L]) VertexSet() *face.Face[L] {
	out := face.Empty[L]()
	for _, f := range c.facets {
		out = out.Union(f)
	}

	return out
}

// VertexCount is len(c.VertexSet()), computed without materializing the
// intermediate unioned Face more than once.
func (c *Complex[L]) VertexCount() int {
	return c.VertexSet().Len()
}
