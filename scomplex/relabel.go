package scomplex

import "github.com/kaya-arro/sc-simplify/face"

// Relabel returns a copy of c with vertices renumbered 0..VertexCount-1
// in ascending order of their original labels: a compacting relabel
// that preserves relative order (spec.md §4.10).
func (c *Complex[L]) Relabel() *Complex[L] {
	return c.relabel(false)
}

// RelabelDescending is like Relabel but assigns the smallest new label
// to the largest original one, reversing relative order. pipeline.Run
// calls this between pinch sweeps to perturb traversal order (spec.md
// §4.8, §4.10).
func (c *Complex[L]) RelabelDescending() *Complex[L] {
	return c.relabel(true)
}

func (c *Complex[L]) relabel(descending bool) *Complex[L] {
	vertices := c.VertexSet().Tuple()
	if descending {
		for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
			vertices[i], vertices[j] = vertices[j], vertices[i]
		}
	}

	mapping := make(map[L]L, len(vertices))
	for i, v := range vertices {
		mapping[v] = L(i)
	}

	newFacets := make([]*face.Face[L], len(c.facets))
	for i, f := range c.facets {
		old := f.Tuple()
		relabeled := make([]L, len(old))
		for j, v := range old {
			relabeled[j] = mapping[v]
		}
		newFacets[i] = face.FromSlice(relabeled)
	}

	return FromCheckSorted(newFacets)
}
