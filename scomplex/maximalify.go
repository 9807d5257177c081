package scomplex

import (
	"sort"

	"github.com/kaya-arro/sc-simplify/face"
)

// maximalify re-establishes (I2) and (I3): sort facets by descending
// cardinality, then walk from the largest down, dropping any facet that
// is a subset of one already retained. It also re-establishes (I1) via
// canonicalizeEmpty.
//
// Fast path: if every candidate has the same cardinality, none can
// contain another (a strict subset always has strictly smaller
// cardinality), so the scan is skipped entirely.
//
// Complexity: O(n log n) to sort, O(n^2) worst case for the containment
// scan (each retained facet is compared against every smaller candidate).
func (c *Complex[L]) maximalify() {
	sort.SliceStable(c.facets, func(i, j int) bool { return c.facets[i].Len() > c.facets[j].Len() })

	if c.allSameCardinality() {
		c.canonicalizeEmpty()

		return
	}

	kept := make([]*face.Face[L], 0, len(c.facets))
	for _, f := range c.facets {
		if !containedInAny(f, kept) {
			kept = append(kept, f)
		}
	}
	c.facets = kept
	c.canonicalizeEmpty()
}

// uniqueify re-establishes (I4) by routing facets through a map keyed on
// each Face's canonical Key.
func (c *Complex[L]) uniqueify() {
	seen := make(map[face.Key]*face.Face[L], len(c.facets))
	order := make([]face.Key, 0, len(c.facets))
	for _, f := range c.facets {
		k := f.Key()
		if _, ok := seen[k]; !ok {
			seen[k] = f
			order = append(order, k)
		}
	}
	out := make([]*face.Face[L], len(order))
	for i, k := range order {
		out[i] = seen[k]
	}
	c.facets = out
}

func (c *Complex[L]) allSameCardinality() bool {
	if len(c.facets) == 0 {
		return true
	}
	n := c.facets[0].Len()
	for _, f := range c.facets[1:] {
		if f.Len() != n {
			return false
		}
	}

	return true
}

// containedInAny reports whether f is a subset of any facet in kept.
// kept is sorted by descending cardinality, so this only needs to scan
// facets at least as large as f; callers pass kept already filtered that
// way by construction (maximalify appends in descending-cardinality
// order, so every element is >= any later candidate's cardinality check
// is unnecessary — f.Leq short-circuits on cardinality regardless).
func containedInAny[L Label](f *face.Face[L], kept []*face.Face[L]) bool {
	for _, g := range kept {
		if g.Len() < f.Len() {
			break
		}
		if f.Leq(g) && !f.Equal(g) {
			return true
		}
	}

	return false
}

// HasFace reports whether f is a face of c, i.e. whether some facet of c
// contains f. Facets are scanned largest-first (I3), so the scan
// short-circuits as soon as a facet smaller than f is reached.
func (c *Complex[L]) HasFace(f *face.Face[L]) bool {
	for _, g := range c.facets {
		if g.Len() < f.Len() {
			return false
		}
		if f.Leq(g) {
			return true
		}
	}

	return false
}
