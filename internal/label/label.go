// Package label defines the vertex-label type parameter shared by every
// generic package in this module (face, scomplex, accretion, oracle, pinch,
// pipeline).
//
// A simplicial complex here is parametric in the integer width used to store
// vertex labels. The orchestrator (cmd/sc-simplify) picks the width once,
// after scanning the whole input, and instantiates every downstream package
// with that single type parameter — see spec.md §9 "Generic vertex-label
// width".
package label

// Label is the constraint satisfied by the two supported label widths.
// Vertex labels are opaque identifiers in [0, 2^32); the narrower width is
// preferred whenever both the largest label and the facet count fit, since
// nerve construction remaps facet indices into the same label type.
type Label interface {
	~uint16 | ~uint32
}

// FitsNarrow reports whether maxLabel and facetCount both fit in the
// narrower (16-bit) label width. Nerve construction turns facet indices
// into vertex labels of the same width, so facetCount must fit too, not
// just the labels actually present in the input.
func FitsNarrow(maxLabel uint64, facetCount int) bool {
	const narrowMax = 1<<16 - 1

	return maxLabel <= narrowMax && facetCount <= narrowMax
}
