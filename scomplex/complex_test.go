package scomplex

import (
	"testing"

	"github.com/kaya-arro/sc-simplify/face"
	"github.com/stretchr/testify/require"
)

func tri(verts ...uint16) *face.Face[uint16] {
	return face.New(verts...)
}

func TestFromCheckUniqueEmptyInput(t *testing.T) {
	c := FromCheckUnique[uint16](nil)
	require.True(t, c.IsEmptyComplex())
	require.Equal(t, 0, c.Height())
	require.Equal(t, 1, c.FacetCount())
}

func TestFromCheckUniqueDedupesAndDropsNonMaximal(t *testing.T) {
	c := FromCheckUnique([]*face.Face[uint16]{
		tri(1, 2, 3),
		tri(1, 2),
		tri(1, 2, 3), // exact duplicate
		tri(4),
	})
	require.Equal(t, 2, c.FacetCount())
	require.True(t, c.HasFace(tri(1, 2)))
	require.True(t, c.HasFace(tri(4)))
	require.Equal(t, 3, c.Height())
}

func TestFromCheckMaximalSkipsDedup(t *testing.T) {
	// Two identical facets of equal cardinality: maximalify's same-
	// cardinality fast path never compares them, so both survive.
	c := FromCheckMaximal([]*face.Face[uint16]{
		tri(1, 2),
		tri(1, 2),
	})
	require.Equal(t, 2, c.FacetCount())
}

func TestSingleFacetComplex(t *testing.T) {
	c := FromCheckUnique([]*face.Face[uint16]{tri(1, 2, 3)})
	require.Equal(t, 1, c.FacetCount())
	require.Equal(t, 3, c.Height())
	require.Equal(t, 3, c.VertexCount())
}

func TestVertexSetUnionsAllFacets(t *testing.T) {
	c := FromCheckUnique([]*face.Face[uint16]{tri(1, 2), tri(3, 4)})
	require.ElementsMatch(t, []uint16{1, 2, 3, 4}, c.VertexSet().Tuple())
}

func TestNerveOfEmptyComplexIsEmpty(t *testing.T) {
	c := FromCheckUnique[uint16](nil)
	n := c.Nerve()
	require.True(t, n.IsEmptyComplex())
}

func TestNerveOfDisjointEdgesIsDiscrete(t *testing.T) {
	// Two disjoint edges: the two vertices of each edge lie in the same
	// single facet, so the four candidate nerve faces collapse to two
	// singletons that share no facet index.
	c := FromCheckUnique([]*face.Face[uint16]{tri(1, 2), tri(3, 4)})
	n := c.Nerve()
	require.Equal(t, 2, n.FacetCount())
	require.Equal(t, 1, n.Height())
}

func TestNerveDedupesSameVertexMembership(t *testing.T) {
	// A single facet {1,2,3}: every vertex is contained in exactly facet
	// index 0, so all three candidate nerve faces collapse to one.
	c := FromCheckUnique([]*face.Face[uint16]{tri(1, 2, 3)})
	n := c.Nerve()
	require.Equal(t, 1, n.FacetCount())
	require.True(t, n.HasFace(tri(0)))
}

func TestLinkOfVertex(t *testing.T) {
	// Triangle boundary: link of vertex 1 is the two points {2} and {3}.
	c := FromCheckUnique([]*face.Face[uint16]{tri(1, 2), tri(2, 3), tri(1, 3)})
	l := c.Link(tri(1))
	require.Equal(t, 2, l.FacetCount())
	require.True(t, l.HasFace(tri(2)))
	require.True(t, l.HasFace(tri(3)))
}

func TestStarReturnsCofaces(t *testing.T) {
	c := FromCheckUnique([]*face.Face[uint16]{tri(1, 2, 3), tri(1, 4)})
	s := c.Star(tri(1))
	require.Len(t, s, 2)
}

func TestIntersectionOfComplexes(t *testing.T) {
	a := FromCheckUnique([]*face.Face[uint16]{tri(1, 2, 3)})
	b := FromCheckUnique([]*face.Face[uint16]{tri(2, 3, 4)})
	inter := Intersection(a, b)
	require.True(t, inter.HasFace(tri(2, 3)))
	require.Equal(t, 2, inter.Height())
}

func TestIntersectionDisjointComplexesIsEmpty(t *testing.T) {
	a := FromCheckUnique([]*face.Face[uint16]{tri(1, 2)})
	b := FromCheckUnique([]*face.Face[uint16]{tri(3, 4)})
	require.True(t, Intersection(a, b).IsEmptyComplex())
}

func TestFacetDifference(t *testing.T) {
	a := FromCheckUnique([]*face.Face[uint16]{tri(1, 2), tri(3, 4)})
	b := FromCheckUnique([]*face.Face[uint16]{tri(3, 4)})
	d := FacetDifference(a, b)
	require.Equal(t, 1, d.FacetCount())
	require.True(t, d.HasFace(tri(1, 2)))
}

func TestFacetDifferenceOfIdenticalComplexesIsEmpty(t *testing.T) {
	a := FromCheckUnique([]*face.Face[uint16]{tri(1, 2), tri(3, 4)})
	require.True(t, FacetDifference(a, a).IsEmptyComplex())
}

func TestRelabelPreservesOrderAndCompacts(t *testing.T) {
	c := FromCheckUnique([]*face.Face[uint16]{tri(10, 20), tri(30)})
	r := c.Relabel()
	require.ElementsMatch(t, []uint16{0, 1, 2}, r.VertexSet().Tuple())
	require.True(t, r.HasFace(tri(0, 1)))
	require.True(t, r.HasFace(tri(2)))
}

func TestRelabelDescendingReversesOrder(t *testing.T) {
	c := FromCheckUnique([]*face.Face[uint16]{tri(10), tri(20)})
	r := c.RelabelDescending()
	require.True(t, r.HasFace(tri(0))) // originally 20, the largest, maps to 0
	require.True(t, r.HasFace(tri(1)))
}

func TestCloneIsIndependent(t *testing.T) {
	c := FromCheckUnique([]*face.Face[uint16]{tri(1, 2)})
	clone := c.Clone()
	clone.facets[0] = tri(9, 9)
	require.True(t, c.HasFace(tri(1, 2)))
}
