package face_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaya-arro/sc-simplify/face"
)

func TestNewDedupesAndSorts(t *testing.T) {
	f := face.New[uint32](3, 1, 2, 1, 3)
	assert.Equal(t, []uint32{1, 2, 3}, f.Tuple())
	assert.Equal(t, 3, f.Len())
}

func TestEmpty(t *testing.T) {
	f := face.Empty[uint16]()
	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Len())
}

func TestContains(t *testing.T) {
	f := face.New[uint32](5, 10, 15)
	assert.True(t, f.Contains(10))
	assert.False(t, f.Contains(11))
	assert.False(t, face.Empty[uint32]().Contains(0))
}

// P4: Face hash/equality is insensitive to insertion order.
func TestKeyAndEqualInvariantUnderPermutation(t *testing.T) {
	base := []uint32{7, 2, 9, 4, 1}
	rng := rand.New(rand.NewSource(1))
	f0 := face.FromSlice(base)

	for i := 0; i < 20; i++ {
		perm := append([]uint32(nil), base...)
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })
		fp := face.FromSlice(perm)

		assert.Equal(t, f0.Key(), fp.Key())
		assert.True(t, f0.Equal(fp))
	}
}

func TestLeqAndCompare(t *testing.T) {
	a := face.New[uint32](1, 2)
	b := face.New[uint32](1, 2, 3)
	c := face.New[uint32](4, 5)

	assert.True(t, a.Leq(b))
	assert.False(t, b.Leq(a))
	assert.Equal(t, face.Less, a.Compare(b))
	assert.Equal(t, face.Greater, b.Compare(a))
	assert.Equal(t, face.Equal, a.Compare(face.New[uint32](2, 1)))
	assert.Equal(t, face.Incomparable, a.Compare(c))

	// same cardinality, neither contains the other
	d := face.New[uint32](2, 3)
	assert.Equal(t, face.Incomparable, a.Compare(d))
}

func TestIsDisjoint(t *testing.T) {
	a := face.New[uint32](1, 2, 3)
	b := face.New[uint32](4, 5)
	c := face.New[uint32](3, 4)

	assert.True(t, a.IsDisjoint(b))
	assert.False(t, a.IsDisjoint(c))
}

func TestSetOps(t *testing.T) {
	a := face.New[uint32](1, 2, 3)
	b := face.New[uint32](2, 3, 4)

	require.Equal(t, []uint32{2, 3}, a.Intersection(b).Tuple())
	require.Equal(t, []uint32{1, 2, 3, 4}, a.Union(b).Tuple())
	require.Equal(t, []uint32{1}, a.Difference(b).Tuple())

	_, ok := a.MaybeIntersection(face.New[uint32](9, 10))
	assert.False(t, ok)

	inter, ok := a.MaybeIntersection(b)
	assert.True(t, ok)
	assert.Equal(t, []uint32{2, 3}, inter.Tuple())
}

func TestInPlaceOpsMutateReceiver(t *testing.T) {
	a := face.New[uint32](1, 2, 3)
	b := face.New[uint32](2, 3, 4)

	a.IntersectWith(b)
	assert.Equal(t, []uint32{2, 3}, a.Tuple())

	c := face.New[uint32](1, 2)
	c.UnionWith(face.New[uint32](2, 3))
	assert.Equal(t, []uint32{1, 2, 3}, c.Tuple())

	d := face.New[uint32](1, 2, 3)
	d.SubtractFrom(face.New[uint32](2))
	assert.Equal(t, []uint32{1, 3}, d.Tuple())
}

func TestCloneIndependence(t *testing.T) {
	a := face.New[uint32](1, 2, 3)
	b := a.Clone()
	b.UnionWith(face.New[uint32](99))
	assert.Equal(t, []uint32{1, 2, 3}, a.Tuple())
	assert.Equal(t, []uint32{1, 2, 3, 99}, b.Tuple())
}
