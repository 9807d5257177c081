// Package face implements Face, an unordered set of vertex labels with the
// set-algebra primitives the rest of this module builds on: subset
// comparison, intersection/union/difference, and a canonical ordered tuple
// used as the hash/equality witness for Complex-level deduplication.
//
// A Face owns its label storage; once constructed, its labels are sorted
// ascending and de-duplicated, so Len, Tuple, and Key never re-scan for
// duplicates.
package face

import (
	"sort"

	"github.com/kaya-arro/sc-simplify/internal/label"
)

// Label re-exports the shared vertex-label constraint so callers of this
// package don't need a second import for it.
type Label = label.Label

// Face is a finite set of distinct vertex labels, stored sorted ascending.
type Face[L Label] struct {
	verts []L
}

// Key is the canonical, order-independent, hashable identity of a Face:
// two Faces that represent the same set of labels always produce equal
// Keys, regardless of the order labels were supplied in. It is built from
// the sorted tuple, so it doubles as the anchor for Complex's facet
// deduplication (spec.md §4.1).
type Key string

// New builds a Face from a list of labels, sorting and de-duplicating them.
// Complexity: O(n log n).
func New[L Label](verts ...L) *Face[L] {
	return FromSlice(verts)
}

// FromSlice builds a Face from a slice of labels without requiring the
// caller to convert to variadic form first; the slice is copied, not
// aliased.
func FromSlice[L Label](verts []L) *Face[L] {
	cp := make([]L, len(verts))
	copy(cp, verts)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })

	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return &Face[L]{verts: out}
}

// Empty returns the empty Face (the unique Face with Len() == 0).
func Empty[L Label]() *Face[L] {
	return &Face[L]{}
}

// Len returns the number of distinct vertex labels in the Face.
func (f *Face[L]) Len() int { return len(f.verts) }

// IsEmpty reports whether the Face has no vertices.
func (f *Face[L]) IsEmpty() bool { return len(f.verts) == 0 }

// Contains reports whether v is a vertex of f.
// Complexity: O(log n) via binary search over the sorted backing slice.
func (f *Face[L]) Contains(v L) bool {
	i := sort.Search(len(f.verts), func(i int) bool { return f.verts[i] >= v })

	return i < len(f.verts) && f.verts[i] == v
}

// Tuple returns the sorted ascending sequence of vertices. The returned
// slice is a copy; callers may mutate it freely.
func (f *Face[L]) Tuple() []L {
	out := make([]L, len(f.verts))
	copy(out, f.verts)

	return out
}

// Key returns the canonical hash/equality witness for f: two Faces compare
// Key-equal iff they contain exactly the same labels.
func (f *Face[L]) Key() Key {
	buf := make([]byte, 0, len(f.verts)*labelWidth[L]())
	for _, v := range f.verts {
		buf = appendLabel(buf, v)
	}

	return Key(buf)
}

// labelWidth returns the byte width of L (2 for uint16, 4 for uint32),
// used to size the Key buffer and to drive appendLabel's byte count.
func labelWidth[L Label]() int {
	var zero L
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 4
	}
}

// appendLabel writes v to buf as labelWidth[L]() big-endian bytes.
// Big-endian keeps Key values comparable/sortable as byte strings, which
// is incidental here but harmless.
func appendLabel[L Label](buf []byte, v L) []byte {
	n := labelWidth[L]()
	for i := n - 1; i >= 0; i-- {
		buf = append(buf, byte(v>>(uint(i)*8)))
	}

	return buf
}

// Equal reports whether f and other represent the same set of labels.
func (f *Face[L]) Equal(other *Face[L]) bool {
	if len(f.verts) != len(other.verts) {
		return false
	}
	for i, v := range f.verts {
		if other.verts[i] != v {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of f.
func (f *Face[L]) Clone() *Face[L] {
	cp := make([]L, len(f.verts))
	copy(cp, f.verts)

	return &Face[L]{verts: cp}
}
