package face

// Intersection returns a new Face containing exactly the labels shared by
// f and other.
func (f *Face[L]) Intersection(other *Face[L]) *Face[L] {
	out := make([]L, 0, minInt(len(f.verts), len(other.verts)))
	i, j := 0, 0
	for i < len(f.verts) && j < len(other.verts) {
		switch {
		case f.verts[i] < other.verts[j]:
			i++
		case f.verts[i] > other.verts[j]:
			j++
		default:
			out = append(out, f.verts[i])
			i++
			j++
		}
	}

	return &Face[L]{verts: out}
}

// MaybeIntersection returns the intersection of f and other, and false if
// that intersection is empty, so call sites can filter and compute in one
// pass instead of checking IsEmpty afterwards.
func (f *Face[L]) MaybeIntersection(other *Face[L]) (*Face[L], bool) {
	inter := f.Intersection(other)

	return inter, !inter.IsEmpty()
}

// Union returns a new Face containing every label present in f or other.
func (f *Face[L]) Union(other *Face[L]) *Face[L] {
	out := make([]L, 0, len(f.verts)+len(other.verts))
	i, j := 0, 0
	for i < len(f.verts) && j < len(other.verts) {
		switch {
		case f.verts[i] < other.verts[j]:
			out = append(out, f.verts[i])
			i++
		case f.verts[i] > other.verts[j]:
			out = append(out, other.verts[j])
			j++
		default:
			out = append(out, f.verts[i])
			i++
			j++
		}
	}
	out = append(out, f.verts[i:]...)
	out = append(out, other.verts[j:]...)

	return &Face[L]{verts: out}
}

// Difference returns a new Face containing the labels of f that are not in
// other (f − other).
func (f *Face[L]) Difference(other *Face[L]) *Face[L] {
	out := make([]L, 0, len(f.verts))
	i, j := 0, 0
	for i < len(f.verts) && j < len(other.verts) {
		switch {
		case f.verts[i] < other.verts[j]:
			out = append(out, f.verts[i])
			i++
		case f.verts[i] > other.verts[j]:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, f.verts[i:]...)

	return &Face[L]{verts: out}
}

// IntersectWith mutates f in place to hold f ∩ other. It computes the
// result with Intersection and keeps that result's storage.
func (f *Face[L]) IntersectWith(other *Face[L]) {
	f.verts = f.Intersection(other).verts
}

// UnionWith mutates f in place to hold f ∪ other.
func (f *Face[L]) UnionWith(other *Face[L]) {
	f.verts = f.Union(other).verts
}

// SubtractFrom mutates f in place to hold f − other.
func (f *Face[L]) SubtractFrom(other *Face[L]) {
	f.verts = f.Difference(other).verts
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
