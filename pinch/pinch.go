// Package pinch implements homotopy-preserving edge contraction:
// replacing a vertex by an adjacent one throughout a complex, wherever
// doing so is known not to change homotopy type (spec.md §4.8).
//
// An edge {u, v} is safe to pinch when the link of the edge is a
// deformation retract of the intersection of the links of u and v —
// or, as a special case the general accretion test doesn't reach on
// its own, when that intersection is empty, since there is then
// nothing the retract could fail to cover.
package pinch

import (
	"runtime"
	"sort"
	"sync"

	"github.com/kaya-arro/sc-simplify/accretion"
	"github.com/kaya-arro/sc-simplify/face"
	"github.com/kaya-arro/sc-simplify/scomplex"
)

// Sweep attempts one pass over every edge of c, largest vertex first,
// eliminating the larger endpoint of each edge found safe to pinch
// into its smaller neighbor. Each vertex is visited at most once as
// the larger (eliminated) endpoint per sweep: once it's pinched away,
// the loop moves on to the next vertex. A vertex that survived an
// earlier pinch as the smaller endpoint is still visited later in the
// descending loop, and may then be pinched into one of its own smaller
// neighbors within the same sweep.
//
// cancel is polled before every candidate edge. Returns the resulting
// complex, the number of edges pinched, and whether cancel fired
// before the sweep finished.
func Sweep[L scomplex.Label](c *scomplex.Complex[L], contractible accretion.Contractible[L], cancel <-chan struct{}) (*scomplex.Complex[L], int, bool) {
	table := edgeTable(c)
	vertices := make([]L, 0, len(table))
	for u := range table {
		vertices = append(vertices, u)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] > vertices[j] })

	pinches := 0
	for _, u := range vertices {
		for _, v := range table[u] {
			select {
			case <-cancel:
				return c, pinches, true
			default:
			}

			if pinchSafe(c, u, v, contractible) {
				c = applyPinch(c, u, v)
				pinches++
				break
			}
		}
	}

	return c, pinches, false
}

// pinchSafe tests whether contracting the edge {u, v} preserves
// homotopy type.
//
// L_u and L_v share every facet that contains both u and v (it
// contributes an edge-link face to one and a vertex-link face to the
// other), so rather than call Complex.Link three separate times and
// rescan the facet list three times, every facet is classified once
// against (u, v) into edge-link (contains both), old-only (contains u
// alone), or new-only (contains v alone), and the three links are
// assembled from those three buckets directly.
func pinchSafe[L scomplex.Label](c *scomplex.Complex[L], u, v L, contractible accretion.Contractible[L]) bool {
	edgeLink, oldOnly, newOnly := classifyForEdge(c.Facets(), u, v)

	uv := face.New(u, v)
	uFace := face.New(u)
	vFace := face.New(v)

	linkUV := scomplex.FromCheckUnique(differenceAll(edgeLink, uv))
	linkU := scomplex.FromCheckUnique(append(differenceAll(edgeLink, uFace), differenceAll(oldOnly, uFace)...))
	linkV := scomplex.FromCheckUnique(append(differenceAll(edgeLink, vFace), differenceAll(newOnly, vFace)...))

	inter := scomplex.Intersection(linkU, linkV)
	if inter.IsEmptyComplex() {
		return true
	}

	return accretion.IsDeformationRetract(linkUV, inter, contractible)
}

// classifyForEdge partitions facets against the candidate edge (u, v)
// into edge-link (contains both u and v), old-only (contains u, not
// v), and new-only (contains v, not u) buckets; facets containing
// neither are dropped. The scan runs on a GOMAXPROCS(0)-sized bounded
// worker pool, one goroutine per contiguous chunk of facets, each
// writing only to the index range it owns — disjoint writes, no
// shared mutable state, no lock — and the three buckets are then
// gathered from the tag array in a single serial pass in facet-index
// order, so the result never depends on goroutine scheduling
// (spec.md §9 "In-place pinch with shared indices").
func classifyForEdge[L scomplex.Label](facets []*face.Face[L], u, v L) (edgeLink, oldOnly, newOnly []*face.Face[L]) {
	n := len(facets)
	if n == 0 {
		return nil, nil, nil
	}

	const (
		tagNeither byte = iota
		tagEdgeLink
		tagOldOnly
		tagNewOnly
	)

	tags := make([]byte, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				f := facets[i]
				switch {
				case f.Contains(u) && f.Contains(v):
					tags[i] = tagEdgeLink
				case f.Contains(u):
					tags[i] = tagOldOnly
				case f.Contains(v):
					tags[i] = tagNewOnly
				}
			}
		}(start, end)
	}
	wg.Wait()

	for i, tag := range tags {
		switch tag {
		case tagEdgeLink:
			edgeLink = append(edgeLink, facets[i])
		case tagOldOnly:
			oldOnly = append(oldOnly, facets[i])
		case tagNewOnly:
			newOnly = append(newOnly, facets[i])
		}
	}

	return edgeLink, oldOnly, newOnly
}

// differenceAll returns each facet's difference with f, preserving
// order.
func differenceAll[L scomplex.Label](facets []*face.Face[L], f *face.Face[L]) []*face.Face[L] {
	out := make([]*face.Face[L], len(facets))
	for i, g := range facets {
		out[i] = g.Difference(f)
	}

	return out
}

// applyPinch replaces u by v in every facet of c that contains u.
func applyPinch[L scomplex.Label](c *scomplex.Complex[L], u, v L) *scomplex.Complex[L] {
	facets := c.Facets()
	out := make([]*face.Face[L], len(facets))
	for i, f := range facets {
		if !f.Contains(u) {
			out[i] = f
			continue
		}

		old := f.Tuple()
		relabeled := make([]L, 0, len(old)+1)
		for _, x := range old {
			if x != u {
				relabeled = append(relabeled, x)
			}
		}
		relabeled = append(relabeled, v)
		out[i] = face.FromSlice(relabeled)
	}

	return scomplex.FromCheckUnique(out)
}

// edgeTable maps each vertex to the smaller vertices it shares a facet
// with, each list sorted descending. A vertex with no smaller neighbor
// (isolated, or the smallest in its component) gets no entry.
func edgeTable[L scomplex.Label](c *scomplex.Complex[L]) map[L][]L {
	table := make(map[L][]L)
	seen := make(map[[2]L]struct{})
	for _, f := range c.Facets() {
		tuple := f.Tuple() // ascending
		for i := 1; i < len(tuple); i++ {
			u := tuple[i]
			for j := 0; j < i; j++ {
				v := tuple[j]
				key := [2]L{u, v}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				table[u] = append(table[u], v)
			}
		}
	}

	for u := range table {
		neighbors := table[u]
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] > neighbors[j] })
	}

	return table
}
