// Package bijection generates the order complex of partial bijections
// between an m-element and an n-element set: a standalone combinatorial
// example generator, out of scope for the simplification core proper
// (spec.md §1), but useful as a non-trivial fixture for exercising it.
//
// A partial bijection of size k is an injective map from a k-subset of
// the domain to the codomain. Ordered by restriction (one bijection
// below another if it's the other with some domain element removed),
// these form a poset; this package builds the order complex of that
// poset restricted to its maximal chains — each maximal chain, from a
// full-size bijection down to a single pair, becomes one facet.
package bijection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kaya-arro/sc-simplify/face"
	"github.com/kaya-arro/sc-simplify/scomplex"
	"gonum.org/v1/gonum/combin"
)

type pair struct{ domain, codomain int }

// sortedPairs is a canonical, hashable representation of a partial
// bijection: its graph, sorted by domain index.
type sortedPairs []pair

func (s sortedPairs) key() string {
	var b strings.Builder
	for _, p := range s {
		fmt.Fprintf(&b, "%d:%d,", p.domain, p.codomain)
	}

	return b.String()
}

func (s sortedPairs) without(domain int) sortedPairs {
	out := make(sortedPairs, 0, len(s)-1)
	for _, p := range s {
		if p.domain != domain {
			out = append(out, p)
		}
	}

	return out
}

// PartialBijectionComplex builds the order complex of partial
// bijections from a min(a,b)-element domain into a max(a,b)-element
// codomain, with vertices of type uint32 (the original's vertex count
// can exceed the 16-bit width even for modest a, b).
func PartialBijectionComplex(a, b uint32) *scomplex.Complex[uint32] {
	m, n := int(a), int(b)
	if m > n {
		m, n = n, m
	}
	if m == 0 {
		return scomplex.FromCheckUnique[uint32](nil)
	}

	chains := enumerateChains(m, n)

	ids := make(map[string]uint32)
	for _, chain := range chains {
		for _, sub := range chain {
			k := sub.key()
			if _, ok := ids[k]; !ok {
				ids[k] = 0 // assigned below, after a deterministic sort
			}
		}
	}
	assignIDs(ids)

	candidates := make([]*face.Face[uint32], len(chains))
	for i, chain := range chains {
		verts := make([]uint32, len(chain))
		for j, sub := range chain {
			verts[j] = ids[sub.key()]
		}
		candidates[i] = face.FromSlice(verts)
	}

	return scomplex.FromCheckUnique(candidates)
}

// enumerateChains generates, for every injection of [0,m) into [0,n)
// and every removal order of the domain, the maximal chain of nested
// sub-bijections it traces out: one full-size bijection, down through
// every intermediate size, to a single pair.
//
// When m == n (a square bijection), every size-(m-1) partial bijection
// has a unique completion back to a full bijection — the one domain
// element and one codomain element left uncovered must pair with each
// other — so the size-(m-1) level of every chain carries no
// combinatorial choice of its own; it is elided from the chain
// entirely, matching the original's `check_len` special case
// (`_examples/original_source/src/partial_bijection_complex.rs`,
// `FacetGenerator::generate`).
func enumerateChains(m, n int) []sortedPairs2D {
	var chains []sortedPairs2D

	skipLevel := -1
	if m == n {
		skipLevel = m - 1
	}

	subsets := combin.Combinations(n, m)
	domainPerms := permutations(m)
	imagePerms := permutations(m)
	for _, subset := range subsets {
		for _, image := range imagePerms {
			full := make(sortedPairs, m)
			for i := 0; i < m; i++ {
				full[i] = pair{domain: i, codomain: subset[image[i]]}
			}

			for _, removalOrder := range domainPerms {
				chains = append(chains, chainFrom(full, removalOrder, skipLevel))
			}
		}
	}

	return chains
}

type sortedPairs2D = []sortedPairs

// chainFrom walks full down to a single pair by removalOrder, omitting
// (but still descending through) the level of size skipLevel; pass -1
// to omit nothing.
func chainFrom(full sortedPairs, removalOrder []int, skipLevel int) sortedPairs2D {
	chain := make(sortedPairs2D, 0, len(full))
	cur := full
	chain = append(chain, cur)
	for _, d := range removalOrder {
		if len(cur) <= 1 {
			break
		}
		cur = cur.without(d)
		if len(cur) == skipLevel {
			continue
		}
		chain = append(chain, cur)
	}

	return chain
}

// assignIDs gives every distinct sub-bijection key a stable ID, sorted
// by size descending then key ascending so the result is reproducible
// across runs for the same (a, b).
func assignIDs(ids map[string]uint32) {
	keys := make([]string, 0, len(ids))
	for k := range ids {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		si, sj := strings.Count(keys[i], ","), strings.Count(keys[j], ",")
		if si != sj {
			return si > sj
		}

		return keys[i] < keys[j]
	})
	for i, k := range keys {
		ids[k] = uint32(i)
	}
}

// permutations returns every permutation of {0, ..., n-1}, via Heap's
// algorithm.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}

	var out [][]int
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			out = append(out, append([]int(nil), a...))

			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
		}
	}
	generate(n)

	return out
}
