package bijection

import (
	"testing"

	"github.com/kaya-arro/sc-simplify/oracle"
	"github.com/kaya-arro/sc-simplify/pipeline"
	"github.com/stretchr/testify/require"
)

func TestPartialBijectionComplexZeroIsEmpty(t *testing.T) {
	c := PartialBijectionComplex(0, 3)
	require.True(t, c.IsEmptyComplex())
}

func TestPartialBijectionComplexOneByN(t *testing.T) {
	// m=1: every facet is a single vertex (one pair), one per possible
	// codomain target.
	c := PartialBijectionComplex(1, 3)
	require.Equal(t, 1, c.Height())
	require.Equal(t, 3, c.FacetCount())
}

func TestPartialBijectionComplexThreeByThreeFacetHeight(t *testing.T) {
	// a == b == 3: the check_len special case elides the size-2 level
	// from every chain (a size-2 partial bijection on 3x3 has exactly
	// one domain element and one codomain element left over, which must
	// pair with each other, so that level carries no choice of its
	// own). Every facet is therefore a 2-element chain [full, single
	// pair], height 2. There are 3! = 6 full bijections, each with 3
	// choices of which pair survives as the final single-pair level,
	// giving 18 distinct facets.
	c := PartialBijectionComplex(3, 3)
	require.Equal(t, 2, c.Height())
	require.Equal(t, 18, c.FacetCount())
}

func TestPartialBijectionComplexSurvivesSimplification(t *testing.T) {
	// One-sided soundness (spec.md §4.5): if the oracle already
	// certifies contractible before simplification, the reduced
	// complex it certifies afterward must agree — oracle false
	// negatives are tolerated, false positives are not.
	c := PartialBijectionComplex(2, 2)
	before := oracle.IsContractible(c)
	res := pipeline.Run(c, pipeline.WithNoPair())
	after := oracle.IsContractible(res.Reduced)
	if before {
		require.True(t, after)
	}
}
