package pipeline

import (
	"testing"

	"github.com/kaya-arro/sc-simplify/face"
	"github.com/kaya-arro/sc-simplify/oracle"
	"github.com/kaya-arro/sc-simplify/scomplex"
	"github.com/stretchr/testify/require"
)

func f16(verts ...uint16) *face.Face[uint16] { return face.New(verts...) }

func TestRunOnConeReducesToContractible(t *testing.T) {
	c := scomplex.FromCheckUnique([]*face.Face[uint16]{
		f16(0, 1, 2), f16(0, 2, 3), f16(0, 1, 3),
	})
	res := Run(c)
	require.True(t, oracle.IsContractible(res.Reduced))
}

func TestRunWithNoPairOmitsPair(t *testing.T) {
	c := scomplex.FromCheckUnique([]*face.Face[uint16]{f16(1, 2, 3)})
	res := Run(c, WithNoPair())
	require.Nil(t, res.Pair)
}

func TestRunProducesAPairByDefault(t *testing.T) {
	c := scomplex.FromCheckUnique([]*face.Face[uint16]{f16(1, 2), f16(3, 4)})
	res := Run(c)
	require.NotNil(t, res.Pair)
}

func TestRunSkipNerveLeavesHeightAlone(t *testing.T) {
	// A single facet with nerve-reduction skipped: no nerve step is
	// counted, and since Options default to no pinch sweeps the simplex
	// comes back as it went in, still contractible.
	c := scomplex.FromCheckUnique([]*face.Face[uint16]{f16(1, 2, 3)})
	res := Run(c, WithSkipNerve())
	require.Equal(t, 0, res.NerveReductions)
	require.True(t, oracle.IsContractible(res.Reduced))
}

func TestRunRespectsMaxPinchLoops(t *testing.T) {
	c := scomplex.FromCheckUnique([]*face.Face[uint16]{f16(1, 2, 3), f16(3, 4)})
	res := Run(c, WithNoPair(), WithMaxPinchLoops(1))
	require.LessOrEqual(t, res.PinchSweeps, 1)
}

func TestRunWithMaxPinchLoopsZeroSkipsPinchingEntirely(t *testing.T) {
	// A triangle plus a pendant edge has a pinchable edge (spec.md §6:
	// --max-pinch-loops 0 disables pinching, it does not mean
	// unbounded).
	c := scomplex.FromCheckUnique([]*face.Face[uint16]{f16(1, 2, 3), f16(3, 4)})
	res := Run(c, WithNoPair(), WithMaxPinchLoops(0))
	require.Equal(t, 0, res.PinchSweeps)
	require.Equal(t, 0, res.PinchCount)
}

func TestMinimizePairOfComplexAgainstItselfIsEmpty(t *testing.T) {
	c := scomplex.FromCheckUnique([]*face.Face[uint16]{f16(1, 2), f16(3, 4)})
	require.True(t, minimizePair(c, c).IsEmptyComplex())
}

func TestWithMaxPinchLoopsPanicsOnNegative(t *testing.T) {
	c := scomplex.FromCheckUnique([]*face.Face[uint16]{f16(1, 2, 3)})
	require.Panics(t, func() { Run(c, WithMaxPinchLoops(-1)) })
}
