package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhx/gpsdo-config/rational"
	"github.com/mhx/gpsdo-config/solver"
)

// The reference scenario: 1234.31 Hz and 5432 Hz against the default
// Si53xx / MAX-M8 hardware bounds.
var (
	refF1 = rational.New(123_431, 100)
	refF2 = rational.FromInt(5_432)
)

// checkSolution asserts the two hard invariants of every accepted
// tuple: exact round trip to the targets and hardware ranges on f3
// and fOSC.
func checkSolution(t *testing.T, s solver.Solution, lim solver.Limits, f1, f2 rational.Rat) {
	t.Helper()

	assert.Equalf(t, f1, s.Output1(), "output1 of %v must round-trip to f1", s)
	assert.Equalf(t, f2, s.Output2(), "output2 of %v must round-trip to f2", s)

	f3 := s.F3()
	assert.GreaterOrEqualf(t, f3.CmpInt(lim.F3Lo), 0, "f3 of %v below range", s)
	assert.LessOrEqualf(t, f3.CmpInt(lim.F3Hi), 0, "f3 of %v above range", s)

	fOSC := s.FOSC()
	assert.GreaterOrEqualf(t, fOSC.CmpInt(lim.VCOLo), 0, "fOSC of %v below VCO range", s)
	assert.LessOrEqualf(t, fOSC.CmpInt(lim.VCOHi), 0, "fOSC of %v above VCO range", s)
}

// TestSolve_AllReference runs the exhaustive reference scenario:
// exactly 16 tuples, the top-ranked one realizing f3 = 1974896/1, and
// every tuple honoring the round-trip and range invariants.
func TestSolve_AllReference(t *testing.T) {
	lim := solver.DefaultLimits()

	sols, err := solver.Solve(refF1, refF2, lim, solver.All)
	require.NoError(t, err)
	require.Len(t, sols, 16)

	top := sols[0]
	assert.Equal(t, uint32(1_974_896), top.FGPS)
	assert.Equal(t, uint32(1), top.N31)
	assert.Equal(t, rational.FromInt(1_974_896), top.F3())

	for _, s := range sols {
		checkSolution(t, s, lim, refF1, refF2)
	}
}

// TestSolve_AllOrdering verifies the ranking contract: All-mode output
// is sorted by non-increasing comparison frequency.
func TestSolve_AllOrdering(t *testing.T) {
	sols, err := solver.Solve(refF1, refF2, solver.DefaultLimits(), solver.All)
	require.NoError(t, err)

	for i := 1; i < len(sols); i++ {
		prev, cur := sols[i-1], sols[i]
		assert.Falsef(t, cur.Less(prev),
			"solutions out of order at %d: %v before %v", i, prev, cur)
	}
}

// TestSolve_BestMatchesTopOfAll verifies that Best mode returns the
// very tuple All ranks first, including the full divider assignment.
func TestSolve_BestMatchesTopOfAll(t *testing.T) {
	lim := solver.DefaultLimits()

	all, err := solver.Solve(refF1, refF2, lim, solver.All)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	best, err := solver.Solve(refF1, refF2, lim, solver.Best)
	require.NoError(t, err)
	require.Len(t, best, 1)

	assert.Equal(t, all[0], best[0])
	assert.Equal(t, solver.Solution{
		FGPS:  1_974_896,
		N31:   1,
		N1HS:  7,
		NC1LS: 620_800,
		NC2LS: 141_064,
		N2HS:  7,
		N2LS:  388,
	}, best[0])
}

// TestSolve_GoodQuality verifies the Good-mode contract: exactly one
// tuple, a member of the exhaustive result set, realizing at least
// half the maximum comparison frequency for its N31.
func TestSolve_GoodQuality(t *testing.T) {
	lim := solver.DefaultLimits()

	good, err := solver.Solve(refF1, refF2, lim, solver.Good)
	require.NoError(t, err)
	require.Len(t, good, 1)

	s := good[0]
	checkSolution(t, s, lim, refF1, refF2)
	assert.GreaterOrEqual(t, 2*int64(s.FGPS), int64(s.N31)*lim.F3Hi,
		"good-mode tuple must reach ≥50%% of the maximum f3 for its N31")

	all, err := solver.Solve(refF1, refF2, lim, solver.All)
	require.NoError(t, err)
	assert.Contains(t, all, s, "single-mode result must appear in the exhaustive set")
}

// TestSolve_ModeMonotonicity verifies that every single-result mode
// yields a tuple the exhaustive enumeration also contains, and never
// more tuples than All.
func TestSolve_ModeMonotonicity(t *testing.T) {
	lim := solver.DefaultLimits()

	all, err := solver.Solve(refF1, refF2, lim, solver.All)
	require.NoError(t, err)

	for _, mode := range []solver.Mode{solver.Any, solver.Good, solver.Best} {
		got, err := solver.Solve(refF1, refF2, lim, mode)
		require.NoError(t, err, mode)
		require.Lenf(t, got, 1, "mode %v must return exactly one tuple here", mode)
		assert.Containsf(t, all, got[0], "mode %v tuple missing from All", mode)
		assert.LessOrEqual(t, len(got), len(all))
	}
}

// TestSolve_Deterministic verifies repeated calls return identical
// slices in identical order.
func TestSolve_Deterministic(t *testing.T) {
	lim := solver.DefaultLimits()

	first, err := solver.Solve(refF1, refF2, lim, solver.All)
	require.NoError(t, err)
	second, err := solver.Solve(refF1, refF2, lim, solver.All)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestSolve_IdenticalTargets covers the one-frequency use (both
// outputs set to the same target): the low-speed dividers coincide and
// both outputs round-trip.
func TestSolve_IdenticalTargets(t *testing.T) {
	lim := solver.DefaultLimits()
	f := rational.FromInt(10_000_000)

	sols, err := solver.Solve(f, f, lim, solver.Good)
	require.NoError(t, err)
	require.Len(t, sols, 1)

	s := sols[0]
	assert.Equal(t, s.NC1LS, s.NC2LS, "identical targets must share the low-speed divider")
	checkSolution(t, s, lim, f, f)
}

// TestSolve_NoSolution verifies that an unreachable VCO requirement
// yields an empty result and a nil error. A 3 Hz pair needs q beyond
// the 2^20 low-speed ceiling for every N1_HS, so nothing is legal.
func TestSolve_NoSolution(t *testing.T) {
	f := rational.FromInt(3)

	sols, err := solver.Solve(f, f, solver.DefaultLimits(), solver.All)
	require.NoError(t, err, "no solution must not be reported as an error")
	assert.Empty(t, sols)
}

// TestSolve_InputValidation covers the sentinel errors.
func TestSolve_InputValidation(t *testing.T) {
	lim := solver.DefaultLimits()
	one := rational.FromInt(1_000)

	_, err := solver.Solve(rational.FromInt(0), one, lim, solver.Good)
	assert.ErrorIs(t, err, solver.ErrNonPositiveFrequency)

	_, err = solver.Solve(one, rational.New(-1, 2), lim, solver.Good)
	assert.ErrorIs(t, err, solver.ErrNonPositiveFrequency)

	bad := lim
	bad.VCOHi = bad.VCOLo - 1
	_, err = solver.Solve(one, one, bad, solver.Good)
	assert.ErrorIs(t, err, solver.ErrInvalidLimits)

	bad = lim
	bad.F3Lo = 0
	_, err = solver.Solve(one, one, bad, solver.Good)
	assert.ErrorIs(t, err, solver.ErrInvalidLimits)

	bad = lim
	bad.GPSHi = 1 << 33
	_, err = solver.Solve(one, one, bad, solver.Good)
	assert.ErrorIs(t, err, solver.ErrInvalidLimits)

	_, err = solver.Solve(one, one, lim, solver.Mode(42))
	assert.ErrorIs(t, err, solver.ErrInvalidMode)
}

// TestMode_ParseAndString round-trips the four mode names and rejects
// unknown ones.
func TestMode_ParseAndString(t *testing.T) {
	for _, m := range []solver.Mode{solver.Any, solver.Good, solver.Best, solver.All} {
		parsed, err := solver.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := solver.ParseMode("perfect")
	assert.ErrorIs(t, err, solver.ErrInvalidMode)
}

// TestSolution_Less orders by descending f3 with exact cross
// multiplication.
func TestSolution_Less(t *testing.T) {
	hi := solver.Solution{FGPS: 1_974_896, N31: 1}
	lo := solver.Solution{FGPS: 1_865_892, N31: 1}
	frac := solver.Solution{FGPS: 9_874_480, N31: 5} // f3 = 1974896 exactly

	assert.True(t, hi.Less(lo))
	assert.False(t, lo.Less(hi))
	assert.False(t, hi.Less(frac), "equal f3 must not rank either way")
	assert.False(t, frac.Less(hi))
}
