package solver

import (
	"sort"

	"github.com/mhx/gpsdo-config/factor"
	"github.com/mhx/gpsdo-config/rational"
)

// Solve searches the divider space for tuples that reproduce f1 and f2
// exactly under the given hardware limits.
//
// For modes Any/Good/Best at most one Solution is returned: the best
// tuple found by the time the mode's stopping condition triggers. All
// returns every distinct legal tuple, sorted by decreasing comparison
// frequency f3.
//
// An empty slice with a nil error means no tuple inside the hardware
// search space satisfies every bound; that is an expected outcome, not
// a failure. Errors are returned only for invalid inputs (sentinels in
// types.go).
//
// Solve is deterministic: identical inputs yield identical results in
// identical order. A single call is a pure function; the memo sets it
// allocates live and die with the call.
func Solve(f1, f2 rational.Rat, limits Limits, mode Mode) ([]Solution, error) {
	if f1.Sign() <= 0 || f2.Sign() <= 0 {
		return nil, ErrNonPositiveFrequency
	}
	if err := limits.validate(); err != nil {
		return nil, err
	}
	if mode < Any || mode > All {
		return nil, ErrInvalidMode
	}

	e := newEngine(f1, f2, limits, mode)
	e.search()

	if len(e.solutions) > 1 {
		// Only All mode collects more than one tuple.
		sort.SliceStable(e.solutions, func(i, j int) bool {
			return e.solutions[i].Less(e.solutions[j])
		})
	}

	return e.solutions, nil
}

// engine holds all per-solve search state. A dedicated struct (rather
// than closures over locals) keeps the three-level loop and its shared
// memo/incumbent state explicit and testable.
type engine struct {
	limits Limits
	mode   Mode

	// fLCM is the least common multiple of the two targets, doubled if
	// needed so both base divisors come out even.
	fLCM rational.Rat
	// div1, div2 are the base divisors: NCn_LS = q · divn.
	div1 int64
	div2 int64
	// qMax caps the shared multiplier q at the NCx_LS ceiling.
	qMax int64

	// oscSeen deduplicates VCO candidates across (N1_HS, q) pairs that
	// produce the same exact fOSC.
	oscSeen map[rational.Rat]struct{}

	solutions []Solution

	// found tracks the best quality level reached so far; valid only
	// when haveFound is set. Never used in All mode.
	found     Mode
	haveFound bool
}

func newEngine(f1, f2 rational.Rat, limits Limits, mode Mode) *engine {
	// Both outputs divide down from one VCO frequency:
	//
	//	          fOSC            N1_HS  = [4, 5, ..., 11]
	//	 fn = --------------  ,   NCn_LS = [2, 4, 6, ..., 2^20]
	//	      N1_HS * NCn_LS
	//
	// so fOSC must be a common multiple of f1 and f2; every candidate
	// is an integer multiple of their least common multiple.
	fLCM := rational.Lcm(f1, f2)

	// NCn_LS must be even, so if the LCM divides either frequency into
	// an odd count, double it.
	if r1, r2 := fLCM.Div(f1), fLCM.Div(f2); !isEvenInt(r1) || !isEvenInt(r2) {
		fLCM = fLCM.MulInt(2)
	}

	div1 := fLCM.Div(f1).Int64()
	div2 := fLCM.Div(f2).Int64()

	return &engine{
		limits:  limits,
		mode:    mode,
		fLCM:    fLCM,
		div1:    div1,
		div2:    div2,
		qMax:    NCxLSMax / max(div1, div2),
		oscSeen: make(map[rational.Rat]struct{}),
	}
}

// isEvenInt reports whether r is an even integer.
func isEvenInt(r rational.Rat) bool {
	return r.IsInt() && r.Int64()%2 == 0
}

// isNCxLSRange reports whether n is writable as a low-speed output
// divider. n = 1 should be supported according to the Silicon Labs
// Si53xx documentation, but writing 1 to the GPS reference clock does
// not work as intended: undocumented, 1 is unsupported in CMOS mode
// (https://github.com/simontheu/lb-gps-linux/issues/4). Hence even
// values only.
func isNCxLSRange(n int64) bool {
	return n <= NCxLSMax && n%2 == 0
}

// search runs the three-level enumeration: N1_HS (descending — larger
// high-speed dividers draw less power, so ties break toward them), the
// shared multiplier q, and the N2_HS candidates.
func (e *engine) search() {
	for n1hs := int64(N1HSMax); n1hs >= N1HSMin; n1hs-- {
		// fN1 is the frequency at the input of the N1_HS stage per
		// unit q: fOSC = fN1 · q, with fN1 = fLCM · N1_HS.
		fN1 := e.fLCM.MulInt(n1hs)

		// The VCO limits on fOSC bound q; exact ceiling/floor division
		// avoids the float rounding hazard at 5 GHz numerators.
		qLo := max(rational.FromInt(e.limits.VCOLo).Div(fN1).Ceil(), 1)
		qHi := min(rational.FromInt(e.limits.VCOHi).Div(fN1).Floor(), e.qMax)

		for q := qLo; q <= qHi; q++ {
			nc1LS := q * e.div1
			nc2LS := q * e.div2

			if !isNCxLSRange(nc1LS) || !isNCxLSRange(nc2LS) {
				continue
			}

			fOSC := e.fLCM.MulInt(q).MulInt(n1hs)

			if _, dup := e.oscSeen[fOSC]; !dup {
				e.oscSeen[fOSC] = struct{}{}
				e.scanSecondStage(fOSC, n1hs, nc1LS, nc2LS)
			}

			if e.haveFound && e.found >= e.mode {
				break
			}
		}

		if e.haveFound && e.found >= e.mode {
			break
		}
	}
}

// scanSecondStage tries every N2_HS candidate against one fOSC,
// deriving N31, fGPS and N2_LS, and records each legal tuple.
func (e *engine) scanSecondStage(fOSC rational.Rat, n1hs, nc1LS, nc2LS int64) {
	// Candidates start in reverse order (larger high-speed dividers
	// for lower power consumption), then stable-sort so candidates
	// minimizing the denominator of fOSC/N2_HS come first. A smaller
	// denominator means a smaller N31, which keeps f3 as high as
	// possible and lets quality-driven modes exit sooner.
	candidates := [N2HSMax - N2HSMin + 1]int64{11, 10, 9, 8, 7, 6, 5, 4}
	sort.SliceStable(candidates[:], func(i, j int) bool {
		return fOSC.DivInt(candidates[i]).Den() < fOSC.DivInt(candidates[j]).Den()
	})

	for _, n2hs := range candidates {
		// One factor of 2 is reserved in N2_LS (its minimum value), so
		// the realized comparison frequency is fOSC / (2 · N2_HS); its
		// reduced denominator is the comparison-stage divisor N31.
		f3N2 := fOSC.DivInt(2 * n2hs)
		n31 := f3N2.Den()

		if n31 > N31Max {
			continue
		}

		// fGPS may neither exceed the receiver's ceiling nor push f3
		// past its own upper bound.
		gpsHi := min(e.limits.GPSHi, n31*e.limits.F3Hi)
		n2LS := int64(2)
		var fGPS int64

		if f3N2.Num() <= gpsHi {
			fGPS = f3N2.Num()
		} else {
			// Move the excess factors of the numerator out of fGPS and
			// into N2_LS.
			fGPS = factor.LargestFactor(f3N2.Num(), gpsHi)
			n2LS *= f3N2.Num() / fGPS
		}

		if n2LS > N2LSMax || fGPS < e.limits.F3Lo*n31 {
			continue
		}

		sol := Solution{
			FGPS:  uint32(fGPS),
			N31:   uint32(n31),
			N1HS:  uint32(n1hs),
			NC1LS: uint32(nc1LS),
			NC2LS: uint32(nc2LS),
			N2HS:  uint32(n2hs),
			N2LS:  uint32(n2LS),
		}

		if e.haveFound && e.mode != All {
			// Single-result modes keep one incumbent, replaced in
			// place whenever a higher-f3 tuple appears.
			if sol.Less(e.solutions[0]) {
				e.solutions[0] = sol
			}
		} else {
			e.solutions = append(e.solutions, sol)
		}

		if e.mode != All {
			// Quality relative to the theoretical maximum f3 for this
			// N31: reaching it exactly is Best, reaching at least half
			// of it is Good. The thresholds are empirical; which tuple
			// the single-result modes return depends on them staying
			// exactly this.
			f3Max := n31 * e.limits.F3Hi
			quality := Any
			switch {
			case f3Max == fGPS:
				quality = Best
			case f3Max <= 2*fGPS:
				quality = Good
			}

			if !e.haveFound || quality > e.found {
				e.found = quality
				e.haveFound = true
			}

			if e.found >= e.mode {
				break
			}
		}
	}
}
