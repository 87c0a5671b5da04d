// Package solver computes divider settings for the two-stage
// fractional PLL of Si53xx-based GPSDO modules, reproducing two target
// output frequencies exactly.
//
// What:
//
//   - Solve enumerates divider tuples (fGPS, N31, N1_HS, NC1_LS, NC2_LS,
//     N2_HS, N2_LS) whose resulting output frequencies equal the two
//     targets as exact rationals, within the hardware bounds of the VCO,
//     the phase-detector comparison frequency f3 and the GPS reference.
//   - Mode selects search thoroughness: Any (first legal tuple), Good
//     (stop at ≥50% of the maximum f3), Best (stop only at the maximum
//     f3), All (exhaustive enumeration).
//   - Solutions are ranked by decreasing f3 = fGPS/N31, since a higher
//     comparison frequency means lower phase noise.
//
// The frequency relations being solved:
//
//	            fOSC                       fOSC
//	   fn = --------------  ,  f3 = ---------------  ,  fGPS = f3 * N31
//	        N1_HS * NCn_LS          N2_HS * N2_LS
//
// with N1_HS, N2_HS in [4, 11], NCn_LS even (or 1, which the hardware
// rejects in CMOS mode) up to 2^20, N2_LS even up to 2^20 and N31 up
// to 2^19.
//
// Why exact arithmetic:
//
//	Both outputs divide down from one shared VCO frequency; whether a
//	candidate fOSC serves both targets is an exact divisibility
//	question at GHz magnitudes, where float64 comparison would
//	misclassify candidates. All frequency math runs on rational.Rat.
//
// Complexity:
//
//   - Outer search: 8 values of N1_HS × O(VCO span / (N1_HS·fLCM))
//     values of q × 8 candidates of N2_HS, deduplicated by a visited
//     set of exact fOSC values. All mode can visit millions of
//     candidates; Any/Good usually exit within the first few.
//   - Memory: O(#distinct fOSC) for the memo set plus the result slice.
//
// Errors:
//
//   - ErrNonPositiveFrequency: a target frequency is zero or negative.
//   - ErrInvalidLimits: malformed hardware limits record.
//   - ErrInvalidMode: unknown search mode.
//   - An empty result with a nil error means "no solution exists inside
//     the hardware search space" — an expected outcome, never an error.
package solver
