// Package gpsdoconfig computes exact divider configurations for the
// two-stage fractional PLL frequency synthesizer found in Si53xx-based
// GPS-disciplined oscillator modules.
//
// 🚀 What is gpsdo-config?
//
//	Given two target output frequencies and a set of hardware limits,
//	it enumerates the PLL divider tuples that reproduce both targets
//	exactly — as rational numbers, never "close enough in float" — and
//	ranks them by the phase-detector comparison frequency f3, which
//	directly drives jitter and phase noise.
//
// ✨ Why exact?
//
//   - Both outputs divide down from one shared VCO frequency; whether a
//     candidate plan serves both targets is a divisibility question.
//   - Divider registers are integers; a plan that is off by one part in
//     10^9 is simply a different (wrong) output frequency.
//
// Everything is organized under four subpackages plus a CLI:
//
//	rational/  — fixed-width exact fraction arithmetic
//	factor/    — bounded largest-divisor search over factor multisets
//	solver/    — the frequency-plan search itself (the core)
//	freqparse/ — "10M", "1_1/7k", "1000.31" → exact rationals
//	cmd/gpsdo-config — command-line front end
//
// Quick example:
//
//	f1, _ := freqparse.Parse("1234.31")
//	f2, _ := freqparse.Parse("5432")
//	sols, err := solver.Solve(f1, f2, solver.DefaultLimits(), solver.Good)
//
// A nil error with an empty slice means the frequency pair cannot be
// realized inside the hardware's divider ranges.
package gpsdoconfig
