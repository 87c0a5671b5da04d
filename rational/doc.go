// Package rational provides an exact, fixed-width fraction type for
// frequency arithmetic.
//
// What:
//
//   - Rat is an int64 numerator / int64 denominator pair, always stored
//     in lowest terms with a positive denominator.
//   - Arithmetic (Add, Mul, Div, integer variants) returns reduced values.
//   - Comparison and equality are exact — no floating-point tolerance.
//   - Lcm computes the least common multiple of two rationals, the key
//     primitive for deriving a common oscillator frequency from two
//     arbitrary output targets.
//
// Why:
//
//   - Frequency-plan solving depends on exact equality ("does fOSC divide
//     into this output frequency?"); float64 rounding at GHz magnitudes
//     would silently accept or reject the wrong divider tuples.
//   - A plain value type keeps the hot search loop allocation-free, which
//     big.Rat cannot offer.
//
// Invariants:
//
//   - gcd(|Num|, Den) == 1 and Den > 0 for every constructed value.
//   - Overflow of an intermediate product panics (ErrOverflow value);
//     it is never silently wrapped.
//
// The zero value of Rat is not valid; obtain values from New or FromInt.
package rational
