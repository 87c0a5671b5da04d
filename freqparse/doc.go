// Package freqparse converts human-readable frequency strings into
// exact rationals.
//
// What:
//
//   - Parse accepts plain integers ("1000"), decimals ("1000.31"),
//     fractions ("500/9"), mixed integer+fraction notation with a space
//     or underscore separator ("10_1/7", "1 1/7"), and a trailing unit
//     suffix "k" (kHz) or "M" (MHz).
//
// Why:
//
//   - The solver works on exact rationals; "10M" or "1_1/7k" must reach
//     it without any float round-trip. 1000.31 parses as 100031/100,
//     not as the nearest float64.
//
// Errors:
//
//   - ErrSyntax: any byte outside the grammar, misplaced separators,
//     a repeated unit suffix, or a zero denominator.
package freqparse
