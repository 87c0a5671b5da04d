// Package factor finds bounded divisors of integer products.
//
// What:
//
//   - Factorize returns the ascending prime factor multiset of n by
//     trial division.
//   - LargestFactor(product, limit) returns the largest divisor of
//     product that does not exceed limit, via a memoized recursive
//     search over subsets of the factor multiset.
//
// Why:
//
//   - The frequency-plan solver must fit a candidate GPS reference
//     frequency (the numerator of an exact comparison frequency) under
//     a hardware ceiling. That means splitting a large product into the
//     biggest divisor below the ceiling and folding the removed factors
//     into a second-stage divider instead.
//
// Complexity:
//
//   - Factorize: O(√n) trial divisions.
//   - LargestFactor: worst case exponential in the number of prime
//     factors, but the shared visited-set collapses the many orderings
//     that reach the same intermediate product (essential when the
//     product carries repeated small primes such as 2^k·5^k), so the
//     effective state space is the set of distinct divisors.
package factor
