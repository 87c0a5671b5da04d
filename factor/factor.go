package factor

// Factorize returns the prime factors of n in non-decreasing order,
// with multiplicity. For n < 2 the result is empty.
func Factorize(n int64) []int64 {
	var factors []int64

	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}

	for i := int64(3); i*i <= n; i += 2 {
		for n%i == 0 {
			factors = append(factors, i)
			n /= i
		}
	}

	if n > 2 {
		factors = append(factors, n)
	}

	return factors
}

// LargestFactor returns the largest divisor of product that does not
// exceed limit. product itself is returned when it already fits.
// If no divisor other than 1 fits, the result is 1.
//
// The search walks the sorted factor multiset and, at each position,
// either divides the running product by the current prime (accepting
// the quotient as soon as it drops to or below limit — factors are
// non-decreasing, so the first acceptable quotient on a branch is the
// largest that branch can produce) or skips past all equal copies of
// that prime and recurses for a different combination. The visited set
// is shared across the whole search: repeated primes reach identical
// intermediate products through many orderings, and re-exploring them
// blows up combinatorially.
func LargestFactor(product, limit int64) int64 {
	if product <= limit {
		return product
	}
	seen := make(map[int64]struct{})

	return cutFactors(seen, product, limit, Factorize(product), 0)
}

func cutFactors(seen map[int64]struct{}, product, limit int64, factors []int64, index int) int64 {
	rv := int64(1)

	if _, ok := seen[product]; ok {
		return rv
	}
	seen[product] = struct{}{}

	for index < len(factors) {
		current := factors[index]
		res := product / current

		if res <= limit && res > rv {
			rv = res
			break
		}

		if index+1 < len(factors) {
			if rr := cutFactors(seen, res, limit, factors, index+1); rr > rv {
				rv = rr
			}
		}

		// Skip equal copies of the current prime; dividing by any one
		// of them reaches the same quotient.
		for {
			index++
			if index >= len(factors) || factors[index] != current {
				break
			}
		}
	}

	return rv
}
