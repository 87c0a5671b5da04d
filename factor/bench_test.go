package factor_test

import (
	"testing"

	"github.com/mhx/gpsdo-config/factor"
)

// BenchmarkLargestFactor_DensePowers measures the memoized search on a
// product with many repeated primes, the case the visited-set exists for.
func BenchmarkLargestFactor_DensePowers(b *testing.B) {
	for i := 0; i < b.N; i++ {
		factor.LargestFactor(5_292_000_000, 10_000_000)
	}
}

// BenchmarkLargestFactor_LargePrime measures the degenerate path where
// a large prime factor forces the fallback toward 1.
func BenchmarkLargestFactor_LargePrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		factor.LargestFactor(2*3*5*7*999_983, 1_000)
	}
}

// BenchmarkFactorize measures plain trial division at solver magnitude.
func BenchmarkFactorize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		factor.Factorize(5_431_999_993)
	}
}
