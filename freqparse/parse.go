package freqparse

import (
	"errors"

	"github.com/mhx/gpsdo-config/rational"
)

// Sentinel errors for Parse.
var (
	// ErrSyntax indicates input outside the accepted frequency grammar.
	ErrSyntax = errors.New("freqparse: invalid frequency string")
	// ErrRange indicates a component that does not fit int64.
	ErrRange = errors.New("freqparse: frequency component out of range")
)

// Parse converts a frequency string into an exact rational.
//
// The grammar is a single left-to-right pass: decimal digits build the
// current number; one '.' switches to decimal-fraction mode; one ' ' or
// '_' stores the digits so far as an integral part and restarts for a
// following fraction; one '/' switches to denominator digits; a 'k' or
// 'M' records a 10^3 / 10^6 unit. Anything else is ErrSyntax.
//
//	Parse("1000.31") == 100031/100
//	Parse("10M")     == 10000000
//	Parse("10_1/7k") == 71000/7
func Parse(s string) (rational.Rat, error) {
	var (
		num, integral int64
		den           = int64(1)
		unit          = int64(1)
		decimal       bool
		blank         bool
		frac          bool
	)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if decimal || blank || frac {
				return rational.Rat{}, ErrSyntax
			}
			decimal = true

		case c == ' ' || c == '_':
			if decimal || blank || frac {
				return rational.Rat{}, ErrSyntax
			}
			blank = true
			integral = num
			num = 0

		case c == '/':
			if decimal || frac {
				return rational.Rat{}, ErrSyntax
			}
			frac = true
			den = 0

		case c == 'k':
			if unit != 1 {
				return rational.Rat{}, ErrSyntax
			}
			unit = 1_000

		case c == 'M':
			if unit != 1 {
				return rational.Rat{}, ErrSyntax
			}
			unit = 1_000_000

		case c >= '0' && c <= '9':
			dig := int64(c - '0')
			if frac {
				den = den*10 + dig
				if den < 0 {
					return rational.Rat{}, ErrRange
				}
			} else {
				num = num*10 + dig
				if num < 0 {
					return rational.Rat{}, ErrRange
				}
				if decimal {
					den *= 10
					if den < 0 {
						return rational.Rat{}, ErrRange
					}
				}
			}

		default:
			return rational.Rat{}, ErrSyntax
		}
	}

	if den == 0 {
		return rational.Rat{}, ErrSyntax
	}

	return rational.New(num, den).AddInt(integral).MulInt(unit), nil
}
