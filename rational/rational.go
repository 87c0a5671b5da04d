package rational

import (
	"errors"
	"strconv"
)

// Sentinel panic values for contract violations. These are programming
// errors, not recoverable conditions, hence panic rather than an error
// return (the solver's operands are bounded by construction).
var (
	// ErrZeroDenominator indicates construction or division with a zero denominator.
	ErrZeroDenominator = errors.New("rational: zero denominator")
	// ErrOverflow indicates an intermediate int64 product overflowed.
	ErrOverflow = errors.New("rational: int64 overflow")
)

// Rat is an exact fraction over int64, kept in lowest terms with a
// positive denominator. Rat has value semantics: it can be copied,
// compared with == and used as a map key. Two Rat values constructed
// from equal fractions compare equal with == because both are reduced.
//
// The zero value (0/0) is invalid; use New or FromInt.
type Rat struct {
	num int64
	den int64
}

// New returns the reduced fraction num/den.
// It panics with ErrZeroDenominator if den == 0.
// A negative den is normalized so the sign lives in the numerator.
func New(num, den int64) Rat {
	if den == 0 {
		panic(ErrZeroDenominator)
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}

	return Rat{num: num, den: den}
}

// FromInt returns the integer n as a Rat (n/1).
func FromInt(n int64) Rat { return Rat{num: n, den: 1} }

// Num returns the reduced numerator (carries the sign).
func (r Rat) Num() int64 { return r.num }

// Den returns the reduced denominator (always positive).
func (r Rat) Den() int64 { return r.den }

// Sign returns -1, 0 or +1 according to the sign of r.
func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return +1
	default:
		return 0
	}
}

// Add returns r + o, reduced.
func (r Rat) Add(o Rat) Rat {
	return New(addChecked(mulChecked(r.num, o.den), mulChecked(o.num, r.den)), mulChecked(r.den, o.den))
}

// AddInt returns r + n, reduced.
func (r Rat) AddInt(n int64) Rat {
	return Rat{num: addChecked(r.num, mulChecked(n, r.den)), den: r.den}
}

// Mul returns r * o, reduced. Operands are cross-reduced before the
// products are formed to keep intermediates as small as possible.
func (r Rat) Mul(o Rat) Rat {
	g1 := gcd(abs(r.num), o.den)
	g2 := gcd(abs(o.num), r.den)

	return Rat{
		num: mulChecked(r.num/g1, o.num/g2),
		den: mulChecked(r.den/g2, o.den/g1),
	}
}

// MulInt returns r * n, reduced.
func (r Rat) MulInt(n int64) Rat {
	g := gcd(abs(n), r.den)

	return Rat{num: mulChecked(r.num, n/g), den: r.den / g}
}

// Div returns r / o, reduced.
// It panics with ErrZeroDenominator if o is zero.
func (r Rat) Div(o Rat) Rat {
	if o.num == 0 {
		panic(ErrZeroDenominator)
	}

	return r.Mul(Rat{num: o.den, den: o.num}.norm())
}

// DivInt returns r / n, reduced.
// It panics with ErrZeroDenominator if n == 0.
func (r Rat) DivInt(n int64) Rat {
	if n == 0 {
		panic(ErrZeroDenominator)
	}
	g := gcd(abs(r.num), abs(n))

	return Rat{num: r.num / g, den: mulChecked(r.den, n/g)}.norm()
}

// Cmp compares r and o exactly, returning -1, 0 or +1.
func (r Rat) Cmp(o Rat) int {
	lhs := mulChecked(r.num, o.den)
	rhs := mulChecked(o.num, r.den)
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return +1
	default:
		return 0
	}
}

// CmpInt compares r against the integer n exactly.
func (r Rat) CmpInt(n int64) int { return r.Cmp(FromInt(n)) }

// IsInt reports whether r is an integer (denominator 1).
func (r Rat) IsInt() bool { return r.den == 1 }

// Int64 returns r truncated toward zero.
func (r Rat) Int64() int64 { return r.num / r.den }

// Ceil returns the smallest integer not less than r, exactly.
func (r Rat) Ceil() int64 {
	if r.num > 0 {
		return (r.num + r.den - 1) / r.den
	}

	return r.num / r.den
}

// Floor returns the largest integer not greater than r, exactly.
func (r Rat) Floor() int64 {
	if r.num < 0 {
		return -((-r.num + r.den - 1) / r.den)
	}

	return r.num / r.den
}

// Float64 returns the nearest float64 to r. Display use only; all
// solver decisions are made on exact values.
func (r Rat) Float64() float64 { return float64(r.num) / float64(r.den) }

// String renders r as "num" for integers, "num/den" otherwise.
func (r Rat) String() string {
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

// Lcm returns the least common multiple of two positive rationals:
// the denominator is lcm(den_a, den_b) and the numerator is the lcm of
// the numerators scaled onto that common denominator.
func Lcm(a, b Rat) Rat {
	den := lcm(a.den, b.den)
	num := lcm(mulChecked(a.num, den/a.den), mulChecked(b.num, den/b.den))

	return New(num, den)
}

// norm flips the stored sign onto the numerator. Fields are assumed to
// already be coprime.
func (r Rat) norm() Rat {
	if r.den < 0 {
		r.num, r.den = -r.num, -r.den
	}

	return r
}

// gcd is Euclid's algorithm over non-negative operands.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}

	return a
}

// lcm multiplies through the gcd, overflow-checked.
func lcm(a, b int64) int64 {
	return mulChecked(a/gcd(abs(a), abs(b)), b)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

// mulChecked multiplies two int64 values, panicking with ErrOverflow
// instead of wrapping.
func mulChecked(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		panic(ErrOverflow)
	}

	return p
}

// addChecked adds two int64 values, panicking with ErrOverflow on
// signed overflow.
func addChecked(a, b int64) int64 {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		panic(ErrOverflow)
	}

	return s
}
