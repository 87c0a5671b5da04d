// Package solver core types, search-space bounds and sentinel errors.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/mhx/gpsdo-config/rational"
)

// Divider-stage bounds of the Si53xx synthesis path. The solver never
// searches outside these; they are hardware facts, not tunables.
const (
	// N1HSMin / N1HSMax bound the shared first-stage high-speed divider.
	N1HSMin = 4
	N1HSMax = 11
	// N2HSMin / N2HSMax bound the second-stage high-speed divider.
	N2HSMin = 4
	N2HSMax = 11
	// NCxLSMax bounds the low-speed output dividers NC1_LS / NC2_LS.
	NCxLSMax = 1 << 20
	// N2LSMax bounds the second-stage low-speed divider.
	N2LSMax = 1 << 20
	// N31Max bounds the comparison-stage divisor.
	N31Max = 1 << 19
)

// Sentinel errors for Solve input validation.
var (
	// ErrNonPositiveFrequency indicates a target frequency ≤ 0.
	ErrNonPositiveFrequency = errors.New("solver: target frequencies must be strictly positive")
	// ErrInvalidLimits indicates a malformed hardware limits record.
	ErrInvalidLimits = errors.New("solver: hardware limits must be positive with lo ≤ hi")
	// ErrInvalidMode indicates an out-of-range search mode.
	ErrInvalidMode = errors.New("solver: unknown search mode")
)

// Limits is the immutable set of hardware bounds a solve runs against:
// VCO frequency range, phase-detector comparison frequency (f3) range,
// and the GPS reference frequency ceiling. All values are in Hz.
type Limits struct {
	VCOLo int64
	VCOHi int64
	F3Lo  int64
	F3Hi  int64
	GPSHi int64
}

// DefaultLimits returns the bounds of the common GPSDO hardware:
// VCO and f3 ranges from the Silicon Labs Si53xx-RM Rev. 1.3, Table 26,
// GPS reference ceiling from the ublox MAX-M8 series data sheet.
func DefaultLimits() Limits {
	return Limits{
		VCOLo: 4_850_000_000,
		VCOHi: 5_670_000_000,
		F3Lo:  2_000,
		F3Hi:  2_000_000,
		GPSHi: 10_000_000,
	}
}

// validate rejects records the search could not run against. The GPS
// ceiling must fit the 32-bit register the result is written to.
func (l Limits) validate() error {
	if l.VCOLo <= 0 || l.VCOHi < l.VCOLo {
		return ErrInvalidLimits
	}
	if l.F3Lo <= 0 || l.F3Hi < l.F3Lo {
		return ErrInvalidLimits
	}
	if l.GPSHi <= 0 || l.GPSHi > math.MaxUint32 {
		return ErrInvalidLimits
	}

	return nil
}

// Mode selects search thoroughness. The values are ordered
// Any < Good < Best < All; the solver compares the best quality seen
// so far against the requested mode to decide when to stop.
type Mode int

const (
	// Any accepts the first legal divider tuple found.
	Any Mode = iota
	// Good stops once a tuple reaches at least half the maximum
	// possible comparison frequency for its N31.
	Good
	// Best continues until the theoretical maximum comparison
	// frequency is reached.
	Best
	// All enumerates the entire search space with no early exit.
	All
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Any:
		return "any"
	case Good:
		return "good"
	case Best:
		return "best"
	case All:
		return "all"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name ("any", "good", "best", "all") into a
// Mode, returning ErrInvalidMode for anything else.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "any":
		return Any, nil
	case "good":
		return Good, nil
	case "best":
		return Best, nil
	case "all":
		return All, nil
	default:
		return 0, ErrInvalidMode
	}
}

// Solution is one legal divider tuple. The seven fields are exactly
// what gets written to the hardware; everything else (f3, fOSC, the
// two output frequencies) derives from them.
type Solution struct {
	FGPS  uint32 `json:"fGPS"`
	N31   uint32 `json:"N31"`
	N1HS  uint32 `json:"N1_HS"`
	NC1LS uint32 `json:"NC1_LS"`
	NC2LS uint32 `json:"NC2_LS"`
	N2HS  uint32 `json:"N2_HS"`
	N2LS  uint32 `json:"N2_LS"`
}

// F3 returns the realized phase-detector comparison frequency fGPS/N31.
func (s Solution) F3() rational.Rat {
	return rational.New(int64(s.FGPS), int64(s.N31))
}

// FOSC returns the realized VCO frequency f3 · N2_HS · N2_LS.
func (s Solution) FOSC() rational.Rat {
	return s.F3().MulInt(int64(s.N2HS)).MulInt(int64(s.N2LS))
}

// Output1 returns the first output frequency fOSC / (N1_HS · NC1_LS).
func (s Solution) Output1() rational.Rat {
	return s.FOSC().DivInt(int64(s.N1HS) * int64(s.NC1LS))
}

// Output2 returns the second output frequency fOSC / (N1_HS · NC2_LS).
func (s Solution) Output2() rational.Rat {
	return s.FOSC().DivInt(int64(s.N1HS) * int64(s.NC2LS))
}

// Less ranks s before o iff s realizes a strictly higher comparison
// frequency, compared exactly by cross-multiplication:
// fGPS_s/N31_s > fGPS_o/N31_o.
func (s Solution) Less(o Solution) bool {
	return uint64(s.FGPS)*uint64(o.N31) > uint64(o.FGPS)*uint64(s.N31)
}

// String renders the divider fields in register order.
func (s Solution) String() string {
	return fmt.Sprintf(
		"fGPS = %d, N31 = %d, N1_HS = %d, NC1_LS = %d, NC2_LS = %d, N2_HS = %d, N2_LS = %d",
		s.FGPS, s.N31, s.N1HS, s.NC1LS, s.NC2LS, s.N2HS, s.N2LS)
}
