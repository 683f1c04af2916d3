package sass

import (
	"sort"
	"strconv"
	"strings"
)

// Number is a Sass numeric value: a float64 magnitude plus numerator and
// denominator unit multisets (spec §3/§4.3). "10px", "1deg/1s" and "5" are
// all Numbers; unitless numbers have empty Numer/Denom.
//
// Units are stored as plain string multisets (not a single unit string)
// because Sass numbers can carry compound units from multiplication, e.g.
// `1px * 1px / 1s` has Numer=[px,px], Denom=[s]. Grounded on spec §4.3's
// "numerator and denominator are multisets of unit tokens".
type Number struct {
	Value float64
	Numer []string
	Denom []string
}

// unitGroup returns the conversion-table group a unit token belongs to, and
// its factor relative to the group's canonical unit. Incompatible groups
// can never be added/compared (spec §4.3, §4.7 IncompatibleUnits).
//
// Table grounded on CSS unit groups (length/angle/time/frequency/resolution)
// referenced by spec §4.3; canonical units chosen to match common Sass
// implementations (px, deg, s, Hz, dppx).
var unitConversions = map[string]struct {
	group  string
	factor float64 // multiply by factor to convert to the group's canonical unit
}{
	"px": {"length", 1},
	"cm": {"length", 96.0 / 2.54},
	"mm": {"length", 96.0 / 25.4},
	"q":  {"length", 96.0 / 101.6},
	"in": {"length", 96},
	"pt": {"length", 96.0 / 72},
	"pc": {"length", 16},

	"deg":  {"angle", 1},
	"grad": {"angle", 0.9},
	"rad":  {"angle", 180 / 3.141592653589793},
	"turn": {"angle", 360},

	"s":  {"time", 1},
	"ms": {"time", 0.001},

	"hz":  {"frequency", 1},
	"khz": {"frequency", 1000},

	"dpi":  {"resolution", 1},
	"dpcm": {"resolution", 2.54},
	"dppx": {"resolution", 96},
	"x":    {"resolution", 96},
}

func unitKey(u string) string { return strings.ToLower(u) }

// convertible reports whether units a and b belong to the same conversion
// group (and therefore can be added, subtracted or compared after scaling).
func convertible(a, b string) bool {
	if unitKey(a) == unitKey(b) {
		return true
	}
	ga, oka := unitConversions[unitKey(a)]
	gb, okb := unitConversions[unitKey(b)]
	return oka && okb && ga.group == gb.group
}

// factorTo returns the multiplier that converts a value in unit `from` to
// the equivalent value in unit `to`. Both must be convertible.
func factorTo(from, to string) float64 {
	if unitKey(from) == unitKey(to) {
		return 1
	}
	fa := unitConversions[unitKey(from)]
	fb := unitConversions[unitKey(to)]
	return fa.factor / fb.factor
}

func sortedUnits(units []string) []string {
	out := append([]string(nil), units...)
	sort.Strings(out)
	return out
}

// cancel removes matching unit tokens (one from numer against one from
// denom, case-sensitively on the canonical key) — used after multiplication
// and division so `1px * (1/1px)` reduces to a unitless Number.
func cancel(numer, denom []string) ([]string, []string) {
	n := append([]string(nil), numer...)
	d := append([]string(nil), denom...)
	for i := 0; i < len(n); i++ {
		for j := 0; j < len(d); j++ {
			if unitKey(n[i]) == unitKey(d[j]) {
				n = append(n[:i], n[i+1:]...)
				d = append(d[:j], d[j+1:]...)
				i--
				break
			}
		}
	}
	return n, d
}

func UnitlessNumber(v float64) Number { return Number{Value: v} }

func UnitNumber(v float64, unit string) Number {
	if unit == "" {
		return Number{Value: v}
	}
	return Number{Value: v, Numer: []string{unit}}
}

// HasUnits reports whether the number carries any unit token at all.
func (n Number) HasUnits() bool { return len(n.Numer) > 0 || len(n.Denom) > 0 }

// Unit returns the single simple unit string if the number has exactly one
// numerator unit and no denominator units, else "".
func (n Number) Unit() string {
	if len(n.Numer) == 1 && len(n.Denom) == 0 {
		return n.Numer[0]
	}
	return ""
}

// compatible reports whether two numbers' unit multisets can be reconciled
// by per-slot conversion (same length after sorting, each slot convertible).
func unitsCompatible(a, b Number) bool {
	if len(a.Numer) != len(b.Numer) || len(a.Denom) != len(b.Denom) {
		return false
	}
	an, bn := sortedUnits(a.Numer), sortedUnits(b.Numer)
	ad, bd := sortedUnits(a.Denom), sortedUnits(b.Denom)
	for i := range an {
		if !convertible(an[i], bn[i]) {
			return false
		}
	}
	for i := range ad {
		if !convertible(ad[i], bd[i]) {
			return false
		}
	}
	return true
}

// valueInUnitsOf returns n's magnitude rescaled so its units read as `target`'s
// units (both already known unitsCompatible).
func valueInUnitsOf(n, target Number) float64 {
	v := n.Value
	an, bn := sortedUnits(n.Numer), sortedUnits(target.Numer)
	for i := range an {
		v *= factorTo(an[i], bn[i])
	}
	ad, bd := sortedUnits(n.Denom), sortedUnits(target.Denom)
	for i := range ad {
		v /= factorTo(ad[i], bd[i])
	}
	return v
}

// NumbersEqual implements spec §4.3: "two Numbers are equal iff they are
// comparable and numerically equal after unit reduction".
func NumbersEqual(a, b Number) bool {
	if !unitsCompatible(a, b) {
		return false
	}
	return valueInUnitsOf(a, b) == b.Value
}

// AddNumbers implements unit-aware addition (spec §4.3): units must be
// compatible after conversion; the result carries b's unit spelling (the
// right operand's, matching the common "keep the units of whichever side
// the compiler normalizes to" libsass convention — see original_source
// inspect.cpp's preference for "the last known unit" during arithmetic
// folds).
func AddNumbers(a, b Number) (Number, error) {
	if !unitsCompatible(a, b) {
		return Number{}, &unitError{a, b}
	}
	return Number{Value: valueInUnitsOf(a, b) + b.Value, Numer: b.Numer, Denom: b.Denom}, nil
}

func SubNumbers(a, b Number) (Number, error) {
	if !unitsCompatible(a, b) {
		return Number{}, &unitError{a, b}
	}
	return Number{Value: valueInUnitsOf(a, b) - b.Value, Numer: b.Numer, Denom: b.Denom}, nil
}

// CompareNumbers returns -1/0/1, or an error if units are incompatible.
func CompareNumbers(a, b Number) (int, error) {
	if !unitsCompatible(a, b) {
		return 0, &unitError{a, b}
	}
	av := valueInUnitsOf(a, b)
	switch {
	case av < b.Value:
		return -1, nil
	case av > b.Value:
		return 1, nil
	default:
		return 0, nil
	}
}

// MulNumbers multiplies magnitudes and multiplies+cancels unit multisets
// (spec §4.3: "multiplying multiplies the multisets and cancels").
func MulNumbers(a, b Number) Number {
	numer := append(append([]string(nil), a.Numer...), b.Numer...)
	denom := append(append([]string(nil), a.Denom...), b.Denom...)
	numer, denom = cancel(numer, denom)
	return Number{Value: a.Value * b.Value, Numer: numer, Denom: denom}
}

// DivNumbers divides magnitudes and inverts+multiplies b's units before
// cancelling — the algebraic dual of MulNumbers.
func DivNumbers(a, b Number) (Number, error) {
	if b.Value == 0 {
		return Number{}, errZeroDivision
	}
	numer := append(append([]string(nil), a.Numer...), b.Denom...)
	denom := append(append([]string(nil), a.Denom...), b.Numer...)
	numer, denom = cancel(numer, denom)
	return Number{Value: a.Value / b.Value, Numer: numer, Denom: denom}, nil
}

func ModNumbers(a, b Number) (Number, error) {
	if b.Value == 0 {
		return Number{}, errZeroDivision
	}
	if !unitsCompatible(a, b) && a.HasUnits() && b.HasUnits() {
		return Number{}, &unitError{a, b}
	}
	av := a.Value
	if unitsCompatible(a, b) {
		av = valueInUnitsOf(a, b)
	}
	m := av - b.Value*float64(int64(av/b.Value))
	return Number{Value: m, Numer: b.Numer, Denom: b.Denom}, nil
}

// String formats a number the way the serialiser's inspect mode does:
// trim trailing zeros, no leading "0" suppression here (that's a
// presentation-style concern left to the serialiser; this is the
// round-trippable debug form used by inspect()/error messages).
func (n Number) String() string {
	var b strings.Builder
	b.WriteString(formatFloat(n.Value))
	if len(n.Numer) > 0 {
		b.WriteString(strings.Join(n.Numer, "*"))
	}
	if len(n.Denom) > 0 {
		b.WriteString("/")
		b.WriteString(strings.Join(n.Denom, "*"))
	}
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type unitError struct{ a, b Number }

func (e *unitError) Error() string {
	return "incompatible units: " + e.a.String() + " and " + e.b.String()
}

var errZeroDivision = &zeroDivisionError{}

type zeroDivisionError struct{}

func (e *zeroDivisionError) Error() string { return "division by zero" }
