package ternary

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/scale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locator chooses tick values for an axis interval. The interval may be
// given in either order (negative ternary sums have min > max); the values
// are returned in increasing order.
type Locator interface {
	Locate(min, max float64) []float64
}

// AutoLocator places ticks at round values using go-moremath's linear scale
// levels, whose spacing alternates between 1 and 5 times a power of ten,
// with at most MaxTicks major ticks. A zero MaxTicks means 11, a tenth of
// the interval on the full triangle.
type AutoLocator struct {
	MaxTicks int
}

// Locate implements Locator.
func (l AutoLocator) Locate(min, max float64) []float64 {
	lo, hi := math.Min(min, max), math.Max(min, max)
	if lo == hi {
		return []float64{lo}
	}
	n := l.MaxTicks
	if n <= 0 {
		n = 11
	}
	s := scale.Linear{Min: lo, Max: hi}
	major, _ := s.Ticks(scale.TickOptions{Max: n})
	return clipTicks(major, lo, hi)
}

// FixedLocator returns the listed values that fall inside the interval.
type FixedLocator []float64

// Locate implements Locator.
func (l FixedLocator) Locate(min, max float64) []float64 {
	lo, hi := math.Min(min, max), math.Max(min, max)
	vals := slices.Clone([]float64(l))
	slices.Sort(vals)
	return clipTicks(vals, lo, hi)
}

func clipTicks(vals []float64, lo, hi float64) []float64 {
	eps := 1e-9 * math.Max(math.Abs(lo), math.Abs(hi))
	out := vals[:0:0]
	for _, v := range vals {
		if v >= lo-eps && v <= hi+eps {
			out = append(out, v)
		}
	}
	return out
}

// Formatter turns tick values into label text. It sees all ticks of an axis
// at once so that the precision can follow the tick spacing.
type Formatter interface {
	Format(ticks []float64) []string
}

// FormatterFunc formats every tick independently.
type FormatterFunc func(v float64) string

// Format implements Formatter.
func (f FormatterFunc) Format(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, v := range ticks {
		out[i] = f(v)
	}
	return out
}

// NumberFormatter formats ticks as locale-aware decimals or percentages.
type NumberFormatter struct {
	// Lang selects the number system and separators; Und means English.
	Lang language.Tag
	// Percent multiplies by 100 and appends the locale's percent sign.
	Percent bool
	// Digits is the number of fraction digits; negative chooses the
	// fewest digits that tell neighbouring ticks apart.
	Digits int
}

// DefaultFormatter returns the formatter new axes start with.
func DefaultFormatter() NumberFormatter {
	return NumberFormatter{Lang: language.English, Digits: -1}
}

// Format implements Formatter.
func (f NumberFormatter) Format(ticks []float64) []string {
	tag := f.Lang
	if tag == language.Und {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	digits := f.Digits
	if digits < 0 {
		digits = fractionDigits(ticks, f.Percent)
	}
	out := make([]string, len(ticks))
	for i, v := range ticks {
		if v == 0 {
			v = 0 // drop negative zero
		}
		if f.Percent {
			out[i] = p.Sprint(number.Percent(v, number.Scale(digits)))
		} else {
			out[i] = p.Sprint(number.Decimal(v, number.Scale(digits)))
		}
	}
	return out
}

// fractionDigits returns the digits needed to resolve the smallest spacing
// between consecutive ticks.
func fractionDigits(ticks []float64, percent bool) int {
	step := math.Inf(1)
	for i := 1; i < len(ticks); i++ {
		if d := math.Abs(ticks[i] - ticks[i-1]); d > 0 {
			step = math.Min(step, d)
		}
	}
	if math.IsInf(step, 1) {
		return 0
	}
	if percent {
		step *= 100
	}
	d := int(math.Ceil(-math.Log10(step) - 1e-9))
	return max(d, 0)
}
