// Package money converts between integer cents and Brazilian real text
// ("R$ 1.234,56"), and splits totals into installments.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when text cannot be read as a monetary value.
var ErrInvalidAmount = errors.New("invalid monetary amount")

const symbol = "R$"

var (
	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// Parse reads a localized monetary string into cents. The currency symbol and
// whitespace are ignored. When the text contains a comma it is the decimal
// separator and dots are thousands separators; otherwise a dot is the decimal
// separator. Values are rounded half away from zero to whole cents.
func Parse(s string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), symbol, "")
	clean = strings.Join(strings.Fields(clean), "")
	if clean == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return ToCents(d)
}

// ToCents rounds d to two places and returns it as cents. Values that do not
// fit in int64 cents are rejected.
func ToCents(d decimal.Decimal) (int64, error) {
	return wholeCents(d.Round(2).Shift(2))
}

func wholeCents(cents decimal.Decimal) (int64, error) {
	if cents.LessThan(minCents) || cents.GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidAmount)
	}
	return cents.IntPart(), nil
}

// FromCents returns cents as a decimal in currency units.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders cents as "R$ 1.000,50". Zero is "R$ 0,00" and negative
// values keep the sign after the symbol.
func Format(cents int64) string {
	fixed := FromCents(cents).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, frac, _ := strings.Cut(fixed, ".")
	return fmt.Sprintf("%s %s%s,%s", symbol, sign, groupThousands(intPart), frac)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Split divides total into n installments of whole cents. Every installment
// receives total/n and the remainder is added to the first one, so the parts
// always sum to total. It returns nil when n < 1.
func Split(total int64, n int) []int64 {
	if n < 1 {
		return nil
	}
	parts := make([]int64, n)
	share := total / int64(n)
	for i := range parts {
		parts[i] = share
	}
	parts[0] += total - share*int64(n)
	return parts
}

// Percent returns part/whole*100, or zero when whole is zero.
func Percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Div(decimal.NewFromInt(whole)).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}

// Round rounds f to the given number of decimal places.
func Round(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
