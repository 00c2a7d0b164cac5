// Package money parses and renders Brazilian-locale currency ("R$ 1.234,56").
//
// All arithmetic on monetary values goes through shopspring/decimal and is rounded to cents,
// so sums of float64 inputs do not drift.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// 1.234.567,89 (grouped) or 1234567,89 (ungrouped); at most two fraction digits.
	groupedPattern   = regexp.MustCompile(`^\d{1,3}(\.\d{3})+(,\d{1,2})?$`)
	ungroupedPattern = regexp.MustCompile(`^\d+(,\d{1,2})?$`)
)

// Parse converts free-text BRL input into a non-negative amount.
//
// Accepted: "R$ 1.234,56", "1234,5", "0", "R$0,00". Anything ambiguous (mixed separators in the
// wrong place, more than two fraction digits, signs, letters) is rejected with ok=false.
func Parse(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, false
	}
	if !groupedPattern.MatchString(s) && !ungroupedPattern.MatchString(s) {
		return 0, false
	}
	normalized := strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, false
	}
	return d.Round(2).InexactFloat64(), true
}

// Format renders v as "R$ 1.234,56". Negative values keep a leading minus.
func Format(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// Round2 rounds v to cents.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Mul returns unit × qty rounded to cents.
func Mul(unit float64, qty int) float64 {
	return decimal.NewFromFloat(unit).Mul(decimal.NewFromInt(int64(qty))).Round(2).InexactFloat64()
}

// Sum adds the values exactly and rounds the result to cents.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}
