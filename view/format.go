package view

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Precision used for every amount and extent shown to the user.
const (
	DefaultSigFigs  = 4
	DefaultDecimals = 6
)

// Round rounds num to sigfigs significant figures and then cuts it to at most
// decimals places. sigfigs <= 0 skips the first step, decimals < 0 the second.
//
//	Round(0.123456789, 4, 6) = 0.1235
//	Round(66.666, 2, 0)      = 67
//
// Non-finite values are returned unchanged.
func Round(num float64, sigfigs, decimals int) float64 {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return num
	}
	v := num
	if sigfigs > 0 {
		// 'g' formatting is exact decimal rounding; parsing it back cannot fail.
		v, _ = strconv.ParseFloat(strconv.FormatFloat(num, 'g', sigfigs, 64), 64)
	}
	if decimals >= 0 {
		p := math.Pow(10, float64(decimals))
		v = math.Round(v*p) / p
	}
	if v == 0 {
		return 0 // drop the sign of −0
	}

	return v
}

// NewPrinter returns a message.Printer for a BCP 47 locale such as "en" or
// "de-CH". An empty locale means English.
func NewPrinter(locale string) (*message.Printer, error) {
	if locale == "" {
		return message.NewPrinter(language.English), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("view: locale %q: %w", locale, err)
	}

	return message.NewPrinter(tag), nil
}

// formatAmount rounds v with the default precision and prints it with the
// printer's digit grouping and decimal separator.
func formatAmount(p *message.Printer, v float64) string {
	return p.Sprintf("%v", number.Decimal(Round(v, DefaultSigFigs, DefaultDecimals), number.MaxFractionDigits(DefaultDecimals)))
}

// formatPercent prints a whole-number percentage, as on the slider readout.
func formatPercent(p *message.Printer, v float64) string {
	return p.Sprintf("%v%%", number.Decimal(Round(v, 2, 0), number.MaxFractionDigits(0)))
}

// tickLabel is the locale-free label used on chart axes.
func tickLabel(v float64) string {
	return strconv.FormatFloat(Round(v, DefaultSigFigs, DefaultDecimals), 'g', -1, 64)
}
