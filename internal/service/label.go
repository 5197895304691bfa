package service

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// LabelFormat controls the optional text drawn over an indicator.
type LabelFormat struct {
	Show    bool
	Animate bool // follow the animated value instead of jumping to the target
	Decimal bool // one decimal place, half-even rounding; otherwise truncated integers
	Prefix  string
	Suffix  string
}

// Format renders v with the configured prefix, suffix and precision.
func (f LabelFormat) Format(v float64) string {
	var s string
	if f.Decimal {
		s = decimal.NewFromFloat(v).RoundBank(1).StringFixed(1)
	} else {
		s = strconv.FormatInt(int64(v), 10)
	}
	return f.Prefix + s + f.Suffix
}
