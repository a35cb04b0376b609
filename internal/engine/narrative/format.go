package narrative

import (
	"math"
	"math/big"
	"strconv"
	"unicode/utf16"
)

// formatRate renders a non-negative rate with one decimal place. Exact
// halves round up, so 14.25 renders as "14.3". Infinite rates render as
// "Infinity" and undefined ones (0/0) as "NaN".
func formatRate(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}
	neg := x < 0
	if neg {
		x = -x
	}

	// Scale the exact binary value by 10 and round half up.
	scaled := new(big.Float).SetPrec(256).SetFloat64(x)
	scaled.Mul(scaled, big.NewFloat(10))
	scaled.Add(scaled, big.NewFloat(0.5))
	tenths, _ := scaled.Int(nil) // truncates toward zero

	q, r := new(big.Int).QuoRem(tenths, big.NewInt(10), new(big.Int))
	s := q.String() + "." + r.String()
	if neg && tenths.Sign() != 0 {
		s = "-" + s
	}
	return s
}

// roundedRate is the rate as displayed; band selection compares against it.
func roundedRate(x float64) float64 {
	f, err := strconv.ParseFloat(formatRate(x), 64)
	if err != nil {
		return x
	}
	return f
}

// textLength counts UTF-16 code units.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
