package vals

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNum parses a literal token as a number. It reports false if the token
// does not convert cleanly to a number, in which case the token is a symbol.
//
// Decimal and exponent forms are accepted, as are integers with a 0x, 0o or 0b
// prefix. NaN is never produced, and the words inf and infinity are left as
// symbols.
func ParseNum(s string) (float64, bool) {
	// strconv accepts underscores as digit separators.
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return 0, false
	}
	if len(body) > 1 && body[0] == '0' && strings.ContainsRune("xXoObB", rune(body[1])) {
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(i), true
	}
	lower := strings.ToLower(body)
	if strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "nan") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflowing literals become infinities.
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FormatNum formats a number. Integral numbers are written without a
// fractional part, and scientific notation is only used for very large or
// very small numbers.
func FormatNum(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	noPoint := !strings.ContainsRune(s, '.')
	if (noPoint && len(s) > 21) || strings.HasPrefix(strings.TrimLeft(s, "-"), "0.000000") {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return s
}
