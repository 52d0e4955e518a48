package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reNonAmount = regexp.MustCompile(`[^0-9.,]`)
	// European layout: dot-grouped thousands with exactly two comma
	// decimals at the end, e.g. "1.234,56".
	reEuroAmount = regexp.MustCompile(`^\d{1,3}(\.\d{3})*,\d{2}$`)
)

// ParseAmount normalizes a locale-ambiguous price string ("£1,234.56",
// "1.234,56", "120") into a non-negative decimal amount. Empty or
// unparsable input yields 0, which downstream treats as "not computable".
func ParseAmount(raw string) float64 {
	s := reNonAmount.ReplaceAllString(raw, "")
	if s == "" {
		return 0
	}

	if reEuroAmount.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	// Multi-locale garbage can leave several dots; only the last one is the
	// decimal point.
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
