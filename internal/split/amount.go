package split

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// groupedAmount matches a number whose integer part is split into
// thousands, e.g. "1,234,567.89".
var groupedAmount = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)

// ParseAmount reads an investment amount from user input, tolerating a
// leading currency symbol and thousands separators ("₹ 1,000.50").
// Range checks are left to Split.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.TrimLeftFunc(raw, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+'
	})
	cleaned = strings.TrimSpace(cleaned)

	if strings.Contains(cleaned, ",") {
		if !groupedAmount.MatchString(cleaned) {
			return 0, fmt.Errorf("%w: total_investment %q has misplaced thousands separators", ErrInvalidInput, raw)
		}
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: total_investment %q is not a number", ErrInvalidInput, raw)
	}
	return v, nil
}
