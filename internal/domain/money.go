package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts a decimal price string ("200.00", "99.9", "150") into
// integer cents. Anything past two fractional digits is rejected.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if units < 0 {
		return 0, fmt.Errorf("negative price %q", s)
	}
	if frac == "" {
		return units * 100, nil
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid price %q: too many decimal places", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if len(frac) == 1 {
		cents *= 10
	}
	return units*100 + cents, nil
}

// FormatPrice renders cents as a two-decimal string.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// RefundCents applies the 75% refund policy, rounding half-up to the cent.
func RefundCents(totalCents int64) int64 {
	return (totalCents*75 + 50) / 100
}
