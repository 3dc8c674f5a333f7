package services

import (
	"fmt"
	"strings"
)

// PlaceholderDash is rendered in place of optional costs that are zero,
// so the document never shows a bare "0" for an option the customer
// did not pick.
const PlaceholderDash = "—"

// FormatINR formats a float64 amount into Indian Rupee notation.
// It uses the Indian numbering system where, after the rightmost 3 digits,
// digits are grouped in pairs (e.g., ₹1,23,45,678.90).
// The result always includes exactly 2 decimal places.
func FormatINR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	// Format with 2 decimal places.
	raw := fmt.Sprintf("%.2f", amount)

	// Split into integer and decimal parts.
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	// Apply Indian grouping to the integer part.
	formatted := applyIndianGrouping(intPart)

	result := "₹" + formatted + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatOptionalINR formats an optional cost line: zero renders as the
// placeholder dash instead of "₹0.00".
func FormatOptionalINR(amount float64) string {
	if amount == 0 {
		return PlaceholderDash
	}
	return FormatINR(amount)
}

// FormatAdjustmentINR formats a deduction (e.g. subsidy) as a negative
// adjustment line, or as the placeholder dash when nothing applies.
func FormatAdjustmentINR(amount float64) string {
	if amount == 0 {
		return PlaceholderDash
	}
	return FormatINR(-amount)
}

// FormatWholeNumber rounds to the nearest whole unit and applies the same
// Indian digit grouping used for currency (used for kWh figures).
func FormatWholeNumber(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	s := applyIndianGrouping(fmt.Sprintf("%.0f", v))
	if negative {
		return "-" + s
	}
	return s
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// The last 3 digits stay together.
	result := s[n-3:]
	remaining := s[:n-3]

	// Group remaining digits in pairs from the right.
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
