package finance

import (
	"fmt"
	"math"
	"strings"
)

// FormatCompact renders an amount in the short dashboard form:
// lakhs above 1,00,000 ("₹1.5L"), thousands above 1,000 ("₹25k"),
// plain rupees below that ("₹500").
func FormatCompact(amount float64) string {
	if amount >= 100000 {
		return fmt.Sprintf("₹%.1fL", amount/100000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("₹%.0fk", amount/1000)
	}
	return fmt.Sprintf("₹%.0f", amount)
}

// FormatINR renders an amount with full Indian digit grouping and no suffix,
// e.g. 1234567 → "₹12,34,567". Used on detail views; not interchangeable
// with FormatCompact.
func FormatINR(amount float64) string {
	neg := amount < 0
	rounded := int64(math.Round(math.Abs(amount)))
	grouped := groupIndian(fmt.Sprintf("%d", rounded))
	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

// groupIndian inserts commas Indian-style: the last three digits form one
// group, every group before that has two digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}
