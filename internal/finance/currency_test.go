package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "₹1.5L", FormatCompact(150000))
	assert.Equal(t, "₹25k", FormatCompact(25000))
	assert.Equal(t, "₹500", FormatCompact(500))
	assert.Equal(t, "₹1.0L", FormatCompact(100000))
	assert.Equal(t, "₹1k", FormatCompact(1000))
	assert.Equal(t, "₹0", FormatCompact(0))
	assert.Equal(t, "₹999", FormatCompact(999))
	assert.Equal(t, "₹10.0L", FormatCompact(1000000))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹500", FormatINR(500))
	assert.Equal(t, "₹1,000", FormatINR(1000))
	assert.Equal(t, "₹25,000", FormatINR(25000))
	assert.Equal(t, "₹1,50,000", FormatINR(150000))
	assert.Equal(t, "₹12,34,567", FormatINR(1234567))
	assert.Equal(t, "₹1,00,00,000", FormatINR(10000000))
	assert.Equal(t, "₹0", FormatINR(0))
	assert.Equal(t, "-₹1,234", FormatINR(-1234))

	// Fractions round to whole rupees
	assert.Equal(t, "₹1,235", FormatINR(1234.6))
}
