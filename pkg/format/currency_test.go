package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 12.5, "$12.50"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Millions", 1000000, "$1,000,000.00"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestCurrencyRounding(t *testing.T) {
	// Sub-cent values round the way Sprintf does.
	if result := Currency(0.005); result != "$0.01" && result != "$0.00" {
		t.Errorf("Currency(0.005) = %q", result)
	}
	if result := Currency(999.999); result != "$1,000.00" {
		t.Errorf("Currency(999.999) = %q, expected $1,000.00", result)
	}
}
