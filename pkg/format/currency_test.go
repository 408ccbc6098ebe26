package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Small positive", 12.34, "€12.34"},
		{"Thousands separator", 1234.56, "€1,234.56"},
		{"Millions", 1234567.89, "€1,234,567.89"},
		{"Negative", -1234.56, "-€1,234.56"},
		{"Zero", 0, "€0.00"},
		{"Whole number", 300000, "€300,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.input)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Positive", 1234.5, "1,234.50"},
		{"Negative", -987654.32, "-987,654.32"},
		{"Zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NumericCurrency(tt.input)
			if result != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Typical rate", 3.75, "3.75%"},
		{"Rounded display", 3.456, "3.46%"},
		{"Negative", -1.5, "-1.50%"},
		{"Zero", 0, "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percent(tt.input)
			if result != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
