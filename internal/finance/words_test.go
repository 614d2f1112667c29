package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole rupees", 1000.00, "One thousand Rupees only"},
		{"rupees and paise", 1000.50, "One thousand Rupees and Fifty Paise only"},
		{"zero", 0.00, "Zero Rupees only"},
		{"single paisa", 0.01, "Zero Rupees and One Paise only"},
		{"hyphenated tens", 45, "Forty-five Rupees only"},
		{"hundreds", 999.99, "Nine hundred ninety-nine Rupees and Ninety-nine Paise only"},
		{"lakh grouping", 150000, "One lakh fifty thousand Rupees only"},
		{"crore grouping", 12345678, "One crore twenty-three lakh forty-five thousand six hundred seventy-eight Rupees only"},
		{"paise rounded at two decimals", 10.006, "Ten Rupees and One Paise only"},
		{"paise rounded away", 10.004, "Ten Rupees only"},
		{"negative coerced to zero", -5, "Zero Rupees only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertToWords(tt.amount))
		})
	}
}

func TestConvertToWordsNonFinite(t *testing.T) {
	assert.Equal(t, WordsFallback, ConvertToWords(math.NaN()))
	assert.Equal(t, WordsFallback, ConvertToWords(math.Inf(1)))
	assert.Equal(t, WordsFallback, ConvertToWords(math.Inf(-1)))
}
