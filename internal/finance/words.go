package finance

import (
	"math"
	"strings"
)

// WordsFallback is returned when the amount cannot be expressed in words.
// It is shown inline on the invoice instead of failing the render.
const WordsFallback = "Amount conversion error"

var onesWords = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// numberWords converts a non-negative integer to lowercase English cardinal
// words using the Indian grouping (hundred, thousand, lakh, crore).
func numberWords(num int64) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return onesWords[num]
	case num < 100:
		if num%10 == 0 {
			return tensWords[num/10]
		}
		return tensWords[num/10] + "-" + onesWords[num%10]
	case num < 1000:
		if num%100 == 0 {
			return onesWords[num/100] + " hundred"
		}
		return onesWords[num/100] + " hundred " + numberWords(num%100)
	case num < 100000:
		if num%1000 == 0 {
			return numberWords(num/1000) + " thousand"
		}
		return numberWords(num/1000) + " thousand " + numberWords(num%1000)
	case num < 10000000:
		if num%100000 == 0 {
			return numberWords(num/100000) + " lakh"
		}
		return numberWords(num/100000) + " lakh " + numberWords(num%100000)
	default:
		if num%10000000 == 0 {
			return numberWords(num/10000000) + " crore"
		}
		return numberWords(num/10000000) + " crore " + numberWords(num%10000000)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ConvertToWords renders a monetary amount as "<Rupees> Rupees and <Paise>
// Paise only". The amount is rounded to two decimals first, so 1000.005
// becomes "One thousand Rupees and One Paise only" and 0 becomes
// "Zero Rupees only". Non-finite input yields WordsFallback.
func ConvertToWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return WordsFallback
	}
	if amount < 0 {
		amount = 0
	}

	// Round at the paise level before splitting to avoid float drift.
	totalPaise := int64(math.Round(amount * 100))
	rupees := totalPaise / 100
	paise := totalPaise % 100

	rupeeWords := numberWords(rupees)
	if rupees == 0 {
		rupeeWords = "zero"
	}
	rupeeWords = capitalize(rupeeWords)

	if paise > 0 {
		return rupeeWords + " Rupees and " + capitalize(numberWords(paise)) + " Paise only"
	}
	return rupeeWords + " Rupees only"
}
