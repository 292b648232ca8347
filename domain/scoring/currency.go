package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// currencyPattern recognizes explicit dollar figures such as "$250,000" or
// "$80k" in free text
var currencyPattern = regexp.MustCompile(`\$[\d,]+k?`)

// findCurrency extracts the first dollar figure from text, returning its
// numeric value and matched literal
func findCurrency(text string) (float64, string, bool) {
	match := currencyPattern.FindString(text)
	if match == "" {
		return 0, "", false
	}

	raw := strings.TrimPrefix(match, "$")
	multiplier := 1.0
	if strings.HasSuffix(raw, "k") {
		raw = strings.TrimSuffix(raw, "k")
		multiplier = 1000.0
	}
	raw = strings.ReplaceAll(raw, ",", "")

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Pattern guarantees digits, but stay total regardless
		return 0, "", false
	}
	return value * multiplier, match, true
}
