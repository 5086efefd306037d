package narrative

import (
	"regexp"
	"strconv"
	"strings"
)

var amountPatterns = []struct {
	re         *regexp.Regexp
	multiplier float64
	grouped    bool
}{
	{regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:juta|jt)`), 1000000, false},
	{regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*ribu`), 1000, false},
	{regexp.MustCompile(`(?i)rp\.?\s*(\d[\d.,]*)`), 1, true},
}

// ExtractAmount находит первую денежную сумму в свободном тексте.
func ExtractAmount(text string) (float64, bool) {
	for _, pattern := range amountPatterns {
		match := pattern.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		raw := match[1]
		if pattern.grouped {
			raw = strings.NewReplacer(".", "", ",", "").Replace(raw)
		} else {
			raw = strings.ReplaceAll(raw, ",", ".")
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		return value * pattern.multiplier, true
	}
	return 0, false
}
