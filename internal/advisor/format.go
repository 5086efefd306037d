package advisor

import (
	"math"
	"strconv"
	"strings"
)

// FormatRupiah форматирует сумму в рупиях с точками-разделителями тысяч.
func FormatRupiah(amount float64) string {
	negative := amount < 0
	digits := strconv.FormatInt(int64(math.Round(math.Abs(amount))), 10)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("Rp")

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
		if len(digits) > head {
			b.WriteByte('.')
		}
	}
	for i := head; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// FormatPercent форматирует долю в процентах с одним знаком после запятой.
func FormatPercent(value float64) string {
	rounded := math.Round(value*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}
