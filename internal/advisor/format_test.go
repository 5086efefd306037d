package advisor

import "testing"

// TestFormatRupiah проверяет разделители тысяч и знак суммы.
func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rp0"},
		{999, "Rp999"},
		{1000, "Rp1.000"},
		{2500000, "Rp2.500.000"},
		{1234567.6, "Rp1.234.568"},
		{-150000, "-Rp150.000"},
	}

	for _, tc := range cases {
		if got := FormatRupiah(tc.amount); got != tc.want {
			t.Fatalf("FormatRupiah(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

// TestFormatPercent проверяет округление до одного знака.
func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0%"},
		{30, "30%"},
		{33.333, "33.3%"},
		{66.666, "66.7%"},
	}

	for _, tc := range cases {
		if got := FormatPercent(tc.value); got != tc.want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
