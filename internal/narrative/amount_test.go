package narrative

import "testing"

// TestExtractAmount проверяет все форматы сумм и приоритет шаблонов.
func TestExtractAmount(t *testing.T) {
	cases := []struct {
		text string
		want float64
		ok   bool
	}{
		{"butuh 20 juta untuk DP", 20000000, true},
		{"sekitar 2,5jt per bulan", 2500000, true},
		{"tambahan 500 ribu", 500000, true},
		{"harga Rp 1.500.000", 1500000, true},
		{"total rp2.000.000", 2000000, true},
		{"bayar Rp. 750.000 sekali", 750000, true},
		{"Rp 500.000 atau 2 juta", 2000000, true},
		{"gaji 10 juta dan bonus 3 juta", 10000000, true},
		{"tidak ada angka di sini", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := ExtractAmount(tc.text)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ExtractAmount(%q): expected %v %v, got %v %v", tc.text, tc.want, tc.ok, got, ok)
		}
	}
}
