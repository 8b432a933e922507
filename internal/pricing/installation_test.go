package pricing

import "testing"

func TestInstallationFee(t *testing.T) {
	cases := []struct {
		size         string
		municipality string
		want         float64
	}{
		{"13x5", "طرابلس", 1650},  // 1500 × 1.1
		{"13x5", "مصراتة", 1500},  // 1500 × 1.0
		{"8x3", "بنغازي", 945},    // 900 × 1.05
		{"4x3", "سبها", 450},      // 500 × 0.9
		{"unknown-size", "unknown-city", 500},
		{"13x5", "unknown-city", 1500},
		{"unknown-size", "طرابلس", 550},
	}

	for _, tc := range cases {
		got := InstallationFee(tc.size, tc.municipality)
		if got != tc.want {
			t.Errorf("InstallationFee(%q, %q) = %v, want %v",
				tc.size, tc.municipality, got, tc.want)
		}
	}
}
