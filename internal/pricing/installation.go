package pricing

import "math"

// Installation fee = base fee for the size × municipality multiplier,
// rounded half-up. Unknown sizes and municipalities fall back to defaults,
// never to an error.

const (
	defaultInstallationBase = 500.0
	defaultMultiplier       = 1.0
)

var installationBaseBySize = map[string]float64{
	"4x3":  500,
	"6x3":  700,
	"8x3":  900,
	"10x4": 1100,
	"12x4": 1300,
	"13x5": 1500,
	"14x5": 1600,
	"18x6": 2000,
}

var municipalityMultiplier = map[string]float64{
	"طرابلس":  1.1,
	"بنغازي":  1.05,
	"مصراتة":  1.0,
	"الزاوية": 0.95,
	"زليتن":   0.95,
	"سبها":    0.9,
	"البيضاء": 0.9,
}

// InstallationFee returns the one-time setup fee for a billboard.
func InstallationFee(size, municipality string) float64 {
	base, ok := installationBaseBySize[size]
	if !ok {
		base = defaultInstallationBase
	}
	mult, ok := municipalityMultiplier[municipality]
	if !ok {
		mult = defaultMultiplier
	}
	return math.Round(base * mult)
}
