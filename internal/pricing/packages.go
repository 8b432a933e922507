package pricing

import "fmt"

// PackageOption is a fixed-duration pricing option with a pre-set total.
type PackageOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// Packages is the fixed catalog of duration packages.
var Packages = []PackageOption{
	{Key: DurationOneMonth, Label: "شهر واحد", Days: 30},
	{Key: DurationTwoMonths, Label: "شهرين", Days: 60},
	{Key: DurationThreeMonths, Label: "3 أشهر", Days: 90},
	{Key: DurationSixMonths, Label: "6 أشهر", Days: 180},
	{Key: DurationOneYear, Label: "سنة كاملة", Days: 365},
}

// PackageByKey looks up a catalog entry by its duration key.
func PackageByKey(key string) (PackageOption, error) {
	for _, p := range Packages {
		if p.Key == key {
			return p, nil
		}
	}
	return PackageOption{}, fmt.Errorf("unknown package: %q", key)
}
