package pricing

// DefaultPriceRows is the built-in fallback table used when the backend
// store cannot be reached. It covers the common size/level combinations
// for standard customers so that quoting keeps working in degraded mode.
func DefaultPriceRows() []PriceRow {
	return []PriceRow{
		{Size: "13x5", Level: "A", CustomerType: CustomerStandard, Prices: map[string]float64{
			DurationOneDay:      900,
			DurationOneMonth:    24000,
			DurationTwoMonths:   45000,
			DurationThreeMonths: 64000,
			DurationSixMonths:   120000,
			DurationOneYear:     220000,
		}},
		{Size: "13x5", Level: "B", CustomerType: CustomerStandard, Prices: map[string]float64{
			DurationOneDay:      700,
			DurationOneMonth:    18000,
			DurationTwoMonths:   34000,
			DurationThreeMonths: 48000,
			DurationSixMonths:   90000,
			DurationOneYear:     165000,
		}},
		{Size: "12x4", Level: "A", CustomerType: CustomerStandard, Prices: map[string]float64{
			DurationOneDay:      750,
			DurationOneMonth:    20000,
			DurationTwoMonths:   38000,
			DurationThreeMonths: 54000,
			DurationSixMonths:   100000,
			DurationOneYear:     185000,
		}},
		{Size: "12x4", Level: "B", CustomerType: CustomerStandard, Prices: map[string]float64{
			DurationOneDay:      600,
			DurationOneMonth:    16000,
			DurationTwoMonths:   30000,
			DurationThreeMonths: 42000,
			DurationSixMonths:   78000,
			DurationOneYear:     145000,
		}},
		{Size: "8x3", Level: "A", CustomerType: CustomerStandard, Prices: map[string]float64{
			DurationOneDay:      500,
			DurationOneMonth:    13000,
			DurationTwoMonths:   24000,
			DurationThreeMonths: 34000,
			DurationSixMonths:   62000,
			DurationOneYear:     115000,
		}},
		{Size: "8x3", Level: "B", CustomerType: CustomerStandard, Prices: map[string]float64{
			DurationOneDay:      400,
			DurationOneMonth:    10000,
			DurationTwoMonths:   19000,
			DurationThreeMonths: 27000,
			DurationSixMonths:   50000,
			DurationOneYear:     92000,
		}},
		{Size: "4x3", Level: "A", CustomerType: CustomerStandard, Prices: map[string]float64{
			DurationOneDay:      300,
			DurationOneMonth:    8000,
			DurationTwoMonths:   15000,
			DurationThreeMonths: 21000,
			DurationSixMonths:   39000,
			DurationOneYear:     72000,
		}},
		{Size: "4x3", Level: "B", CustomerType: CustomerStandard, Prices: map[string]float64{
			DurationOneDay:      250,
			DurationOneMonth:    6500,
			DurationTwoMonths:   12000,
			DurationThreeMonths: 17000,
			DurationSixMonths:   31000,
			DurationOneYear:     57000,
		}},
	}
}
