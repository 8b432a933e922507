package pricing

import "time"

// Duration keys of a price row. oneDay is the per-day rental rate, the
// rest are fixed-duration package totals.
const (
	DurationOneDay      = "oneDay"
	DurationOneMonth    = "oneMonth"
	DurationTwoMonths   = "twoMonths"
	DurationThreeMonths = "threeMonths"
	DurationSixMonths   = "sixMonths"
	DurationOneYear     = "oneYear"
)

// DurationKeys is the canonical column order used by the bulk exchange.
var DurationKeys = []string{
	DurationOneMonth,
	DurationTwoMonths,
	DurationThreeMonths,
	DurationSixMonths,
	DurationOneYear,
	DurationOneDay,
}

// Customer categories. A billboard's price depends on who is renting it.
const (
	CustomerStandard  = "standard"
	CustomerMarketer  = "marketer"
	CustomerCorporate = "corporate"
	CustomerMunicipal = "municipal"
)

// Pricing modes of a quote.
const (
	ModeDaily   = "daily"
	ModePackage = "package"
)

// Currency is the tag stamped on every quote. Conversion is out of scope.
const Currency = "LYD"

// PriceRow is one entry of the tiered price list, keyed by
// (size, level, customer type). A duration key absent from Prices means
// the combination is not configured, which is distinct from a zero price.
type PriceRow struct {
	ID           *int64             `json:"id,omitempty"`
	Size         string             `json:"size"`
	Level        string             `json:"level"`
	CustomerType string             `json:"customerType"`
	Prices       map[string]float64 `json:"prices"`
}

// Price returns the value at the duration key, or 0 when unconfigured.
func (r PriceRow) Price(durationKey string) float64 {
	return r.Prices[durationKey]
}

// clone returns an independent copy of the row.
func (r PriceRow) clone() PriceRow {
	out := r
	if r.ID != nil {
		id := *r.ID
		out.ID = &id
	}
	out.Prices = make(map[string]float64, len(r.Prices))
	for k, v := range r.Prices {
		out.Prices[k] = v
	}
	return out
}

// BillboardAsset is a priceable billboard. Supplied by the caller and
// never mutated by the engine.
type BillboardAsset struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Size         string `json:"size"`
	Municipality string `json:"municipality"`
	Level        string `json:"level"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// PriceCalculation is the computed breakdown for a single billboard.
type PriceCalculation struct {
	Asset             BillboardAsset `json:"asset"`
	DailyPrice        float64        `json:"dailyPrice"`
	TotalDays         int            `json:"totalDays"`
	Subtotal          float64        `json:"subtotal"`
	InstallationPrice float64        `json:"installationPrice"`
	Total             float64        `json:"total"`
}

// CustomerInfo is the contact block of a quote.
type CustomerInfo struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company,omitempty"`
	CustomerType string `json:"customerType"`
}

// Quote is the final customer-facing proposal. Immutable once built.
type Quote struct {
	ID                string             `json:"id"`
	Customer          CustomerInfo       `json:"customer"`
	Mode              string             `json:"mode"`
	StartDate         time.Time          `json:"startDate"`
	EndDate           time.Time          `json:"endDate"`
	PackageLabel      string             `json:"packageLabel,omitempty"`
	Items             []PriceCalculation `json:"items"`
	Subtotal          float64            `json:"subtotal"`
	TotalInstallation float64            `json:"totalInstallation"`
	GrandTotal        float64            `json:"grandTotal"`
	Currency          string             `json:"currency"`
	CreatedAt         time.Time          `json:"createdAt"`
	ValidUntil        time.Time          `json:"validUntil"`
}

// CampaignStats summarizes one batch of calculations.
type CampaignStats struct {
	TotalBillboards   int            `json:"totalBillboards"`
	TotalDays         int            `json:"totalDays"`
	AverageDailyPrice float64        `json:"averageDailyPrice"`
	BySize            map[string]int `json:"bySize"`
	ByMunicipality    map[string]int `json:"byMunicipality"`
	ByLevel           map[string]int `json:"byLevel"`
}
