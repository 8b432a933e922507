package pricing

import (
	"fmt"
	"time"
)

// quoteValidityDays is the fixed validity window stamped on every quote.
const quoteValidityDays = 30

// BuildQuote assembles customer info and computed line items into an
// immutable quote. The returned quote is an independent snapshot: later
// mutation of the caller's slice does not affect it.
func BuildQuote(customer CustomerInfo, mode string, start, end time.Time, pkg *PackageOption, calcs []PriceCalculation) Quote {
	now := time.Now()

	var subtotal, installation float64
	items := make([]PriceCalculation, len(calcs))
	for i, c := range calcs {
		items[i] = c
		subtotal += c.Subtotal
		installation += c.InstallationPrice
	}

	quote := Quote{
		ID:                fmt.Sprintf("Q-%d", now.UnixMilli()),
		Customer:          customer,
		Mode:              mode,
		StartDate:         start,
		EndDate:           end,
		Items:             items,
		Subtotal:          subtotal,
		TotalInstallation: installation,
		GrandTotal:        subtotal + installation,
		Currency:          Currency,
		CreatedAt:         now,
		ValidUntil:        now.AddDate(0, 0, quoteValidityDays),
	}

	if mode == ModePackage && pkg != nil {
		quote.EndDate = start.AddDate(0, 0, pkg.Days)
		quote.PackageLabel = pkg.Label
	}

	return quote
}
