package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// Contract violations. Configuration misses never produce errors; these do.
var (
	ErrMissingEndDate = errors.New("daily mode requires an end date")
	ErrMissingPackage = errors.New("package mode requires a selected package")
	ErrUnknownMode    = errors.New("unknown pricing mode")
)

// totalDays counts rental days inclusive of both endpoints, so a window
// where start == end is one day.
func totalDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// CalculateDaily prices one billboard at the per-day rate over [start, end].
func (s *Service) CalculateDaily(ctx context.Context, asset BillboardAsset, customerType string, start, end time.Time, includeInstallation bool) (PriceCalculation, error) {
	if end.IsZero() {
		return PriceCalculation{}, ErrMissingEndDate
	}
	if end.Before(start) {
		return PriceCalculation{}, fmt.Errorf("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	dailyPrice := s.Resolve(ctx, asset.Size, asset.Level, customerType, DurationOneDay)
	days := totalDays(start, end)
	subtotal := dailyPrice * float64(days)

	var installation float64
	if includeInstallation {
		installation = InstallationFee(asset.Size, asset.Municipality)
	}

	return PriceCalculation{
		Asset:             asset,
		DailyPrice:        dailyPrice,
		TotalDays:         days,
		Subtotal:          subtotal,
		InstallationPrice: installation,
		Total:             subtotal + installation,
	}, nil
}

// CalculatePackage prices one billboard at a fixed-duration package rate.
// The displayed daily price is the rounded per-day equivalent.
func (s *Service) CalculatePackage(ctx context.Context, asset BillboardAsset, customerType string, pkg PackageOption, includeInstallation bool) (PriceCalculation, error) {
	if pkg.Key == "" || pkg.Days <= 0 {
		return PriceCalculation{}, ErrMissingPackage
	}

	packagePrice := s.Resolve(ctx, asset.Size, asset.Level, customerType, pkg.Key)
	dailyPrice := math.Round(packagePrice / float64(pkg.Days))

	var installation float64
	if includeInstallation {
		installation = InstallationFee(asset.Size, asset.Municipality)
	}

	return PriceCalculation{
		Asset:             asset,
		DailyPrice:        dailyPrice,
		TotalDays:         pkg.Days,
		Subtotal:          packagePrice,
		InstallationPrice: installation,
		Total:             packagePrice + installation,
	}, nil
}

// CalculateMany prices every asset in input order. Order is significant:
// downstream consumers label results "line 1, line 2, ...". Any contract
// violation fails the whole batch; there are no partial results.
func (s *Service) CalculateMany(ctx context.Context, assets []BillboardAsset, customerType, mode string, start, end time.Time, pkg *PackageOption, includeInstallation bool) ([]PriceCalculation, error) {
	calcs := make([]PriceCalculation, 0, len(assets))
	for i, asset := range assets {
		var (
			calc PriceCalculation
			err  error
		)
		switch mode {
		case ModeDaily:
			calc, err = s.CalculateDaily(ctx, asset, customerType, start, end, includeInstallation)
		case ModePackage:
			if pkg == nil {
				return nil, ErrMissingPackage
			}
			calc, err = s.CalculatePackage(ctx, asset, customerType, *pkg, includeInstallation)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
		}
		if err != nil {
			return nil, fmt.Errorf("asset %d (%s): %w", i+1, asset.Name, err)
		}
		calcs = append(calcs, calc)
	}
	return calcs, nil
}

// Stats derives campaign statistics from one batch of calculations.
// TotalDays is taken from the first item rather than summed: every item
// in a batch shares the same rental window.
func Stats(calcs []PriceCalculation) CampaignStats {
	stats := CampaignStats{
		TotalBillboards: len(calcs),
		BySize:          make(map[string]int),
		ByMunicipality:  make(map[string]int),
		ByLevel:         make(map[string]int),
	}
	if len(calcs) == 0 {
		return stats
	}

	stats.TotalDays = calcs[0].TotalDays

	var dailySum float64
	for _, c := range calcs {
		dailySum += c.DailyPrice
		stats.BySize[c.Asset.Size]++
		stats.ByMunicipality[c.Asset.Municipality]++
		stats.ByLevel[c.Asset.Level]++
	}
	stats.AverageDailyPrice = math.Round(dailySum / float64(len(calcs)))

	return stats
}
