// Package patrimony contains patrimony asset and net-worth history use cases.
package patrimony

import (
	"time"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/finance"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// Granularity selects the sampling step of the reconstructed series.
type Granularity string

const (
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
)

// IsValid reports whether the granularity is one of the supported values.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityMonthly, GranularityQuarterly, GranularityYearly:
		return true
	}
	return false
}

// stepMonths is the distance between consecutive sample points.
func (g Granularity) stepMonths() int {
	switch g {
	case GranularityQuarterly:
		return 3
	case GranularityYearly:
		return 12
	default:
		return 1
	}
}

// lookbackMonths is how far back the series reaches. Yearly series look
// back two years so they always hold more than one point.
func (g Granularity) lookbackMonths() int {
	if g == GranularityYearly {
		return 24
	}
	return 12
}

// reconstructSeries rebuilds a net-worth series from the current state.
//
// Historical investment values are not stored, only the current balance
// and the dated contribution/withdrawal deltas applied to it. The value
// at a past point is therefore estimated by removing every event that
// happened after that point and undoing the assumed compounding since.
// The aggregate balance is discounted as if it were one instrument at
// the simple mean of the investments' rates; per-investment rates and
// histories are deliberately not tracked separately. Changing that
// assumption changes the shape of every historical chart.
//
// Assets enter the series at face value from their acquisition month
// onward and are never discounted. A negative adjusted balance means the
// event log is inconsistent with the current value; it is clamped to
// zero so the chart stays usable.
func reconstructSeries(
	now time.Time,
	investments []*entity.Investment,
	events []*entity.InvestmentEvent,
	assets []*entity.PatrimonyAsset,
	granularity Granularity,
) []entity.PatrimonyPoint {
	totalCurrent := valueobject.Money{}
	for _, inv := range investments {
		totalCurrent = totalCurrent.Add(inv.CurrentValue)
	}

	avgMonthlyRate := 0.0
	if len(investments) > 0 {
		sum := 0.0
		for _, inv := range investments {
			sum += inv.EstimatedAnnualRate
		}
		avgMonthlyRate = finance.MonthlyRate(sum / float64(len(investments)))
	}

	step := granularity.stepMonths()
	lookback := granularity.lookbackMonths()

	var series []entity.PatrimonyPoint
	for k := lookback; k >= 0; k -= step {
		sampleAt := entity.EndOfMonth(entity.AddMonths(now, -k))

		futureContributions := valueobject.Money{}
		futureWithdrawals := valueobject.Money{}
		for _, ev := range events {
			if !ev.OccurredAt.After(sampleAt) {
				continue
			}
			switch ev.Kind {
			case entity.EventKindContribution:
				futureContributions = futureContributions.Add(ev.Amount)
			case entity.EventKindWithdrawal:
				futureWithdrawals = futureWithdrawals.Add(ev.Amount)
			}
		}

		adjusted := totalCurrent.Sub(futureContributions).Add(futureWithdrawals)
		if adjusted.IsNegative() {
			adjusted = valueobject.Money{}
		}

		investmentsValue := valueobject.NewMoneyFromDecimal(
			finance.PresentValueDiscount(adjusted.Decimal(), avgMonthlyRate, k),
		)

		assetsValue := valueobject.Money{}
		for _, asset := range assets {
			if asset.AcquiredBy(sampleAt) {
				assetsValue = assetsValue.Add(asset.EstimatedValue)
			}
		}

		series = append(series, entity.PatrimonyPoint{
			Label:            sampleAt.Format("Jan 2006"),
			Date:             sampleAt,
			AssetsValue:      assetsValue,
			InvestmentsValue: investmentsValue,
			Total:            assetsValue.Add(investmentsValue),
		})
	}

	return series
}
