package patrimony

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

func TestGranularity(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, g := range []Granularity{GranularityMonthly, GranularityQuarterly, GranularityYearly} {
			if !g.IsValid() {
				t.Errorf("expected %s to be valid", g)
			}
		}
		if Granularity("weekly").IsValid() {
			t.Error("expected weekly to be invalid")
		}
	})

	t.Run("series lengths", func(t *testing.T) {
		now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
		cases := []struct {
			granularity Granularity
			points      int
		}{
			{GranularityMonthly, 13},
			{GranularityQuarterly, 5},
			{GranularityYearly, 3},
		}
		for _, tc := range cases {
			series := reconstructSeries(now, nil, nil, nil, tc.granularity)
			if len(series) != tc.points {
				t.Errorf("%s: expected %d points, got %d", tc.granularity, tc.points, len(series))
			}
		}
	})
}

func TestReconstructSeries(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	newInvestment := func(cents int64, rate float64) *entity.Investment {
		return entity.NewInvestment(userID, "Index fund", valueobject.NewMoneyFromCents(cents), rate)
	}

	t.Run("zero rate series is flat without events", func(t *testing.T) {
		inv := newInvestment(1_000_000, 0)
		series := reconstructSeries(now, []*entity.Investment{inv}, nil, nil, GranularityMonthly)

		for _, p := range series {
			if p.InvestmentsValue.Cents() != 1_000_000 {
				t.Errorf("%s: expected 10000.00, got %s", p.Label, p.InvestmentsValue)
			}
		}
	})

	t.Run("latest point reflects current balance", func(t *testing.T) {
		inv := newInvestment(1_000_000, 12)
		series := reconstructSeries(now, []*entity.Investment{inv}, nil, nil, GranularityMonthly)

		last := series[len(series)-1]
		if last.InvestmentsValue.Cents() != 1_000_000 {
			t.Errorf("expected current balance at latest point, got %s", last.InvestmentsValue)
		}
	})

	t.Run("past points are discounted at the average rate", func(t *testing.T) {
		inv := newInvestment(1_000_000, 12) // 1% a month
		series := reconstructSeries(now, []*entity.Investment{inv}, nil, nil, GranularityMonthly)

		first := series[0] // 12 months back
		want := 10000.0 / math.Pow(1.01, 12)
		got := first.InvestmentsValue.Decimal().InexactFloat64()
		if math.Abs(got-want) > 0.01 {
			t.Errorf("expected about %.2f, got %.2f", want, got)
		}
	})

	t.Run("events at or before a point leave it unchanged", func(t *testing.T) {
		inv := newInvestment(1_000_000, 0)

		// July's sample point is the end of the month; an event dated
		// exactly then is not "future" relative to it.
		julyEnd := entity.EndOfMonth(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))
		event := entity.NewInvestmentEvent(inv.ID, userID, entity.EventKindWithdrawal,
			valueobject.NewMoneyFromCents(100_000), julyEnd)

		series := reconstructSeries(now, []*entity.Investment{inv},
			[]*entity.InvestmentEvent{event}, nil, GranularityMonthly)

		julyPoint := series[len(series)-2]
		if !julyPoint.Date.Equal(julyEnd) {
			t.Fatalf("expected July point at %s, got %s", julyEnd, julyPoint.Date)
		}
		if julyPoint.InvestmentsValue.Cents() != 1_000_000 {
			t.Errorf("expected event at the point to be ignored, got %s", julyPoint.InvestmentsValue)
		}
	})

	t.Run("withdrawal after a point raises its reconstructed value", func(t *testing.T) {
		inv := newInvestment(1_000_000, 0)
		event := entity.NewInvestmentEvent(inv.ID, userID, entity.EventKindWithdrawal,
			valueobject.NewMoneyFromCents(100_000),
			time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))

		series := reconstructSeries(now, []*entity.Investment{inv},
			[]*entity.InvestmentEvent{event}, nil, GranularityMonthly)

		julyPoint := series[len(series)-2]
		if julyPoint.InvestmentsValue.Cents() != 1_100_000 {
			t.Errorf("expected withdrawal to be added back, got %s", julyPoint.InvestmentsValue)
		}

		// The latest point is after the withdrawal, so it is untouched.
		last := series[len(series)-1]
		if last.InvestmentsValue.Cents() != 1_000_000 {
			t.Errorf("expected latest point unchanged, got %s", last.InvestmentsValue)
		}
	})

	t.Run("contribution after a point is removed from it", func(t *testing.T) {
		inv := newInvestment(1_000_000, 0)
		event := entity.NewInvestmentEvent(inv.ID, userID, entity.EventKindContribution,
			valueobject.NewMoneyFromCents(400_000),
			time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))

		series := reconstructSeries(now, []*entity.Investment{inv},
			[]*entity.InvestmentEvent{event}, nil, GranularityMonthly)

		julyPoint := series[len(series)-2]
		if julyPoint.InvestmentsValue.Cents() != 600_000 {
			t.Errorf("expected contribution removed, got %s", julyPoint.InvestmentsValue)
		}
	})

	t.Run("negative adjusted balance clamps to zero", func(t *testing.T) {
		inv := newInvestment(1_000_000, 12)
		event := entity.NewInvestmentEvent(inv.ID, userID, entity.EventKindContribution,
			valueobject.NewMoneyFromCents(2_000_000),
			time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))

		series := reconstructSeries(now, []*entity.Investment{inv},
			[]*entity.InvestmentEvent{event}, nil, GranularityMonthly)

		julyPoint := series[len(series)-2]
		if !julyPoint.InvestmentsValue.IsZero() {
			t.Errorf("expected clamp to zero, got %s", julyPoint.InvestmentsValue)
		}
	})

	t.Run("average rate across investments", func(t *testing.T) {
		a := newInvestment(500_000, 6)
		b := newInvestment(500_000, 18)
		// Mean annual rate 12% means 1% a month.
		series := reconstructSeries(now, []*entity.Investment{a, b}, nil, nil, GranularityMonthly)

		first := series[0]
		want := 10000.0 / math.Pow(1.01, 12)
		got := first.InvestmentsValue.Decimal().InexactFloat64()
		if math.Abs(got-want) > 0.01 {
			t.Errorf("expected about %.2f, got %.2f", want, got)
		}
	})

	t.Run("assets gated by acquisition date", func(t *testing.T) {
		acquired := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
		asset := entity.NewPatrimonyAsset(userID, "Car", "vehicle",
			valueobject.NewMoneyFromCents(3_000_000), &acquired)

		series := reconstructSeries(now, nil, nil, []*entity.PatrimonyAsset{asset}, GranularityMonthly)

		for _, p := range series {
			wantCents := int64(0)
			if !p.Date.Before(acquired) {
				wantCents = 3_000_000
			}
			if p.AssetsValue.Cents() != wantCents {
				t.Errorf("%s: expected assets %d, got %s", p.Label, wantCents, p.AssetsValue)
			}
			if p.Total.Cents() != p.AssetsValue.Cents() {
				t.Errorf("%s: expected total to equal assets, got %s", p.Label, p.Total)
			}
		}
	})

	t.Run("asset without acquisition date falls back to creation", func(t *testing.T) {
		asset := entity.NewPatrimonyAsset(userID, "Desk", "equipment",
			valueobject.NewMoneyFromCents(50_000), nil)
		asset.CreatedAt = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

		series := reconstructSeries(now, nil, nil, []*entity.PatrimonyAsset{asset}, GranularityMonthly)
		for _, p := range series {
			if p.AssetsValue.Cents() != 50_000 {
				t.Errorf("%s: expected asset present, got %s", p.Label, p.AssetsValue)
			}
		}
	})

	t.Run("points are ordered oldest first", func(t *testing.T) {
		series := reconstructSeries(now, nil, nil, nil, GranularityQuarterly)
		for i := 1; i < len(series); i++ {
			if !series[i].Date.After(series[i-1].Date) {
				t.Errorf("expected strictly increasing dates at index %d", i)
			}
		}
	})
}
