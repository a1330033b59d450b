package simulation

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

func TestProjectGrowthUseCase(t *testing.T) {
	uc := NewProjectGrowthUseCase()
	ctx := context.Background()

	t.Run("one year at twelve percent", func(t *testing.T) {
		out, err := uc.Execute(ctx, ProjectGrowthInput{
			Initial:             valueobject.NewMoneyFromCents(100_000),
			MonthlyContribution: valueobject.NewMoneyFromCents(10_000),
			AnnualRatePercent:   12,
			Years:               1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Samples) != 1 {
			t.Fatalf("expected one yearly sample, got %d", len(out.Samples))
		}
		if out.Samples[0].Year != 1 {
			t.Errorf("expected year 1, got %d", out.Samples[0].Year)
		}

		// 1000 initial + 100 a month for 12 months.
		if out.TotalContributed.Cents() != 220_000 {
			t.Errorf("expected total contributed 2200.00, got %s", out.TotalContributed)
		}
		if out.FinalAmount.Cmp(out.TotalContributed) <= 0 {
			t.Errorf("expected positive interest, final %s vs contributed %s",
				out.FinalAmount, out.TotalContributed)
		}
		if out.TotalInterest.Cents() != out.FinalAmount.Cents()-out.TotalContributed.Cents() {
			t.Errorf("interest does not reconcile: %s", out.TotalInterest)
		}
	})

	t.Run("zero rate accumulates contributions only", func(t *testing.T) {
		out, err := uc.Execute(ctx, ProjectGrowthInput{
			Initial:             valueobject.NewMoneyFromCents(50_000),
			MonthlyContribution: valueobject.NewMoneyFromCents(10_000),
			AnnualRatePercent:   0,
			Years:               2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.FinalAmount.Cents() != 50_000+24*10_000 {
			t.Errorf("expected 2900.00, got %s", out.FinalAmount)
		}
		if !out.TotalInterest.IsZero() {
			t.Errorf("expected zero interest, got %s", out.TotalInterest)
		}
	})

	t.Run("one sample per year", func(t *testing.T) {
		out, err := uc.Execute(ctx, ProjectGrowthInput{
			Initial:             valueobject.NewMoneyFromCents(100_000),
			MonthlyContribution: valueobject.NewMoneyFromCents(5_000),
			AnnualRatePercent:   8,
			Years:               10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Samples) != 10 {
			t.Fatalf("expected 10 samples, got %d", len(out.Samples))
		}
		for i := 1; i < len(out.Samples); i++ {
			if out.Samples[i].Balance.Cmp(out.Samples[i-1].Balance) <= 0 {
				t.Errorf("expected growing balances at year %d", out.Samples[i].Year)
			}
		}
		last := out.Samples[len(out.Samples)-1]
		if last.Balance.Cents() != out.FinalAmount.Cents() {
			t.Errorf("expected final sample to match final amount")
		}
	})

	t.Run("rejects non-positive years", func(t *testing.T) {
		_, err := uc.Execute(ctx, ProjectGrowthInput{
			Initial:           valueobject.NewMoneyFromCents(100_000),
			AnnualRatePercent: 10,
			Years:             0,
		})
		if !errors.Is(err, domainerror.ErrInvalidTerm) {
			t.Errorf("expected term error, got %v", err)
		}
	})

	t.Run("rejects negative inputs", func(t *testing.T) {
		_, err := uc.Execute(ctx, ProjectGrowthInput{
			Initial:           valueobject.NewMoneyFromCents(-1),
			AnnualRatePercent: 10,
			Years:             1,
		})
		if !errors.Is(err, domainerror.ErrInvalidSimulationInput) {
			t.Errorf("expected simulation input error, got %v", err)
		}

		_, err = uc.Execute(ctx, ProjectGrowthInput{
			Initial:           valueobject.NewMoneyFromCents(100),
			AnnualRatePercent: -1,
			Years:             1,
		})
		if !errors.Is(err, domainerror.ErrInvalidSimulationInput) {
			t.Errorf("expected simulation input error, got %v", err)
		}
	})
}

func TestRequiredPaymentUseCase(t *testing.T) {
	uc := NewRequiredPaymentUseCase()
	ctx := context.Background()

	t.Run("computes a positive payment", func(t *testing.T) {
		out, err := uc.Execute(ctx, RequiredPaymentInput{
			TargetAmount:      valueobject.NewMoneyFromCents(1_000_000),
			AnnualRatePercent: 12,
			Years:             5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.MonthlyPayment.IsPositive() {
			t.Errorf("expected positive payment, got %s", out.MonthlyPayment)
		}
		if out.Months != 60 {
			t.Errorf("expected 60 months, got %d", out.Months)
		}
		// With interest the payment is below the straight-line split.
		if out.MonthlyPayment.Cents() >= 1_000_000/60 {
			t.Errorf("expected payment below straight-line split, got %s", out.MonthlyPayment)
		}
	})

	t.Run("rejects non-positive target", func(t *testing.T) {
		_, err := uc.Execute(ctx, RequiredPaymentInput{
			TargetAmount:      valueobject.NewMoneyFromCents(0),
			AnnualRatePercent: 12,
			Years:             5,
		})
		if !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
			t.Errorf("expected target amount error, got %v", err)
		}
	})

	t.Run("rejects zero rate", func(t *testing.T) {
		_, err := uc.Execute(ctx, RequiredPaymentInput{
			TargetAmount:      valueobject.NewMoneyFromCents(1_000_000),
			AnnualRatePercent: 0,
			Years:             5,
		})
		if !errors.Is(err, domainerror.ErrInvalidRate) {
			t.Errorf("expected rate error, got %v", err)
		}
	})

	t.Run("rejects zero term", func(t *testing.T) {
		_, err := uc.Execute(ctx, RequiredPaymentInput{
			TargetAmount:      valueobject.NewMoneyFromCents(1_000_000),
			AnnualRatePercent: 12,
			Years:             0,
		})
		if !errors.Is(err, domainerror.ErrInvalidTerm) {
			t.Errorf("expected term error, got %v", err)
		}
	})
}
