// Package finance implements the closed-form compound-interest formulas
// shared by the growth simulator and the patrimony reconstruction.
package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

func TestFutureValue(t *testing.T) {
	t.Run("zero rate degenerates to linear accumulation", func(t *testing.T) {
		fv := FutureValue(decimal.NewFromInt(1000), decimal.NewFromInt(100), 0, 12)
		if !fv.Equal(decimal.NewFromInt(2200)) {
			t.Errorf("expected 2200, got %s", fv)
		}
	})

	t.Run("zero periods returns the principal", func(t *testing.T) {
		fv := FutureValue(decimal.NewFromInt(500), decimal.NewFromInt(100), 0.01, 0)
		if !fv.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected 500, got %s", fv)
		}
	})

	t.Run("positive rate compounds the principal", func(t *testing.T) {
		fv := FutureValue(decimal.NewFromInt(1000), decimal.Zero, 0.01, 12)
		expected := 1000 * math.Pow(1.01, 12)
		if diff := math.Abs(fv.InexactFloat64() - expected); diff > 1e-6 {
			t.Errorf("expected %f, got %s", expected, fv)
		}
	})
}

func TestRequiredPayment(t *testing.T) {
	t.Run("rejects zero rate", func(t *testing.T) {
		_, err := RequiredPayment(decimal.NewFromInt(12000), 0, 12)
		if err == nil {
			t.Fatal("expected error for zero rate")
		}
		if !errors.Is(err, domainerror.ErrInvalidRate) {
			t.Errorf("expected ErrInvalidRate, got %v", err)
		}
	})

	t.Run("rejects zero term", func(t *testing.T) {
		_, err := RequiredPayment(decimal.NewFromInt(12000), 0.01, 0)
		if err == nil {
			t.Fatal("expected error for zero term")
		}
		if !errors.Is(err, domainerror.ErrInvalidTerm) {
			t.Errorf("expected ErrInvalidTerm, got %v", err)
		}
	})

	t.Run("round trips through future value", func(t *testing.T) {
		target := decimal.NewFromInt(12000)
		pmt, err := RequiredPayment(target, 0.01, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		fv := FutureValue(decimal.Zero, pmt, 0.01, 12)
		if diff := math.Abs(fv.InexactFloat64() - 12000); diff > 1e-6 {
			t.Errorf("round trip drifted by %f: %s", diff, fv)
		}
	})
}

func TestPresentValueDiscount(t *testing.T) {
	t.Run("zero periods back returns the value unchanged", func(t *testing.T) {
		v := decimal.NewFromInt(5000)
		if got := PresentValueDiscount(v, 0.01, 0); !got.Equal(v) {
			t.Errorf("expected %s, got %s", v, got)
		}
	})

	t.Run("zero rate returns the value unchanged", func(t *testing.T) {
		v := decimal.NewFromInt(5000)
		if got := PresentValueDiscount(v, 0, 8); !got.Equal(v) {
			t.Errorf("expected %s, got %s", v, got)
		}
	})

	t.Run("discounting inverts compounding", func(t *testing.T) {
		pv := PresentValueDiscount(decimal.NewFromFloat(1000*math.Pow(1.01, 6)), 0.01, 6)
		if diff := math.Abs(pv.InexactFloat64() - 1000); diff > 1e-6 {
			t.Errorf("expected 1000, got %s", pv)
		}
	})
}

func TestMonthlyRate(t *testing.T) {
	if got := MonthlyRate(12); got != 0.01 {
		t.Errorf("expected 0.01, got %f", got)
	}
	if got := MonthlyRate(0); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}
