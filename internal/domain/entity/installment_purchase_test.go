// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/valueobject"
)

func TestInstallmentPurchasePayNext(t *testing.T) {
	purchase := NewInstallmentPurchase(
		uuid.New(),
		"Notebook",
		"electronics",
		valueobject.NewMoneyFromFloat(3000.00),
		3,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	)

	t.Run("starts active with zero paid", func(t *testing.T) {
		if !purchase.Active || purchase.PaidCount != 0 {
			t.Errorf("expected active purchase with 0 paid, got active=%v paid=%d", purchase.Active, purchase.PaidCount)
		}
		if purchase.InstallmentAmount.Cents() != 100000 {
			t.Errorf("expected installment of 1000.00, got %s", purchase.InstallmentAmount)
		}
	})

	t.Run("stays active until the last payment", func(t *testing.T) {
		if !purchase.PayNext() || !purchase.PayNext() {
			t.Fatal("expected first two payments to succeed")
		}
		if !purchase.Active {
			t.Error("expected purchase to remain active before the last installment")
		}
	})

	t.Run("deactivates exactly on the last payment", func(t *testing.T) {
		if !purchase.PayNext() {
			t.Fatal("expected last payment to succeed")
		}
		if purchase.Active {
			t.Error("expected purchase to be inactive after the last installment")
		}
		if purchase.Remaining() != 0 {
			t.Errorf("expected 0 remaining, got %d", purchase.Remaining())
		}
	})

	t.Run("paying beyond the count is a no-op", func(t *testing.T) {
		before := *purchase
		if purchase.PayNext() {
			t.Error("expected payment beyond the installment count to be a no-op")
		}
		if purchase.PaidCount != before.PaidCount || purchase.Active != before.Active {
			t.Error("expected state to be unchanged after the no-op")
		}
	})
}

func TestInstallmentPurchaseSetTotalAmount(t *testing.T) {
	purchase := NewInstallmentPurchase(
		uuid.New(),
		"Sofa",
		"furniture",
		valueobject.NewMoneyFromFloat(1000.00),
		3,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	)

	if purchase.InstallmentAmount.Cents() != 33333 {
		t.Errorf("expected 333.33 per installment, got %s", purchase.InstallmentAmount)
	}

	purchase.SetTotalAmount(valueobject.NewMoneyFromFloat(1500.00))
	if purchase.InstallmentAmount.Cents() != 50000 {
		t.Errorf("expected recomputed installment of 500.00, got %s", purchase.InstallmentAmount)
	}
}
