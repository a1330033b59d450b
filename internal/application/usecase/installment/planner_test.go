// Package installment contains installment purchase use cases.
package installment

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

func TestPlan(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("three installments of an uneven total", func(t *testing.T) {
		result := Plan(valueobject.NewMoneyFromFloat(1000.00), 3, start)

		expected := []time.Time{
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		}
		if len(result.Dates) != 3 {
			t.Fatalf("expected 3 dates, got %d", len(result.Dates))
		}
		for i := range expected {
			if !result.Dates[i].Equal(expected[i]) {
				t.Errorf("date %d: expected %v, got %v", i, expected[i], result.Dates[i])
			}
		}

		// 1000/3 rounds to 333.33; the sum stays within one cent.
		sum := result.InstallmentAmount.MulInt(3)
		diff := valueobject.NewMoneyFromFloat(1000.00).Sub(sum).Abs()
		if diff.Cents() > 1 {
			t.Errorf("expected sum within one cent of total, drifted by %s", diff)
		}
	})

	t.Run("installment dates clamp at short months", func(t *testing.T) {
		result := Plan(valueobject.NewMoneyFromFloat(300.00), 3, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))

		if !result.Dates[1].Equal(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected second installment on feb 28, got %v", result.Dates[1])
		}
		if !result.Dates[2].Equal(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected third installment on mar 31, got %v", result.Dates[2])
		}
	})

	t.Run("single installment", func(t *testing.T) {
		result := Plan(valueobject.NewMoneyFromFloat(99.90), 1, start)
		if result.InstallmentAmount.Cents() != 9990 {
			t.Errorf("expected 99.90, got %s", result.InstallmentAmount)
		}
	})
}

func TestBuildEntries(t *testing.T) {
	purchase := entity.NewInstallmentPurchase(
		uuid.New(),
		"Notebook",
		"electronics",
		valueobject.NewMoneyFromFloat(3600.00),
		12,
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	)

	entries := BuildEntries(purchase)

	if len(entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(entries))
	}

	t.Run("entries are numbered and sourced", func(t *testing.T) {
		if entries[0].Description != "Notebook (1/12)" {
			t.Errorf(`expected "Notebook (1/12)", got %q`, entries[0].Description)
		}
		if entries[11].Description != "Notebook (12/12)" {
			t.Errorf(`expected "Notebook (12/12)", got %q`, entries[11].Description)
		}
		for i, entry := range entries {
			if entry.SourceType != entity.SourceTypeInstallment {
				t.Errorf("entry %d: expected installment source, got %s", i, entry.SourceType)
			}
			if entry.SourceID == nil || *entry.SourceID != purchase.ID {
				t.Errorf("entry %d: expected source ID %s", i, purchase.ID)
			}
			if entry.Type != entity.EntryTypeDebt {
				t.Errorf("entry %d: expected debt entry, got %s", i, entry.Type)
			}
		}
	})

	t.Run("each entry is one month after the previous", func(t *testing.T) {
		for i := 1; i < len(entries); i++ {
			expected := entity.AddMonths(purchase.StartDate, i)
			if !entries[i].Date.Equal(expected) {
				t.Errorf("entry %d: expected %v, got %v", i, expected, entries[i].Date)
			}
		}
	})
}
