// Package recurrence contains recurring obligation use cases.
package recurrence

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

func TestMaterializeEntries(t *testing.T) {
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	obligation := entity.NewRecurringObligation(
		uuid.New(),
		"Rent",
		"housing",
		valueobject.NewMoneyFromFloat(1500.00),
		entity.ObligationKindExpense,
		entity.NewSchedule(start, nil, entity.FrequencyMonthly, 3),
	)

	entries := MaterializeEntries(obligation)

	t.Run("one entry per occurrence", func(t *testing.T) {
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
	})

	t.Run("entries carry the source back-reference", func(t *testing.T) {
		for i, entry := range entries {
			if entry.SourceType != entity.SourceTypeRecurring {
				t.Errorf("entry %d: expected source type recurring, got %s", i, entry.SourceType)
			}
			if entry.SourceID == nil || *entry.SourceID != obligation.ID {
				t.Errorf("entry %d: expected source ID %s", i, obligation.ID)
			}
		}
	})

	t.Run("descriptions are annotated with the frequency label", func(t *testing.T) {
		if entries[0].Description != "Rent (Monthly)" {
			t.Errorf(`expected "Rent (Monthly)", got %q`, entries[0].Description)
		}
	})

	t.Run("expense obligations produce fixed expense entries", func(t *testing.T) {
		if entries[0].Type != entity.EntryTypeFixedExpense {
			t.Errorf("expected fixed_expense, got %s", entries[0].Type)
		}
	})

	t.Run("dates clamp at short months", func(t *testing.T) {
		expected := []time.Time{
			time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		}
		for i, entry := range entries {
			if !entry.Date.Equal(expected[i]) {
				t.Errorf("entry %d: expected date %v, got %v", i, expected[i], entry.Date)
			}
		}
	})

	t.Run("amount is carried to every entry", func(t *testing.T) {
		for i, entry := range entries {
			if entry.Amount.Cents() != 150000 {
				t.Errorf("entry %d: expected 1500.00, got %s", i, entry.Amount)
			}
		}
	})
}

func TestMaterializeEntriesIncomeKind(t *testing.T) {
	obligation := entity.NewRecurringObligation(
		uuid.New(),
		"Salary",
		"work",
		valueobject.NewMoneyFromFloat(4200.00),
		entity.ObligationKindIncome,
		entity.NewSchedule(time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), nil, entity.FrequencyMonthly, 2),
	)

	entries := MaterializeEntries(obligation)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Type != entity.EntryTypeIncome {
		t.Errorf("expected income entry, got %s", entries[0].Type)
	}
}
