// Package valueobject defines immutable value types shared by the domain layer.
package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyConstruction(t *testing.T) {
	t.Run("from decimal rounds half away from zero", func(t *testing.T) {
		m := NewMoneyFromDecimal(decimal.RequireFromString("10.005"))
		if m.Cents() != 1001 {
			t.Errorf("expected 1001 cents, got %d", m.Cents())
		}
	})

	t.Run("from float", func(t *testing.T) {
		m := NewMoneyFromFloat(150.50)
		if m.Cents() != 15050 {
			t.Errorf("expected 15050 cents, got %d", m.Cents())
		}
	})

	t.Run("zero value is zero amount", func(t *testing.T) {
		var m Money
		if !m.IsZero() {
			t.Error("expected zero value to be zero amount")
		}
	})
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyFromCents(1000)
	b := NewMoneyFromCents(250)

	if got := a.Add(b).Cents(); got != 1250 {
		t.Errorf("Add: expected 1250, got %d", got)
	}
	if got := a.Sub(b).Cents(); got != 750 {
		t.Errorf("Sub: expected 750, got %d", got)
	}
	if got := b.Neg().Cents(); got != -250 {
		t.Errorf("Neg: expected -250, got %d", got)
	}
	if got := b.Neg().Abs().Cents(); got != 250 {
		t.Errorf("Abs: expected 250, got %d", got)
	}
	if got := b.MulInt(4).Cents(); got != 1000 {
		t.Errorf("MulInt: expected 1000, got %d", got)
	}
}

func TestMoneyDiv(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		m := NewMoneyFromFloat(100.00)
		if got := m.Div(4).Cents(); got != 2500 {
			t.Errorf("expected 2500, got %d", got)
		}
	})

	t.Run("uneven split rounds to nearest cent", func(t *testing.T) {
		m := NewMoneyFromFloat(1000.00)
		part := m.Div(3)
		if part.Cents() != 33333 {
			t.Errorf("expected 33333, got %d", part.Cents())
		}

		// Drift stays within one cent for this split.
		diff := m.Sub(part.MulInt(3)).Abs()
		if diff.Cents() > 1 {
			t.Errorf("expected drift within one cent, got %s", diff)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		m := NewMoneyFromCents(-1000)
		if got := m.Div(3).Cents(); got != -333 {
			t.Errorf("expected -333, got %d", got)
		}
	})
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyFromCents(100)
	b := NewMoneyFromCents(200)

	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Error("Cmp ordering is wrong")
	}
	if !a.IsPositive() || a.IsNegative() {
		t.Error("expected positive amount")
	}
	if !a.Neg().IsNegative() {
		t.Error("expected negative amount")
	}
}

func TestMoneyJSON(t *testing.T) {
	t.Run("marshals as decimal string", func(t *testing.T) {
		data, err := json.Marshal(NewMoneyFromFloat(150.5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `"150.50"` {
			t.Errorf(`expected "150.50", got %s`, data)
		}
	})

	t.Run("unmarshals string and number", func(t *testing.T) {
		var m Money
		if err := json.Unmarshal([]byte(`"99.99"`), &m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Cents() != 9999 {
			t.Errorf("expected 9999, got %d", m.Cents())
		}

		if err := json.Unmarshal([]byte(`42.5`), &m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Cents() != 4250 {
			t.Errorf("expected 4250, got %d", m.Cents())
		}
	})
}
