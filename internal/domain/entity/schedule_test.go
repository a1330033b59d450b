// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{"regular month step", date(2025, time.March, 15), 1, date(2025, time.April, 15)},
		{"jan 31 clamps to feb 28", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"jan 31 clamps to feb 29 on leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp does not stick: jan 31 plus two months is mar 31", date(2025, time.January, 31), 2, date(2025, time.March, 31)},
		{"jan 31 plus three months clamps to apr 30", date(2025, time.January, 31), 3, date(2025, time.April, 30)},
		{"year boundary", date(2025, time.November, 30), 3, date(2026, time.February, 28)},
		{"twelve months is one year", date(2025, time.June, 10), 12, date(2026, time.June, 10)},
		{"negative step", date(2025, time.March, 31), -1, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.start, tt.months)
			if !got.Equal(tt.expected) {
				t.Errorf("AddMonths(%v, %d) = %v, expected %v", tt.start, tt.months, got, tt.expected)
			}
		})
	}
}

func TestScheduleOccurrences(t *testing.T) {
	t.Run("monthly from jan 31 clamps without skipping months", func(t *testing.T) {
		s := NewSchedule(date(2025, time.January, 31), nil, FrequencyMonthly, 4)
		got := s.Occurrences()

		expected := []time.Time{
			date(2025, time.January, 31),
			date(2025, time.February, 28),
			date(2025, time.March, 31),
			date(2025, time.April, 30),
		}
		if len(got) != len(expected) {
			t.Fatalf("expected %d occurrences, got %d", len(expected), len(got))
		}
		for i := range expected {
			if !got[i].Equal(expected[i]) {
				t.Errorf("occurrence %d: expected %v, got %v", i, expected[i], got[i])
			}
		}
	})

	t.Run("never exceeds horizon cap", func(t *testing.T) {
		s := NewSchedule(date(2025, time.January, 1), nil, FrequencyDaily, 0)
		if got := len(s.Occurrences()); got != DefaultHorizonCap {
			t.Errorf("expected %d occurrences, got %d", DefaultHorizonCap, got)
		}
	})

	t.Run("end date stops enumeration before cap", func(t *testing.T) {
		end := date(2025, time.March, 15)
		s := NewSchedule(date(2025, time.January, 1), &end, FrequencyMonthly, 12)
		got := s.Occurrences()
		if len(got) != 3 {
			t.Fatalf("expected 3 occurrences, got %d", len(got))
		}
		if !got[2].Equal(date(2025, time.March, 1)) {
			t.Errorf("expected last occurrence 2025-03-01, got %v", got[2])
		}
	})

	t.Run("occurrences are non-decreasing", func(t *testing.T) {
		for _, freq := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly} {
			s := NewSchedule(date(2024, time.December, 31), nil, freq, 12)
			dates := s.Occurrences()
			for i := 1; i < len(dates); i++ {
				if dates[i].Before(dates[i-1]) {
					t.Errorf("%s: occurrence %d (%v) precedes %v", freq, i, dates[i], dates[i-1])
				}
			}
		}
	})

	t.Run("weekly advances by seven days", func(t *testing.T) {
		s := NewSchedule(date(2025, time.January, 1), nil, FrequencyWeekly, 3)
		got := s.Occurrences()
		if !got[1].Equal(date(2025, time.January, 8)) || !got[2].Equal(date(2025, time.January, 15)) {
			t.Errorf("unexpected weekly occurrences: %v", got)
		}
	})

	t.Run("yearly advances by calendar year", func(t *testing.T) {
		s := NewSchedule(date(2024, time.February, 29), nil, FrequencyYearly, 2)
		got := s.Occurrences()
		if !got[1].Equal(date(2025, time.February, 28)) {
			t.Errorf("expected leap day to clamp to feb 28, got %v", got[1])
		}
	})
}

func TestScheduleValidate(t *testing.T) {
	t.Run("end before start is invalid", func(t *testing.T) {
		end := date(2024, time.December, 31)
		s := NewSchedule(date(2025, time.January, 1), &end, FrequencyMonthly, 12)
		if s.Validate() {
			t.Error("expected schedule with end before start to be invalid")
		}
	})

	t.Run("unknown frequency is invalid", func(t *testing.T) {
		s := NewSchedule(date(2025, time.January, 1), nil, Frequency("fortnightly"), 12)
		if s.Validate() {
			t.Error("expected unknown frequency to be invalid")
		}
	})

	t.Run("end equal to start is valid", func(t *testing.T) {
		start := date(2025, time.January, 1)
		s := NewSchedule(start, &start, FrequencyMonthly, 12)
		if !s.Validate() {
			t.Error("expected schedule with end equal to start to be valid")
		}
	})
}
