// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// Frequency represents how often a recurring obligation repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether the frequency is one of the supported values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Label returns the human-readable label used to annotate materialized
// ledger entry descriptions.
func (f Frequency) Label() string {
	switch f {
	case FrequencyDaily:
		return "Daily"
	case FrequencyWeekly:
		return "Weekly"
	case FrequencyMonthly:
		return "Monthly"
	case FrequencyYearly:
		return "Yearly"
	default:
		return string(f)
	}
}

// DefaultHorizonCap is the maximum number of occurrences generated for a
// schedule with no explicit cap. It bounds materialization of open-ended
// recurrences.
const DefaultHorizonCap = 12

// Schedule is an abstract recurrence rule: a start date, an optional end
// date, a frequency and a horizon cap. Schedules are immutable; editing a
// recurring obligation replaces its schedule wholesale so that entries
// already materialized from the old rule keep their meaning.
type Schedule struct {
	StartDate  time.Time
	EndDate    *time.Time
	Frequency  Frequency
	HorizonCap int
}

// NewSchedule creates a Schedule. A non-positive horizonCap falls back to
// DefaultHorizonCap. The end date, if present, must not precede the start
// date; callers validate that via Validate before materializing.
func NewSchedule(startDate time.Time, endDate *time.Time, frequency Frequency, horizonCap int) Schedule {
	if horizonCap <= 0 {
		horizonCap = DefaultHorizonCap
	}
	return Schedule{
		StartDate:  startDate,
		EndDate:    endDate,
		Frequency:  frequency,
		HorizonCap: horizonCap,
	}
}

// Validate checks the schedule invariants: a supported frequency and an
// end date that does not precede the start date.
func (s Schedule) Validate() bool {
	if !s.Frequency.IsValid() {
		return false
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return false
	}
	return true
}

// Occurrences enumerates the concrete dates the schedule produces, in
// ascending order. Enumeration stops when the end date is exceeded or the
// horizon cap is reached, whichever comes first.
//
// Monthly and yearly stepping anchors on the start date's day-of-month:
// when a target month is too short (e.g. the 31st in February), the date
// clamps to the last day of that month instead of spilling over or being
// skipped. Later occurrences return to the anchor day when it exists
// again, so Jan 31 yields Feb 28 (or 29), Mar 31, Apr 30, and so on.
func (s Schedule) Occurrences() []time.Time {
	cap := s.HorizonCap
	if cap <= 0 {
		cap = DefaultHorizonCap
	}

	dates := make([]time.Time, 0, cap)
	for i := 0; i < cap; i++ {
		var next time.Time
		switch s.Frequency {
		case FrequencyDaily:
			next = s.StartDate.AddDate(0, 0, i)
		case FrequencyWeekly:
			next = s.StartDate.AddDate(0, 0, 7*i)
		case FrequencyMonthly:
			next = AddMonths(s.StartDate, i)
		case FrequencyYearly:
			next = AddMonths(s.StartDate, 12*i)
		default:
			return dates
		}

		if s.EndDate != nil && next.After(*s.EndDate) {
			break
		}
		dates = append(dates, next)
	}
	return dates
}

// AddMonths advances t by the given number of calendar months, clamping
// the day-of-month to the last valid day of the target month. Unlike
// time.AddDate it never normalizes into the following month: Jan 31 plus
// one month is Feb 28 (or 29), not Mar 3.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	firstOfTarget := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndOfMonth returns the last instant's date (day granularity) of t's
// month, used when deciding whether an asset acquired during a month
// counts toward that month's sample.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), daysInMonth(t.Year(), t.Month()), 23, 59, 59, 0, t.Location())
}
