// Package recurrence contains recurring obligation use cases.
package recurrence

import (
	"fmt"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// MaterializeEntries turns a recurring obligation into one concrete
// ledger entry per schedule occurrence. Every entry carries the
// obligation as a weak back-reference (source_type "recurring" plus the
// obligation id) and a description annotated with the frequency label, so
// a row like "Rent (Monthly)" stays traceable after the fact.
//
// The function is pure: persisting the batch — atomically — is the
// caller's job.
func MaterializeEntries(obligation *entity.RecurringObligation) []*entity.LedgerEntry {
	dates := obligation.Schedule.Occurrences()
	entries := make([]*entity.LedgerEntry, 0, len(dates))

	entryType := entity.EntryTypeFixedExpense
	if obligation.Kind == entity.ObligationKindIncome {
		entryType = entity.EntryTypeIncome
	}

	description := fmt.Sprintf("%s (%s)", obligation.Description, obligation.Schedule.Frequency.Label())

	for _, date := range dates {
		entries = append(entries, entity.NewSourcedLedgerEntry(
			obligation.UserID,
			entryType,
			obligation.Category,
			obligation.Amount,
			date,
			description,
			entity.SourceTypeRecurring,
			obligation.ID,
		))
	}

	return entries
}
