// Package installment contains installment purchase use cases.
package installment

import (
	"fmt"
	"time"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// PlanResult is the outcome of splitting a purchase total into dated
// installments.
type PlanResult struct {
	InstallmentAmount valueobject.Money
	Dates             []time.Time
}

// Plan splits a total into count installments, one per calendar month
// starting at startDate, with the same end-of-month clamping used by
// schedule enumeration. The per-installment amount is total/count rounded
// to the cent; the remainder is not redistributed, so the sum of the
// installments may drift from the total by up to count/2 cents.
func Plan(total valueobject.Money, count int, startDate time.Time) PlanResult {
	dates := make([]time.Time, count)
	for i := 0; i < count; i++ {
		dates[i] = entity.AddMonths(startDate, i)
	}

	return PlanResult{
		InstallmentAmount: total.Div(int64(count)),
		Dates:             dates,
	}
}

// BuildEntries produces one debt ledger entry per installment of the
// purchase, each tagged with the purchase as its source and numbered in
// the description ("Notebook (2/12)").
func BuildEntries(purchase *entity.InstallmentPurchase) []*entity.LedgerEntry {
	plan := Plan(purchase.TotalAmount, purchase.InstallmentCount, purchase.StartDate)

	entries := make([]*entity.LedgerEntry, 0, len(plan.Dates))
	for i, date := range plan.Dates {
		description := fmt.Sprintf("%s (%d/%d)", purchase.Description, i+1, purchase.InstallmentCount)
		entries = append(entries, entity.NewSourcedLedgerEntry(
			purchase.UserID,
			entity.EntryTypeDebt,
			purchase.Category,
			plan.InstallmentAmount,
			date,
			description,
			entity.SourceTypeInstallment,
			purchase.ID,
		))
	}
	return entries
}
