package ledger

import (
	"github.com/shopspring/decimal"

	"loanledger-backend/internal/domain/errs"
)

// Recompute folds the full entry sequence into the outstanding balance.
// This is the source of truth; any cached snapshot must agree with it.
func Recompute(entries []Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// VerifyChain checks every BalanceAfter against the running recomputation.
// A mismatch means the append-only invariant was broken somewhere and is
// reported as ledger corruption, not repaired.
func VerifyChain(entries []Entry) error {
	run := decimal.Zero
	for i, e := range entries {
		run = run.Add(e.Amount)
		if !e.BalanceAfter.Equal(run) {
			return errs.Corruptf("entry %s (seq %d): balance_after %s, recomputed %s",
				e.EntryID, i+1, e.BalanceAfter, run)
		}
	}
	return nil
}
