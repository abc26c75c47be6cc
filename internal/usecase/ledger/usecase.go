// Package ledger exposes the read side of the ledger engine: balances and
// entry sequences, verified against recomputation on every read.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/errs"
	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
)

type EntryDTO struct {
	EntryID      string          `json:"entry_id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

type BalanceDTO struct {
	LoanID      string          `json:"loan_id"`
	Outstanding decimal.Decimal `json:"outstanding"`
	EntryCount  int             `json:"entry_count"`
}

type Usecase struct {
	loans   loan.Repository
	entries ledger.Repository
}

func NewUsecase(loans loan.Repository, entries ledger.Repository) *Usecase {
	return &Usecase{loans: loans, entries: entries}
}

// Balance returns the loan's outstanding balance. The stored snapshot on the
// last entry must agree with a from-scratch recomputation; disagreement is a
// broken invariant and comes back as ledger corruption, never a number.
func (u *Usecase) Balance(ctx context.Context, loanID string) (*BalanceDTO, error) {
	l, entries, err := u.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := &BalanceDTO{LoanID: l.LoanID, Outstanding: decimal.Zero, EntryCount: len(entries)}
	if len(entries) == 0 {
		return out, nil
	}
	recomputed := ledger.Recompute(entries)
	last := entries[len(entries)-1].BalanceAfter
	if !recomputed.Equal(last) {
		return nil, errs.Corruptf("loan %s: recomputed %s, last snapshot %s", loanID, recomputed, last)
	}
	out.Outstanding = last
	return out, nil
}

// Entries returns the strictly ordered entry sequence for a loan.
func (u *Usecase) Entries(ctx context.Context, loanID string) ([]EntryDTO, error) {
	_, entries, err := u.load(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if err := ledger.VerifyChain(entries); err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryDTO{
			EntryID: e.EntryID, Type: string(e.Type), Amount: e.Amount,
			BalanceAfter: e.BalanceAfter, CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func (u *Usecase) load(ctx context.Context, loanID string) (*loan.Loan, []ledger.Entry, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errs.NotFoundf("loan %s", loanID)
		}
		return nil, nil, err
	}
	entries, err := u.entries.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, nil, err
	}
	return l, entries, nil
}
