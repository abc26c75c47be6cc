package uow

import (
	"context"

	"loanledger-backend/internal/domain/borrower"
	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/loantype"
	"loanledger-backend/internal/domain/repayment"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Borrowers    borrower.Repository
	LoanTypes    loantype.Repository
	Loans        loan.Repository
	Collaterals  loan.CollateralRepository
	Installments repayment.Repository
	Ledger       ledger.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn in one transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, serializing all mutating
	// operations on that loan, then passes it to fn.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
