package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type CollateralInput struct {
	Type        string          `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

type CreateLoanInput struct {
	BorrowerID string `json:"borrower_id"`
	// Optional policy reference; when set, principal and term are capped by it.
	LoanTypeID *uint64         `json:"loan_type_id"`
	Principal  decimal.Decimal `json:"principal"`
	// Optional when a loan type is given: the type's base rate seeds it.
	InterestRate *decimal.Decimal  `json:"interest_rate"`
	TermMonths   int               `json:"term_months"`
	Collaterals  []CollateralInput `json:"collaterals"`
}

type CollateralDTO struct {
	Type        string          `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
	SubmittedOn time.Time       `json:"submitted_on"`
}

type LedgerEntryDTO struct {
	EntryID      string          `json:"entry_id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

type LoanDTO struct {
	LoanID       string          `json:"loan_id"`
	BorrowerID   string          `json:"borrower_id"`
	LoanTypeID   *uint64         `json:"loan_type_id,omitempty"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TermMonths   int             `json:"term_months"`
	Status       string          `json:"status"`
	DisbursedOn  *time.Time      `json:"disbursed_on,omitempty"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	CreatedAt    time.Time       `json:"created_at"`
	Collaterals  []CollateralDTO `json:"collaterals,omitempty"`
}

// LoanDetailDTO adds the full entry sequence for audit/printing reads.
type LoanDetailDTO struct {
	LoanDTO
	Ledger []LedgerEntryDTO `json:"ledger"`
}
