package repayment

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayInput struct {
	InstallmentID string          `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
}

type InstallmentDTO struct {
	InstallmentID string          `json:"installment_id"`
	LoanID        string          `json:"loan_id"`
	Sequence      int             `json:"sequence"`
	DueDate       time.Time       `json:"due_date"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Status        string          `json:"status"`
	PaidOn        *time.Time      `json:"paid_on,omitempty"`
}

// PaymentDTO reports one applied payment: the updated installment plus the
// ledger entry it produced.
type PaymentDTO struct {
	Installment   InstallmentDTO  `json:"installment"`
	EntryID       string          `json:"entry_id"`
	Amount        decimal.Decimal `json:"amount"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	ReceiptNumber string          `json:"receipt_number"`
	LoanClosed    bool            `json:"loan_closed"`
}

type ReceiptDTO struct {
	Number    string    `json:"number"`
	EntryID   uint64    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
