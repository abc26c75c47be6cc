package approval

import (
	"time"

	"github.com/shopspring/decimal"
)

type InstallmentDTO struct {
	InstallmentID string          `json:"installment_id"`
	Sequence      int             `json:"sequence"`
	DueDate       time.Time       `json:"due_date"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Status        string          `json:"status"`
}

// ApproveDTO is the post-transition view: the loan is disbursed and its
// schedule is nonempty or the operation did not happen at all.
type ApproveDTO struct {
	LoanID         string           `json:"loan_id"`
	Status         string           `json:"status"`
	DisbursedOn    time.Time        `json:"disbursed_on"`
	MonthlyPayment decimal.Decimal  `json:"monthly_payment"`
	TotalDue       decimal.Decimal  `json:"total_due"`
	Outstanding    decimal.Decimal  `json:"outstanding"`
	Schedule       []InstallmentDTO `json:"schedule"`
}

type RejectDTO struct {
	LoanID string `json:"loan_id"`
	Status string `json:"status"`
}
