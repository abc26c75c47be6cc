package repayment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

// StatusFor derives an installment's status from its cumulative paid amount.
// Status is never stored independently of this rule.
func StatusFor(paid, due decimal.Decimal) Status {
	switch {
	case paid.Sign() <= 0:
		return StatusPending
	case paid.GreaterThanOrEqual(due):
		return StatusPaid
	default:
		return StatusPartial
	}
}

// Installment is one scheduled repayment obligation. The batch for a loan is
// created at disbursement and mutated only when payments are applied; rows
// are never deleted.
type Installment struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	InstallmentID string          `gorm:"column:installment_id;size:32;uniqueIndex:ux_installments_installment_id"`
	LoanID        uint64          `gorm:"column:loan_id;not null;index:idx_installments_loan"`
	Sequence      int             `gorm:"column:sequence;not null"`
	DueDate       time.Time       `gorm:"column:due_date;type:date;not null"`
	AmountDue     decimal.Decimal `gorm:"column:amount_due;type:decimal(12,2);not null"`
	PaidAmount    decimal.Decimal `gorm:"column:paid_amount;type:decimal(12,2);not null"`
	Status        Status          `gorm:"column:status;size:16;not null;default:'pending'"`
	PaidOn        *time.Time      `gorm:"column:paid_on"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Installment) TableName() string { return "installments" }
