// Package ledger holds the append-only entry sequence per loan and the rules
// for deriving and verifying the outstanding balance from it.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	TypeDisbursement EntryType = "disbursement"
	TypeRepayment    EntryType = "repayment"
	TypeAdjustment   EntryType = "adjustment"
)

// Entry is immutable once written: disbursements carry a positive amount,
// repayments a negative one, adjustments either sign. BalanceAfter snapshots
// the outstanding balance immediately after the entry applied.
type Entry struct {
	ID           uint64          `gorm:"primaryKey;column:id"`
	EntryID      string          `gorm:"column:entry_id;size:32;uniqueIndex:ux_ledger_entry_id"`
	LoanID       uint64          `gorm:"column:loan_id;not null;index:idx_ledger_loan"`
	Type         EntryType       `gorm:"column:type;size:32;not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	BalanceAfter decimal.Decimal `gorm:"column:balance_after;type:decimal(12,2);not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Entry) TableName() string { return "ledger" }

// Receipt records the number handed out for one payment event. Rendering is
// someone else's job; we only keep the record.
type Receipt struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	LedgerEntryID uint64    `gorm:"column:ledger_entry_id;not null;uniqueIndex:ux_receipts_entry"`
	Number        string    `gorm:"column:number;size:64;uniqueIndex:ux_receipts_number"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Receipt) TableName() string { return "receipts" }

// ReceiptNumber builds the public receipt number for a ledger entry.
func ReceiptNumber(at time.Time, entryID uint64) string {
	return fmt.Sprintf("REC-%d-%d", at.Unix(), entryID)
}
