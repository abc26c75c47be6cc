package borrower

import (
	"time"

	"github.com/shopspring/decimal"
)

// Borrower is referenced by loans by identifier only; deleting one is out of
// scope. CreditScore is computed elsewhere and consumed here as opaque data.
type Borrower struct {
	ID            uint64              `gorm:"primaryKey;column:id"`
	BorrowerID    string              `gorm:"column:borrower_id;size:32;uniqueIndex:ux_borrowers_borrower_id"`
	Name          string              `gorm:"column:name;size:256;not null"`
	Address       string              `gorm:"column:address;type:text"`
	MonthlyIncome decimal.NullDecimal `gorm:"column:monthly_income;type:decimal(12,2)"`
	CreditScore   *int                `gorm:"column:credit_score"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Borrower) TableName() string { return "borrowers" }
