package loantype

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanType is immutable reference data: a policy that caps principal and
// tenure and seeds the interest rate of loans created against it.
type LoanType struct {
	ID               uint64          `gorm:"primaryKey;column:id"`
	Name             string          `gorm:"column:name;size:64;uniqueIndex:ux_loan_types_name"`
	MaxAmount        decimal.Decimal `gorm:"column:max_amount;type:decimal(12,2);not null"`
	MaxTenureMonths  int             `gorm:"column:max_tenure_months;not null"`
	BaseInterestRate decimal.Decimal `gorm:"column:base_interest_rate;type:decimal(6,3);not null"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (LoanType) TableName() string { return "loan_types" }

// Defaults seeds the catalog on an empty database.
func Defaults() []LoanType {
	return []LoanType{
		{Name: "Personal", MaxAmount: decimal.NewFromInt(50_000), MaxTenureMonths: 48, BaseInterestRate: decimal.RequireFromString("14.5")},
		{Name: "Gold", MaxAmount: decimal.NewFromInt(25_000), MaxTenureMonths: 24, BaseInterestRate: decimal.RequireFromString("10.0")},
		{Name: "Vehicle", MaxAmount: decimal.NewFromInt(80_000), MaxTenureMonths: 60, BaseInterestRate: decimal.RequireFromString("12.0")},
		{Name: "Business", MaxAmount: decimal.NewFromInt(250_000), MaxTenureMonths: 84, BaseInterestRate: decimal.RequireFromString("16.0")},
	}
}
