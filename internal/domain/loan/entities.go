package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDisbursed Status = "disbursed"
	StatusClosed    Status = "closed"
	StatusRejected  Status = "rejected"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool { return s == StatusClosed || s == StatusRejected }

type CollateralType string

const (
	CollateralProperty CollateralType = "property"
	CollateralVehicle  CollateralType = "vehicle"
	CollateralGold     CollateralType = "gold"
	CollateralDeposits CollateralType = "deposits"
	CollateralOther    CollateralType = "other"
)

func ValidCollateralType(t CollateralType) bool {
	switch t {
	case CollateralProperty, CollateralVehicle, CollateralGold, CollateralDeposits, CollateralOther:
		return true
	}
	return false
}

// Loan carries no stored outstanding balance: the balance is derived from the
// ledger so that no in-place update can drift from the entry history.
type Loan struct {
	ID           uint64          `gorm:"primaryKey;column:id"`
	LoanID       string          `gorm:"column:loan_id;size:32;uniqueIndex:ux_loans_loan_id"`
	BorrowerID   uint64          `gorm:"column:borrower_id;not null;index:idx_loans_borrower"`
	LoanTypeID   *uint64         `gorm:"column:loan_type_id;index"`
	Principal    decimal.Decimal `gorm:"column:principal;type:decimal(12,2);not null"`
	InterestRate decimal.Decimal `gorm:"column:interest_rate;type:decimal(6,3);not null"`
	TermMonths   int             `gorm:"column:term_months;not null"`
	Status       Status          `gorm:"column:status;type:enum('pending','approved','disbursed','closed','rejected');default:'pending'"`
	DisbursedOn  *time.Time      `gorm:"column:disbursed_on;type:date"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Loan) TableName() string { return "loans" }

// Collateral is owned by exactly one loan, created in the same transaction
// as the loan and never edited afterwards.
type Collateral struct {
	ID          uint64          `gorm:"primaryKey;column:id"`
	LoanID      uint64          `gorm:"column:loan_id;not null;index:idx_collateral_loan"`
	Type        CollateralType  `gorm:"column:type;size:32;not null"`
	Value       decimal.Decimal `gorm:"column:value;type:decimal(12,2);not null"`
	Description string          `gorm:"column:description;type:text"`
	SubmittedOn time.Time       `gorm:"column:submitted_on;autoCreateTime"`
}

func (Collateral) TableName() string { return "collateral" }
