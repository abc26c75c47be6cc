package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	borrowerDomain "loanledger-backend/internal/domain/borrower"
	ledgerDomain "loanledger-backend/internal/domain/ledger"
	loanDomain "loanledger-backend/internal/domain/loan"
	typeDomain "loanledger-backend/internal/domain/loantype"
	repayDomain "loanledger-backend/internal/domain/repayment"
	"loanledger-backend/pkg/id"
)

// --- SQLite-friendly schema only for tests (loans.status is ENUM on MySQL) ---

type loanSQLite struct {
	ID           uint64          `gorm:"primaryKey;column:id"`
	LoanID       string          `gorm:"column:loan_id;size:32"`
	BorrowerID   uint64          `gorm:"column:borrower_id"`
	LoanTypeID   *uint64         `gorm:"column:loan_type_id"`
	Principal    decimal.Decimal `gorm:"column:principal;type:decimal(12,2)"`
	InterestRate decimal.Decimal `gorm:"column:interest_rate;type:decimal(6,3)"`
	TermMonths   int             `gorm:"column:term_months"`
	Status       string          `gorm:"column:status;type:text"` // no enum
	DisbursedOn  *time.Time      `gorm:"column:disbursed_on"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe
// loan mirror plus the domain models that need no mirroring.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&loanSQLite{},
		&borrowerDomain.Borrower{},
		&typeDomain.LoanType{},
		&loanDomain.Collateral{},
		&repayDomain.Installment{},
		&ledgerDomain.Entry{},
		&ledgerDomain.Receipt{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func makeLoan(loanID string, borrowerID uint64) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:       loanID,
		BorrowerID:   borrowerID,
		Principal:    d("12000.00"),
		InterestRate: d("12.000"),
		TermMonths:   12,
		Status:       loanDomain.StatusPending,
	}
}

func seedLoan(t *testing.T, db *gorm.DB, status loanDomain.Status) *loanDomain.Loan {
	t.Helper()
	l := makeLoan(id.NewID32(), 1)
	l.Status = status
	if err := NewLoanRepository(db).Create(context.Background(), l); err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return l
}
