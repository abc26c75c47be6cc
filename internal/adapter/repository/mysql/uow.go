package mysql

import (
	"context"
	"errors"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/errs"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/uow"
)

const (
	txAttempts   = 3
	txRetryDelay = 25 * time.Millisecond
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Borrowers:    &BorrowerRepository{db: tx},
		LoanTypes:    &LoanTypeRepository{db: tx},
		Loans:        &LoanRepository{db: tx},
		Collaterals:  &CollateralRepository{db: tx},
		Installments: &InstallmentRepository{db: tx},
		Ledger:       &LedgerRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.retry(ctx, func() error {
		return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(u.repos(tx))
		})
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.retry(ctx, func() error {
		return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			r := u.repos(tx)
			// lock the loan row up-front: this serializes every mutating
			// operation on the loan while leaving other loans untouched
			l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
			if err != nil {
				return err
			}
			return fn(r, l)
		})
	})
}

// retry reruns the whole transaction on deadlock or lock-wait timeout, a
// bounded number of times. Each attempt either commits fully or rolls back,
// so a rerun never double-applies.
func (u *GormUoW) retry(ctx context.Context, run func() error) error {
	var err error
	for attempt := 1; attempt <= txAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = run()
		if err == nil || !retryable(err) {
			return err
		}
		select {
		case <-time.After(time.Duration(attempt) * txRetryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return errs.Transientf("transaction kept conflicting after %d attempts: %v", txAttempts, err)
}

func retryable(err error) bool {
	var me *driver.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	// 1213 deadlock, 1205 lock wait timeout
	return me.Number == 1213 || me.Number == 1205
}
