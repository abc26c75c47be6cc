package repayment

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, ins []Installment) error
	Save(ctx context.Context, in *Installment) error
	GetByInstallmentID(ctx context.Context, installmentID string) (*Installment, error)
	// GetByInstallmentIDForUpdate takes a row lock; only valid inside a transaction.
	GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*Installment, error)
	ListByLoanID(ctx context.Context, loanID uint64) ([]Installment, error)
	// RecentPaid returns up to limit installments with a payment on record,
	// most recent payment first. Feeds the dashboard repayment series.
	RecentPaid(ctx context.Context, limit int) ([]Installment, error)
}
