package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate takes a row lock; only valid inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	ListByStatus(ctx context.Context, s Status) ([]Loan, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

type CollateralRepository interface {
	CreateBatch(ctx context.Context, cs []Collateral) error
	ListByLoanID(ctx context.Context, loanID uint64) ([]Collateral, error)
}
