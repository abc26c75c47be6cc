package loantype

import "context"

type Repository interface {
	List(ctx context.Context) ([]LoanType, error)
	GetByID(ctx context.Context, id uint64) (*LoanType, error)
	// Seed inserts the given types if the catalog is empty; no-op otherwise.
	Seed(ctx context.Context, types []LoanType) error
}
