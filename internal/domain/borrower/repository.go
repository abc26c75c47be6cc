package borrower

import "context"

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByBorrowerID(ctx context.Context, borrowerID string) (*Borrower, error)
	GetByID(ctx context.Context, id uint64) (*Borrower, error)
	List(ctx context.Context) ([]Borrower, error)
	// ListByIDs fetches the named rows in one query; order is unspecified.
	ListByIDs(ctx context.Context, ids []uint64) ([]Borrower, error)
	Count(ctx context.Context) (int64, error)
}
