package ledger

import "context"

type Repository interface {
	// Append writes one entry. Entries are never updated or deleted.
	Append(ctx context.Context, e *Entry) error
	// ListByLoanID returns the full entry sequence, oldest first.
	ListByLoanID(ctx context.Context, loanID uint64) ([]Entry, error)
	// Latest returns the most recent entry for the loan.
	Latest(ctx context.Context, loanID uint64) (*Entry, error)
	// LatestByLoanIDs returns the newest entry per listed loan in one query;
	// loans without entries are absent from the result.
	LatestByLoanIDs(ctx context.Context, loanIDs []uint64) ([]Entry, error)
	CountByLoanID(ctx context.Context, loanID uint64) (int64, error)

	CreateReceipt(ctx context.Context, r *Receipt) error
	GetReceiptByNumber(ctx context.Context, number string) (*Receipt, error)
}
