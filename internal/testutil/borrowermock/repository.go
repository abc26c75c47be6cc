package borrowermock

import (
	"context"

	"gorm.io/gorm"

	domain "loanledger-backend/internal/domain/borrower"
)

// Repo is a function-backed mock satisfying borrower.Repository. Unset
// methods behave like an empty table.
type Repo struct {
	CreateFn          func(ctx context.Context, b *domain.Borrower) error
	GetByBorrowerIDFn func(ctx context.Context, borrowerID string) (*domain.Borrower, error)
	GetByIDFn         func(ctx context.Context, id uint64) (*domain.Borrower, error)
	ListFn            func(ctx context.Context) ([]domain.Borrower, error)
	ListByIDsFn       func(ctx context.Context, ids []uint64) ([]domain.Borrower, error)
	CountFn           func(ctx context.Context) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBorrowerID(ctx context.Context, borrowerID string) (*domain.Borrower, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Borrower, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Borrower, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByIDs(ctx context.Context, ids []uint64) ([]domain.Borrower, error) {
	if m.ListByIDsFn != nil {
		return m.ListByIDsFn(ctx, ids)
	}
	// fall back to per-id lookups so fixtures only wiring GetByIDFn still work
	var out []domain.Borrower
	for _, id := range ids {
		b, err := m.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
