package loantypemock

import (
	"context"

	"gorm.io/gorm"

	domain "loanledger-backend/internal/domain/loantype"
)

// Repo is a function-backed mock satisfying loantype.Repository.
type Repo struct {
	ListFn    func(ctx context.Context) ([]domain.LoanType, error)
	GetByIDFn func(ctx context.Context, id uint64) (*domain.LoanType, error)
	SeedFn    func(ctx context.Context, types []domain.LoanType) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) List(ctx context.Context) ([]domain.LoanType, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanType, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Seed(ctx context.Context, types []domain.LoanType) error {
	if m.SeedFn != nil {
		return m.SeedFn(ctx, types)
	}
	return nil
}
