package loanmock

import (
	"context"

	"gorm.io/gorm"

	domain "loanledger-backend/internal/domain/loan"
)

// Repo is a function-backed mock satisfying loan.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListFn                 func(ctx context.Context) ([]domain.Loan, error)
	ListByStatusFn         func(ctx context.Context, s domain.Status) ([]domain.Loan, error)
	CountByStatusFn        func(ctx context.Context) (map[domain.Status]int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return map[domain.Status]int64{}, nil
}

// CollateralRepo is a function-backed mock satisfying loan.CollateralRepository.
type CollateralRepo struct {
	CreateBatchFn  func(ctx context.Context, cs []domain.Collateral) error
	ListByLoanIDFn func(ctx context.Context, loanID uint64) ([]domain.Collateral, error)
}

var _ domain.CollateralRepository = (*CollateralRepo)(nil)

func (m *CollateralRepo) CreateBatch(ctx context.Context, cs []domain.Collateral) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, cs)
	}
	return nil
}

func (m *CollateralRepo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Collateral, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}
