package installmentmock

import (
	"context"

	"gorm.io/gorm"

	domain "loanledger-backend/internal/domain/repayment"
)

// Repo is a function-backed mock satisfying repayment.Repository.
type Repo struct {
	CreateBatchFn                 func(ctx context.Context, ins []domain.Installment) error
	SaveFn                        func(ctx context.Context, in *domain.Installment) error
	GetByInstallmentIDFn          func(ctx context.Context, installmentID string) (*domain.Installment, error)
	GetByInstallmentIDForUpdateFn func(ctx context.Context, installmentID string) (*domain.Installment, error)
	ListByLoanIDFn                func(ctx context.Context, loanID uint64) ([]domain.Installment, error)
	RecentPaidFn                  func(ctx context.Context, limit int) ([]domain.Installment, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) CreateBatch(ctx context.Context, ins []domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, ins)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, in *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, in)
	}
	return nil
}

func (m *Repo) GetByInstallmentID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDFn != nil {
		return m.GetByInstallmentIDFn(ctx, installmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*domain.Installment, error) {
	if m.GetByInstallmentIDForUpdateFn != nil {
		return m.GetByInstallmentIDForUpdateFn(ctx, installmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Installment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) RecentPaid(ctx context.Context, limit int) ([]domain.Installment, error) {
	if m.RecentPaidFn != nil {
		return m.RecentPaidFn(ctx, limit)
	}
	return nil, nil
}
