package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repayDomain "loanledger-backend/internal/domain/repayment"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, ins []repayDomain.Installment) error {
	if len(ins) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ins).Error
}

func (r *InstallmentRepository) Save(ctx context.Context, in *repayDomain.Installment) error {
	return r.db.WithContext(ctx).Save(in).Error
}

func (r *InstallmentRepository) GetByInstallmentID(ctx context.Context, installmentID string) (*repayDomain.Installment, error) {
	var out repayDomain.Installment
	res := r.db.WithContext(ctx).Where("installment_id = ?", installmentID).First(&out)
	return &out, res.Error
}

func (r *InstallmentRepository) GetByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*repayDomain.Installment, error) {
	var out repayDomain.Installment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("installment_id = ?", installmentID).
		First(&out)
	return &out, res.Error
}

func (r *InstallmentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]repayDomain.Installment, error) {
	var out []repayDomain.Installment
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("sequence ASC").Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) RecentPaid(ctx context.Context, limit int) ([]repayDomain.Installment, error) {
	var out []repayDomain.Installment
	res := r.db.WithContext(ctx).
		Where("status IN ? AND paid_on IS NOT NULL", []repayDomain.Status{repayDomain.StatusPaid, repayDomain.StatusPartial}).
		Order("paid_on DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
