package mysql

import (
	"context"

	"gorm.io/gorm"

	typeDomain "loanledger-backend/internal/domain/loantype"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository { return &LoanTypeRepository{db: db} }

func (r *LoanTypeRepository) List(ctx context.Context) ([]typeDomain.LoanType, error) {
	var out []typeDomain.LoanType
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanTypeRepository) GetByID(ctx context.Context, id uint64) (*typeDomain.LoanType, error) {
	var out typeDomain.LoanType
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanTypeRepository) Seed(ctx context.Context, types []typeDomain.LoanType) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&typeDomain.LoanType{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&types).Error
}
