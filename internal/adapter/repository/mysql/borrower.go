package mysql

import (
	"context"

	"gorm.io/gorm"

	borrowerDomain "loanledger-backend/internal/domain/borrower"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowerRepository) GetByBorrowerID(ctx context.Context, borrowerID string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID).First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) GetByID(ctx context.Context, id uint64) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *BorrowerRepository) ListByIDs(ctx context.Context, ids []uint64) ([]borrowerDomain.Borrower, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) List(ctx context.Context) ([]borrowerDomain.Borrower, error) {
	var out []borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&borrowerDomain.Borrower{}).Count(&n)
	return n, res.Error
}
