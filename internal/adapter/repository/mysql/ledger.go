package mysql

import (
	"context"

	"gorm.io/gorm"

	ledgerDomain "loanledger-backend/internal/domain/ledger"
)

// LedgerRepository only ever inserts entries; there is no update or delete
// path, matching the append-only contract.
type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Append(ctx context.Context, e *ledgerDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LedgerRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]ledgerDomain.Entry, error) {
	var out []ledgerDomain.Entry
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) Latest(ctx context.Context, loanID uint64) (*ledgerDomain.Entry, error) {
	var out ledgerDomain.Entry
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("id DESC").First(&out)
	return &out, res.Error
}

// LatestByLoanIDs returns the newest entry of each listed loan in one query.
// Loans with no entries are simply absent from the result.
func (r *LedgerRepository) LatestByLoanIDs(ctx context.Context, loanIDs []uint64) ([]ledgerDomain.Entry, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}
	sub := r.db.Model(&ledgerDomain.Entry{}).
		Select("MAX(id)").
		Where("loan_id IN ?", loanIDs).
		Group("loan_id")
	var out []ledgerDomain.Entry
	res := r.db.WithContext(ctx).Where("id IN (?)", sub).Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) CountByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&ledgerDomain.Entry{}).Where("loan_id = ?", loanID).Count(&n)
	return n, res.Error
}

func (r *LedgerRepository) CreateReceipt(ctx context.Context, rec *ledgerDomain.Receipt) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *LedgerRepository) GetReceiptByNumber(ctx context.Context, number string) (*ledgerDomain.Receipt, error) {
	var out ledgerDomain.Receipt
	res := r.db.WithContext(ctx).Where("number = ?", number).First(&out)
	return &out, res.Error
}
