package borrower

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/borrower"
	"loanledger-backend/internal/domain/errs"
	"loanledger-backend/pkg/id"
)

type CreateBorrowerInput struct {
	Name          string           `json:"name"`
	Address       string           `json:"address"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income"`
	// Opaque, externally computed. Stored for display only.
	CreditScore *int `json:"credit_score"`
}

type BorrowerDTO struct {
	BorrowerID    string           `json:"borrower_id"`
	Name          string           `json:"name"`
	Address       string           `json:"address"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income,omitempty"`
	CreditScore   *int             `json:"credit_score,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

type Usecase struct{ repo borrower.Repository }

func NewUsecase(r borrower.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateBorrowerInput) (*BorrowerDTO, error) {
	if in.Name == "" {
		return nil, errs.Validationf("name is required")
	}
	if in.MonthlyIncome != nil && in.MonthlyIncome.Sign() < 0 {
		return nil, errs.Validationf("monthly_income must not be negative")
	}

	b := &borrower.Borrower{
		BorrowerID:  id.NewID32(),
		Name:        in.Name,
		Address:     in.Address,
		CreditScore: in.CreditScore,
	}
	if in.MonthlyIncome != nil {
		b.MonthlyIncome = decimal.NewNullDecimal(*in.MonthlyIncome)
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID string) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("borrower %s", borrowerID)
		}
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) List(ctx context.Context) ([]BorrowerDTO, error) {
	bs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowerDTO, 0, len(bs))
	for i := range bs {
		out = append(out, *toDTO(&bs[i]))
	}
	return out, nil
}

func toDTO(b *borrower.Borrower) *BorrowerDTO {
	dto := &BorrowerDTO{
		BorrowerID:  b.BorrowerID,
		Name:        b.Name,
		Address:     b.Address,
		CreditScore: b.CreditScore,
		CreatedAt:   b.CreatedAt,
	}
	if b.MonthlyIncome.Valid {
		v := b.MonthlyIncome.Decimal
		dto.MonthlyIncome = &v
	}
	return dto
}
