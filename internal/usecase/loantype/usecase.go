package loantype

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/errs"
	"loanledger-backend/internal/domain/loantype"
)

type LoanTypeDTO struct {
	ID               uint64          `json:"id"`
	Name             string          `json:"name"`
	MaxAmount        decimal.Decimal `json:"max_amount"`
	MaxTenureMonths  int             `json:"max_tenure_months"`
	BaseInterestRate decimal.Decimal `json:"base_interest_rate"`
}

type Usecase struct{ repo loantype.Repository }

func NewUsecase(r loantype.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context) ([]LoanTypeDTO, error) {
	ts, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanTypeDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, toDTO(t))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*LoanTypeDTO, error) {
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("loan type %d", id)
		}
		return nil, err
	}
	dto := toDTO(*t)
	return &dto, nil
}

func toDTO(t loantype.LoanType) LoanTypeDTO {
	return LoanTypeDTO{
		ID:               t.ID,
		Name:             t.Name,
		MaxAmount:        t.MaxAmount,
		MaxTenureMonths:  t.MaxTenureMonths,
		BaseInterestRate: t.BaseInterestRate,
	}
}
