package loan

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/borrower"
	"loanledger-backend/internal/domain/errs"
	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/loantype"
	"loanledger-backend/internal/domain/uow"
	"loanledger-backend/pkg/id"
)

type Usecase struct {
	borrowers   borrower.Repository
	loanTypes   loantype.Repository
	loans       loan.Repository
	collaterals loan.CollateralRepository
	entries     ledger.Repository
	uow         uow.UnitOfWork
}

func NewUsecase(
	borrowers borrower.Repository,
	loanTypes loantype.Repository,
	loans loan.Repository,
	collaterals loan.CollateralRepository,
	entries ledger.Repository,
	tx uow.UnitOfWork,
) *Usecase {
	return &Usecase{
		borrowers:   borrowers,
		loanTypes:   loanTypes,
		loans:       loans,
		collaterals: collaterals,
		entries:     entries,
		uow:         tx,
	}
}

// Create persists a pending loan and its collateral set in one transaction.
// Policy caps apply only when a loan type is referenced; custom loans take
// the officer's rate and term as given.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if !id.Valid32(in.BorrowerID) {
		return nil, errs.Validationf("borrower_id must be 32-char lowercase hex")
	}
	if in.Principal.Sign() <= 0 {
		return nil, errs.Validationf("principal must be positive")
	}
	if in.Principal.Exponent() < -2 {
		return nil, errs.Validationf("principal must have at most 2 decimal places")
	}
	if in.TermMonths <= 0 {
		return nil, errs.Validationf("term_months must be positive")
	}
	cols := make([]loan.Collateral, 0, len(in.Collaterals))
	for _, c := range in.Collaterals {
		ct := loan.CollateralType(c.Type)
		if !loan.ValidCollateralType(ct) {
			return nil, errs.Validationf("unknown collateral type %q", c.Type)
		}
		if c.Value.Sign() <= 0 {
			return nil, errs.Validationf("collateral value must be positive")
		}
		if c.Value.Exponent() < -2 {
			return nil, errs.Validationf("collateral value must have at most 2 decimal places")
		}
		cols = append(cols, loan.Collateral{Type: ct, Value: c.Value, Description: c.Description})
	}

	b, err := u.borrowers.GetByBorrowerID(ctx, in.BorrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("borrower %s", in.BorrowerID)
		}
		return nil, err
	}

	rate := decimal.Zero
	if in.LoanTypeID != nil {
		lt, err := u.loanTypes.GetByID(ctx, *in.LoanTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NotFoundf("loan type %d", *in.LoanTypeID)
			}
			return nil, err
		}
		if in.Principal.GreaterThan(lt.MaxAmount) {
			return nil, errs.Validationf("principal %s exceeds %s cap of %s", in.Principal, lt.Name, lt.MaxAmount)
		}
		if in.TermMonths > lt.MaxTenureMonths {
			return nil, errs.Validationf("term %d exceeds %s cap of %d months", in.TermMonths, lt.Name, lt.MaxTenureMonths)
		}
		rate = lt.BaseInterestRate
	}
	if in.InterestRate != nil {
		if in.InterestRate.Sign() < 0 {
			return nil, errs.Validationf("interest_rate must not be negative")
		}
		if in.InterestRate.Exponent() < -3 {
			return nil, errs.Validationf("interest_rate must have at most 3 decimal places")
		}
		rate = *in.InterestRate
	} else if in.LoanTypeID == nil {
		return nil, errs.Validationf("interest_rate is required for custom loans")
	}

	l := &loan.Loan{
		LoanID:       id.NewID32(),
		BorrowerID:   b.ID,
		LoanTypeID:   in.LoanTypeID,
		Principal:    in.Principal,
		InterestRate: rate,
		TermMonths:   in.TermMonths,
		Status:       loan.StatusPending,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		for i := range cols {
			cols[i].LoanID = l.ID
		}
		if len(cols) == 0 {
			return nil
		}
		return r.Collaterals.CreateBatch(ctx, cols)
	})
	if err != nil {
		return nil, err
	}

	dto := toDTO(l, in.BorrowerID, decimal.Zero)
	for _, c := range cols {
		dto.Collaterals = append(dto.Collaterals, CollateralDTO{
			Type: string(c.Type), Value: c.Value, Description: c.Description, SubmittedOn: c.SubmittedOn,
		})
	}
	return dto, nil
}

// Get returns a loan with its collateral set and full ledger sequence.
func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("loan %s", loanID)
		}
		return nil, err
	}
	b, err := u.borrowers.GetByID(ctx, l.BorrowerID)
	if err != nil {
		return nil, err
	}
	entries, err := u.entries.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	if err := ledger.VerifyChain(entries); err != nil {
		return nil, err
	}
	cols, err := u.collaterals.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}

	dto := &LoanDetailDTO{LoanDTO: *toDTO(l, b.BorrowerID, ledger.Recompute(entries))}
	for _, c := range cols {
		dto.Collaterals = append(dto.Collaterals, CollateralDTO{
			Type: string(c.Type), Value: c.Value, Description: c.Description, SubmittedOn: c.SubmittedOn,
		})
	}
	dto.Ledger = make([]LedgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		dto.Ledger = append(dto.Ledger, LedgerEntryDTO{
			EntryID: e.EntryID, Type: string(e.Type), Amount: e.Amount,
			BalanceAfter: e.BalanceAfter, CreatedAt: e.CreatedAt,
		})
	}
	return dto, nil
}

// List returns all loans, newest first, with their derived balances.
// Borrowers and latest entries come from two batched queries so the scan
// stays flat regardless of table size.
func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	loanIDs := make([]uint64, 0, len(ls))
	borrowerIDs := make([]uint64, 0, len(ls))
	for i := range ls {
		loanIDs = append(loanIDs, ls[i].ID)
		borrowerIDs = append(borrowerIDs, ls[i].BorrowerID)
	}

	bs, err := u.borrowers.ListByIDs(ctx, borrowerIDs)
	if err != nil {
		return nil, err
	}
	borrowerByID := make(map[uint64]string, len(bs))
	for i := range bs {
		borrowerByID[bs[i].ID] = bs[i].BorrowerID
	}

	latest, err := u.entries.LatestByLoanIDs(ctx, loanIDs)
	if err != nil {
		return nil, err
	}
	balanceByLoan := make(map[uint64]decimal.Decimal, len(latest))
	for i := range latest {
		balanceByLoan[latest[i].LoanID] = latest[i].BalanceAfter
	}

	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		l := &ls[i]
		outstanding := decimal.Zero
		if b, ok := balanceByLoan[l.ID]; ok {
			outstanding = b
		}
		out = append(out, *toDTO(l, borrowerByID[l.BorrowerID], outstanding))
	}
	return out, nil
}

func toDTO(l *loan.Loan, borrowerID string, outstanding decimal.Decimal) *LoanDTO {
	return &LoanDTO{
		LoanID:       l.LoanID,
		BorrowerID:   borrowerID,
		LoanTypeID:   l.LoanTypeID,
		Principal:    l.Principal,
		InterestRate: l.InterestRate,
		TermMonths:   l.TermMonths,
		Status:       string(l.Status),
		DisbursedOn:  l.DisbursedOn,
		Outstanding:  outstanding,
		CreatedAt:    l.CreatedAt,
	}
}
