// Package repayment applies payments against schedule installments and keeps
// the ledger's balance chain intact while doing it.
package repayment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"loanledger-backend/internal/domain/errs"
	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/repayment"
	"loanledger-backend/internal/domain/uow"
	"loanledger-backend/pkg/id"
)

type Usecase struct {
	loans        loan.Repository
	installments repayment.Repository
	entries      ledger.Repository
	uow          uow.UnitOfWork
	now          func() time.Time
}

func NewUsecase(loans loan.Repository, installments repayment.Repository, entries ledger.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		loans:        loans,
		installments: installments,
		entries:      entries,
		uow:          tx,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the payment clock; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase { u.now = now; return u }

// Pay applies a payment to an installment. The amount is recorded in full on
// the ledger and the installment even past the installment's due amount;
// overshoot is not credited to later installments. Installment mutation and
// ledger append commit as one unit under the loan's row lock, so a retried or
// concurrent call cannot double-count.
func (u *Usecase) Pay(ctx context.Context, in PayInput) (*PaymentDTO, error) {
	if in.Amount.Sign() <= 0 {
		return nil, errs.Validationf("payment amount must be positive, got %s", in.Amount)
	}
	if in.Amount.Exponent() < -2 {
		return nil, errs.Validationf("payment amount must have at most 2 decimal places, got %s", in.Amount)
	}

	var dto *PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inst, err := r.Installments.GetByInstallmentID(ctx, in.InstallmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFoundf("installment %s", in.InstallmentID)
			}
			return err
		}

		// Lock the loan before touching installment or ledger state: this is
		// the serialization point for everything mutating this loan.
		l, err := r.Loans.GetByIDForUpdate(ctx, inst.LoanID)
		if err != nil {
			return err
		}
		switch l.Status {
		case loan.StatusDisbursed:
		case loan.StatusClosed:
			return errs.InvalidStatef("loan %s is closed", l.LoanID)
		default:
			return errs.InvalidStatef("loan %s is %s, payments require disbursed", l.LoanID, l.Status)
		}

		// Re-read under the lock; the first read raced unlocked.
		inst, err = r.Installments.GetByInstallmentIDForUpdate(ctx, in.InstallmentID)
		if err != nil {
			return err
		}

		entries, err := r.Ledger.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return errs.Corruptf("disbursed loan %s has an empty ledger", l.LoanID)
		}
		if err := ledger.VerifyChain(entries); err != nil {
			return err
		}
		prev := entries[len(entries)-1].BalanceAfter

		now := u.now()
		inst.PaidAmount = inst.PaidAmount.Add(in.Amount)
		inst.Status = repayment.StatusFor(inst.PaidAmount, inst.AmountDue)
		inst.PaidOn = &now
		if err := r.Installments.Save(ctx, inst); err != nil {
			return err
		}

		entry := &ledger.Entry{
			EntryID:      id.NewID32(),
			LoanID:       l.ID,
			Type:         ledger.TypeRepayment,
			Amount:       in.Amount.Neg(),
			BalanceAfter: prev.Sub(in.Amount),
		}
		if err := r.Ledger.Append(ctx, entry); err != nil {
			return err
		}

		rec := &ledger.Receipt{
			LedgerEntryID: entry.ID,
			Number:        ledger.ReceiptNumber(now, entry.ID),
		}
		if err := r.Ledger.CreateReceipt(ctx, rec); err != nil {
			return err
		}

		closed := false
		if entry.BalanceAfter.Sign() <= 0 {
			l.Status = loan.StatusClosed
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			closed = true
		}

		dto = &PaymentDTO{
			Installment:   toInstallmentDTO(inst, l.LoanID),
			EntryID:       entry.EntryID,
			Amount:        in.Amount,
			Outstanding:   entry.BalanceAfter,
			ReceiptNumber: rec.Number,
			LoanClosed:    closed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListForLoan returns the ordered installment sequence with computed status.
func (u *Usecase) ListForLoan(ctx context.Context, loanID string) ([]InstallmentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("loan %s", loanID)
		}
		return nil, err
	}
	ins, err := u.installments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]InstallmentDTO, 0, len(ins))
	for i := range ins {
		out = append(out, toInstallmentDTO(&ins[i], l.LoanID))
	}
	return out, nil
}

// Receipt looks up a receipt by its public number.
func (u *Usecase) Receipt(ctx context.Context, number string) (*ReceiptDTO, error) {
	rec, err := u.entries.GetReceiptByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("receipt %s", number)
		}
		return nil, err
	}
	return &ReceiptDTO{Number: rec.Number, EntryID: rec.LedgerEntryID, CreatedAt: rec.CreatedAt}, nil
}

func toInstallmentDTO(in *repayment.Installment, loanID string) InstallmentDTO {
	return InstallmentDTO{
		InstallmentID: in.InstallmentID,
		LoanID:        loanID,
		Sequence:      in.Sequence,
		DueDate:       in.DueDate,
		AmountDue:     in.AmountDue,
		PaidAmount:    in.PaidAmount,
		Status:        string(in.Status),
		PaidOn:        in.PaidOn,
	}
}
