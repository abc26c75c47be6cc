// Package approval owns the loan state machine transitions out of pending.
// Approval and disbursement are one atomic step: there is no observable
// approved-but-undisbursed loan.
package approval

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"loanledger-backend/internal/amortization"
	"loanledger-backend/internal/domain/errs"
	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/repayment"
	"loanledger-backend/internal/domain/uow"
	"loanledger-backend/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the disbursement clock; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase { u.now = now; return u }

// Approve moves a pending loan to disbursed: status change, schedule
// generation and the disbursement ledger entry all commit together or not
// at all. The locked loan row serializes concurrent attempts.
func (u *Usecase) Approve(ctx context.Context, loanID string) (*ApproveDTO, error) {
	var dto *ApproveDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != loan.StatusPending {
			return errs.InvalidStatef("loan %s is %s, approval requires pending", loanID, l.Status)
		}

		// Disbursement must be the first ledger event for the loan.
		n, err := r.Ledger.CountByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if n != 0 {
			return errs.InvalidStatef("loan %s already has %d ledger entries", loanID, n)
		}

		disbursedOn := u.now().Truncate(24 * time.Hour)
		sched, err := amortization.Generate(l.Principal, l.InterestRate, l.TermMonths, disbursedOn)
		if err != nil {
			return err
		}

		l.Status = loan.StatusDisbursed
		l.DisbursedOn = &disbursedOn
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		ins := make([]repayment.Installment, 0, len(sched.Lines))
		for _, line := range sched.Lines {
			ins = append(ins, repayment.Installment{
				InstallmentID: id.NewID32(),
				LoanID:        l.ID,
				Sequence:      line.Sequence,
				DueDate:       line.DueDate,
				AmountDue:     line.AmountDue,
				Status:        repayment.StatusPending,
			})
		}
		if err := r.Installments.CreateBatch(ctx, ins); err != nil {
			return err
		}

		entry := &ledger.Entry{
			EntryID:      id.NewID32(),
			LoanID:       l.ID,
			Type:         ledger.TypeDisbursement,
			Amount:       l.Principal,
			BalanceAfter: l.Principal,
		}
		if err := r.Ledger.Append(ctx, entry); err != nil {
			return err
		}

		dto = &ApproveDTO{
			LoanID:         l.LoanID,
			Status:         string(l.Status),
			DisbursedOn:    disbursedOn,
			MonthlyPayment: sched.Payment,
			TotalDue:       sched.TotalDue,
			Outstanding:    entry.BalanceAfter,
		}
		for _, in := range ins {
			dto.Schedule = append(dto.Schedule, InstallmentDTO{
				InstallmentID: in.InstallmentID,
				Sequence:      in.Sequence,
				DueDate:       in.DueDate,
				AmountDue:     in.AmountDue,
				PaidAmount:    in.PaidAmount,
				Status:        string(in.Status),
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("loan %s", loanID)
		}
		return nil, err
	}
	return dto, nil
}

// Reject moves a pending loan to rejected. No ledger effect.
func (u *Usecase) Reject(ctx context.Context, loanID string) (*RejectDTO, error) {
	var dto *RejectDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != loan.StatusPending {
			return errs.InvalidStatef("loan %s is %s, rejection requires pending", loanID, l.Status)
		}
		l.Status = loan.StatusRejected
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = &RejectDTO{LoanID: l.LoanID, Status: string(l.Status)}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("loan %s", loanID)
		}
		return nil, err
	}
	return dto, nil
}
