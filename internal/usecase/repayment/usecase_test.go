package repayment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/errs"
	domainLedger "loanledger-backend/internal/domain/ledger"
	domainLoan "loanledger-backend/internal/domain/loan"
	domainRepay "loanledger-backend/internal/domain/repayment"
	"loanledger-backend/internal/domain/uow"
	"loanledger-backend/internal/testutil/installmentmock"
	"loanledger-backend/internal/testutil/ledgermock"
	"loanledger-backend/internal/testutil/loanmock"
	"loanledger-backend/internal/testutil/uowmock"
)

const (
	loanPublicID  = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	instPublicID  = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	inst2PublicID = "cccccccccccccccccccccccccccccccc"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	loan         *domainLoan.Loan
	installments map[string]*domainRepay.Installment
	ledger       *ledgermock.MemLedger
	uc           *Usecase
}

// a disbursed 12000 loan with two 1066.19 installments and its disbursement
// entry already on the ledger
func newFixture(status domainLoan.Status) *fixture {
	f := &fixture{
		loan: &domainLoan.Loan{
			ID: 7, LoanID: loanPublicID, Principal: d("12000"),
			InterestRate: d("12"), TermMonths: 12, Status: status,
		},
		installments: map[string]*domainRepay.Installment{
			instPublicID:  {ID: 1, InstallmentID: instPublicID, LoanID: 7, Sequence: 1, AmountDue: d("1066.19"), PaidAmount: decimal.Zero, Status: domainRepay.StatusPending},
			inst2PublicID: {ID: 2, InstallmentID: inst2PublicID, LoanID: 7, Sequence: 2, AmountDue: d("1066.19"), PaidAmount: decimal.Zero, Status: domainRepay.StatusPending},
		},
		ledger: &ledgermock.MemLedger{},
	}
	_ = f.ledger.Append(context.Background(), &domainLedger.Entry{
		EntryID: "e0", LoanID: 7, Type: domainLedger.TypeDisbursement,
		Amount: d("12000"), BalanceAfter: d("12000"),
	})

	get := func(ctx context.Context, id string) (*domainRepay.Installment, error) {
		if in, ok := f.installments[id]; ok {
			cp := *in
			return &cp, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	ins := &installmentmock.Repo{
		GetByInstallmentIDFn:          get,
		GetByInstallmentIDForUpdateFn: get,
		SaveFn: func(ctx context.Context, in *domainRepay.Installment) error {
			cp := *in
			f.installments[in.InstallmentID] = &cp
			return nil
		},
		ListByLoanIDFn: func(ctx context.Context, loanID uint64) ([]domainRepay.Installment, error) {
			return []domainRepay.Installment{*f.installments[instPublicID], *f.installments[inst2PublicID]}, nil
		},
	}
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*domainLoan.Loan, error) {
			if loanID != f.loan.LoanID {
				return nil, gorm.ErrRecordNotFound
			}
			return f.loan, nil
		},
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainLoan.Loan, error) {
			if id != f.loan.ID {
				return nil, gorm.ErrRecordNotFound
			}
			return f.loan, nil
		},
		SaveFn: func(ctx context.Context, l *domainLoan.Loan) error { f.loan = l; return nil },
	}
	tx := uowmock.Static(uow.Repos{Loans: loans, Installments: ins, Ledger: f.ledger})
	f.uc = NewUsecase(loans, ins, f.ledger, tx).WithClock(func() time.Time {
		return time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	})
	return f
}

func TestPay_FullInstallment(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)

	dto, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d("1066.19")})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if dto.Installment.Status != string(domainRepay.StatusPaid) {
		t.Fatalf("status = %s, want paid", dto.Installment.Status)
	}
	if !dto.Outstanding.Equal(d("10933.81")) {
		t.Fatalf("outstanding = %s, want 10933.81", dto.Outstanding)
	}
	if dto.ReceiptNumber == "" {
		t.Fatal("no receipt number")
	}
	if len(f.ledger.Entries) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(f.ledger.Entries))
	}
	e := f.ledger.Entries[1]
	if !e.Amount.Equal(d("-1066.19")) || e.Type != domainLedger.TypeRepayment {
		t.Fatalf("entry = %s %s", e.Type, e.Amount)
	}
	if err := domainLedger.VerifyChain(f.ledger.Entries); err != nil {
		t.Fatalf("chain broken: %v", err)
	}
}

func TestPay_PartialThenRemainder(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)

	dto, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d("500")})
	if err != nil {
		t.Fatalf("first Pay: %v", err)
	}
	if dto.Installment.Status != string(domainRepay.StatusPartial) {
		t.Fatalf("status = %s, want partial", dto.Installment.Status)
	}
	if !dto.Outstanding.Equal(d("11500")) {
		t.Fatalf("outstanding = %s, want 11500", dto.Outstanding)
	}

	dto, err = f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d("566.19")})
	if err != nil {
		t.Fatalf("second Pay: %v", err)
	}
	if dto.Installment.Status != string(domainRepay.StatusPaid) {
		t.Fatalf("status = %s, want paid", dto.Installment.Status)
	}
	if !dto.Installment.PaidAmount.Equal(d("1066.19")) {
		t.Fatalf("paid_amount = %s", dto.Installment.PaidAmount)
	}
	if !dto.Outstanding.Equal(d("10933.81")) {
		t.Fatalf("outstanding = %s, want 10933.81", dto.Outstanding)
	}
}

func TestPay_OrderSensitiveSnapshots(t *testing.T) {
	a, b := d("300"), d("700")

	f := newFixture(domainLoan.StatusDisbursed)
	if _, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: a}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: inst2PublicID, Amount: b}); err != nil {
		t.Fatal(err)
	}
	if !f.ledger.Entries[1].BalanceAfter.Equal(d("11700")) || !f.ledger.Entries[2].BalanceAfter.Equal(d("11000")) {
		t.Fatalf("snapshots = %s, %s; want 11700, 11000", f.ledger.Entries[1].BalanceAfter, f.ledger.Entries[2].BalanceAfter)
	}

	g := newFixture(domainLoan.StatusDisbursed)
	if _, err := g.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: b}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.uc.Pay(context.Background(), PayInput{InstallmentID: inst2PublicID, Amount: a}); err != nil {
		t.Fatal(err)
	}
	if !g.ledger.Entries[1].BalanceAfter.Equal(d("11300")) || !g.ledger.Entries[2].BalanceAfter.Equal(d("11000")) {
		t.Fatalf("snapshots = %s, %s; want 11300, 11000", g.ledger.Entries[1].BalanceAfter, g.ledger.Entries[2].BalanceAfter)
	}
}

func TestPay_OverpaymentRecordedInFull(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)

	dto, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d("1500")})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if !dto.Installment.PaidAmount.Equal(d("1500")) {
		t.Fatalf("paid_amount = %s, want 1500 (no clamping on record)", dto.Installment.PaidAmount)
	}
	if dto.Installment.Status != string(domainRepay.StatusPaid) {
		t.Fatalf("status = %s, want paid", dto.Installment.Status)
	}
	if !dto.Outstanding.Equal(d("10500")) {
		t.Fatalf("outstanding = %s, want 10500", dto.Outstanding)
	}
	// no crediting of the next installment
	if !f.installments[inst2PublicID].PaidAmount.IsZero() {
		t.Fatalf("next installment paid_amount = %s, want 0", f.installments[inst2PublicID].PaidAmount)
	}
}

func TestPay_PayoffClosesLoan(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)

	dto, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d("12000")})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if !dto.LoanClosed || f.loan.Status != domainLoan.StatusClosed {
		t.Fatalf("loan not closed: %+v, status %s", dto, f.loan.Status)
	}
	if !dto.Outstanding.IsZero() {
		t.Fatalf("outstanding = %s, want 0", dto.Outstanding)
	}
}

func TestPay_Validation(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)
	for _, amt := range []string{"0", "-10", "100.999"} {
		if _, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d(amt)}); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("amount %s: err = %v, want ErrValidation", amt, err)
		}
	}
	if len(f.ledger.Entries) != 1 {
		t.Fatal("rejected payment reached the ledger")
	}
}

func TestPay_UnknownInstallment(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)
	_, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: "ffffffffffffffffffffffffffffffff", Amount: d("100")})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPay_LoanNotDisbursed(t *testing.T) {
	for _, status := range []domainLoan.Status{domainLoan.StatusPending, domainLoan.StatusClosed, domainLoan.StatusRejected} {
		f := newFixture(status)
		_, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d("100")})
		if !errors.Is(err, errs.ErrInvalidState) {
			t.Fatalf("status %s: err = %v, want ErrInvalidState", status, err)
		}
	}
}

func TestPay_CorruptChainSurfaces(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)
	f.ledger.Entries[0].BalanceAfter = d("11999.99") // tamper

	_, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d("100")})
	if !errors.Is(err, errs.ErrLedgerCorrupt) {
		t.Fatalf("err = %v, want ErrLedgerCorrupt", err)
	}
	if len(f.ledger.Entries) != 1 {
		t.Fatal("payment appended onto a corrupt chain")
	}
}

func TestListForLoan(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)
	out, err := f.uc.ListForLoan(context.Background(), loanPublicID)
	if err != nil {
		t.Fatalf("ListForLoan: %v", err)
	}
	if len(out) != 2 || out[0].Sequence != 1 || out[1].Sequence != 2 {
		t.Fatalf("unexpected list: %+v", out)
	}
	if _, err := f.uc.ListForLoan(context.Background(), "ffffffffffffffffffffffffffffffff"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReceiptLookup(t *testing.T) {
	f := newFixture(domainLoan.StatusDisbursed)
	dto, err := f.uc.Pay(context.Background(), PayInput{InstallmentID: instPublicID, Amount: d("100")})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	rec, err := f.uc.Receipt(context.Background(), dto.ReceiptNumber)
	if err != nil {
		t.Fatalf("Receipt: %v", err)
	}
	if rec.Number != dto.ReceiptNumber {
		t.Fatalf("number = %s, want %s", rec.Number, dto.ReceiptNumber)
	}
	if _, err := f.uc.Receipt(context.Background(), "REC-0-0"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
