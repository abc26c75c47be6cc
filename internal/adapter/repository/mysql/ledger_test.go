package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	ledgerDomain "loanledger-backend/internal/domain/ledger"
	"loanledger-backend/pkg/id"
)

func append3(t *testing.T, repo *LedgerRepository, loanID uint64) []ledgerDomain.Entry {
	t.Helper()
	ctx := context.Background()
	seq := []ledgerDomain.Entry{
		{EntryID: id.NewID32(), LoanID: loanID, Type: ledgerDomain.TypeDisbursement, Amount: d("12000"), BalanceAfter: d("12000")},
		{EntryID: id.NewID32(), LoanID: loanID, Type: ledgerDomain.TypeRepayment, Amount: d("-1066.19"), BalanceAfter: d("10933.81")},
		{EntryID: id.NewID32(), LoanID: loanID, Type: ledgerDomain.TypeRepayment, Amount: d("-500"), BalanceAfter: d("10433.81")},
	}
	for i := range seq {
		if err := repo.Append(ctx, &seq[i]); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	return seq
}

func TestLedgerRepository_AppendAndOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	want := append3(t, repo, 7)
	// another loan's entries must not leak in
	if err := repo.Append(ctx, &ledgerDomain.Entry{EntryID: id.NewID32(), LoanID: 8, Type: ledgerDomain.TypeDisbursement, Amount: d("99"), BalanceAfter: d("99")}); err != nil {
		t.Fatalf("Append other: %v", err)
	}

	got, err := repo.ListByLoanID(ctx, 7)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("entries = %d, want 3", len(got))
	}
	for i := range got {
		if got[i].EntryID != want[i].EntryID {
			t.Fatalf("order broken at %d", i)
		}
	}
	if err := ledgerDomain.VerifyChain(got); err != nil {
		t.Fatalf("chain: %v", err)
	}

	latest, err := repo.Latest(ctx, 7)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if !latest.BalanceAfter.Equal(d("10433.81")) {
		t.Fatalf("latest balance = %s", latest.BalanceAfter)
	}

	n, err := repo.CountByLoanID(ctx, 7)
	if err != nil || n != 3 {
		t.Fatalf("count = %d err %v", n, err)
	}
}

func TestLedgerRepository_LatestByLoanIDs(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	append3(t, repo, 7)
	if err := repo.Append(ctx, &ledgerDomain.Entry{EntryID: id.NewID32(), LoanID: 8, Type: ledgerDomain.TypeDisbursement, Amount: d("99"), BalanceAfter: d("99")}); err != nil {
		t.Fatalf("Append other: %v", err)
	}

	// loan 9 has no entries and must simply be absent
	got, err := repo.LatestByLoanIDs(ctx, []uint64{7, 8, 9})
	if err != nil {
		t.Fatalf("LatestByLoanIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	byLoan := make(map[uint64]ledgerDomain.Entry, len(got))
	for _, e := range got {
		byLoan[e.LoanID] = e
	}
	if !byLoan[7].BalanceAfter.Equal(d("10433.81")) {
		t.Fatalf("loan 7 balance = %s", byLoan[7].BalanceAfter)
	}
	if !byLoan[8].BalanceAfter.Equal(d("99")) {
		t.Fatalf("loan 8 balance = %s", byLoan[8].BalanceAfter)
	}

	empty, err := repo.LatestByLoanIDs(ctx, nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty ids: %v %v", empty, err)
	}
}

func TestLedgerRepository_LatestEmpty(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	_, err := repo.Latest(context.Background(), 7)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestLedgerRepository_Receipts(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	e := &ledgerDomain.Entry{EntryID: id.NewID32(), LoanID: 7, Type: ledgerDomain.TypeRepayment, Amount: d("-100"), BalanceAfter: d("900")}
	if err := repo.Append(ctx, e); err != nil {
		t.Fatalf("Append: %v", err)
	}
	num := ledgerDomain.ReceiptNumber(time.Now(), e.ID)
	if err := repo.CreateReceipt(ctx, &ledgerDomain.Receipt{LedgerEntryID: e.ID, Number: num}); err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}

	got, err := repo.GetReceiptByNumber(ctx, num)
	if err != nil {
		t.Fatalf("GetReceiptByNumber: %v", err)
	}
	if got.LedgerEntryID != e.ID {
		t.Fatalf("receipt entry = %d, want %d", got.LedgerEntryID, e.ID)
	}

	if _, err := repo.GetReceiptByNumber(ctx, "REC-0-0"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
