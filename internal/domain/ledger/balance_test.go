package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"loanledger-backend/internal/domain/errs"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func chain(amounts ...string) []Entry {
	out := make([]Entry, 0, len(amounts))
	run := decimal.Zero
	for i, a := range amounts {
		run = run.Add(d(a))
		out = append(out, Entry{
			EntryID:      string(rune('a' + i)),
			Type:         TypeRepayment,
			Amount:       d(a),
			BalanceAfter: run,
		})
	}
	return out
}

func TestRecompute_EmptyLedgerIsZero(t *testing.T) {
	if got := Recompute(nil); !got.IsZero() {
		t.Fatalf("got %s, want 0", got)
	}
}

func TestRecompute_MatchesLastBalanceAfter(t *testing.T) {
	entries := chain("12000", "-1066.19", "-500", "-1066.19")
	got := Recompute(entries)
	if want := entries[len(entries)-1].BalanceAfter; !got.Equal(want) {
		t.Fatalf("recomputed %s, last balance_after %s", got, want)
	}
	if !got.Equal(d("9367.62")) {
		t.Fatalf("recomputed %s, want 9367.62", got)
	}
}

func TestVerifyChain_OK(t *testing.T) {
	if err := VerifyChain(chain("12000", "-1066.19", "-1066.19")); err != nil {
		t.Fatalf("VerifyChain: %v", err)
	}
}

func TestVerifyChain_DetectsTamperedSnapshot(t *testing.T) {
	entries := chain("12000", "-1000")
	entries[1].BalanceAfter = d("10999.99")
	err := VerifyChain(entries)
	if !errors.Is(err, errs.ErrLedgerCorrupt) {
		t.Fatalf("err = %v, want ErrLedgerCorrupt", err)
	}
}

func TestVerifyChain_OrderSensitiveSnapshots(t *testing.T) {
	// a then b and b then a end at the same balance through different
	// intermediate snapshots; both chains must verify.
	ab := chain("12000", "-300", "-700")
	ba := chain("12000", "-700", "-300")
	if err := VerifyChain(ab); err != nil {
		t.Fatalf("a,b chain: %v", err)
	}
	if err := VerifyChain(ba); err != nil {
		t.Fatalf("b,a chain: %v", err)
	}
	if !ab[1].BalanceAfter.Equal(d("11700")) || !ba[1].BalanceAfter.Equal(d("11300")) {
		t.Fatalf("intermediate snapshots: %s vs %s", ab[1].BalanceAfter, ba[1].BalanceAfter)
	}
	if !Recompute(ab).Equal(Recompute(ba)) {
		t.Fatalf("final balances differ")
	}
}
