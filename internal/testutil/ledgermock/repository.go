package ledgermock

import (
	"context"

	"gorm.io/gorm"

	domain "loanledger-backend/internal/domain/ledger"
)

// Repo is a function-backed mock satisfying ledger.Repository. The zero
// value behaves like an empty ledger.
type Repo struct {
	AppendFn             func(ctx context.Context, e *domain.Entry) error
	ListByLoanIDFn       func(ctx context.Context, loanID uint64) ([]domain.Entry, error)
	LatestFn             func(ctx context.Context, loanID uint64) (*domain.Entry, error)
	LatestByLoanIDsFn    func(ctx context.Context, loanIDs []uint64) ([]domain.Entry, error)
	CountByLoanIDFn      func(ctx context.Context, loanID uint64) (int64, error)
	CreateReceiptFn      func(ctx context.Context, r *domain.Receipt) error
	GetReceiptByNumberFn func(ctx context.Context, number string) (*domain.Receipt, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Entry, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) Latest(ctx context.Context, loanID uint64) (*domain.Entry, error) {
	if m.LatestFn != nil {
		return m.LatestFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) LatestByLoanIDs(ctx context.Context, loanIDs []uint64) ([]domain.Entry, error) {
	if m.LatestByLoanIDsFn != nil {
		return m.LatestByLoanIDsFn(ctx, loanIDs)
	}
	// fall back to per-loan lookups so fixtures only wiring LatestFn still work
	var out []domain.Entry
	for _, id := range loanIDs {
		e, err := m.Latest(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (m *Repo) CountByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountByLoanIDFn != nil {
		return m.CountByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *Repo) CreateReceipt(ctx context.Context, r *domain.Receipt) error {
	if m.CreateReceiptFn != nil {
		return m.CreateReceiptFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetReceiptByNumber(ctx context.Context, number string) (*domain.Receipt, error) {
	if m.GetReceiptByNumberFn != nil {
		return m.GetReceiptByNumberFn(ctx, number)
	}
	return nil, gorm.ErrRecordNotFound
}

// MemLedger is an in-memory append-only ledger for usecase tests that need
// real chaining behavior rather than canned responses.
type MemLedger struct {
	Entries  []domain.Entry
	Receipts []domain.Receipt

	nextID uint64
}

var _ domain.Repository = (*MemLedger)(nil)

func (m *MemLedger) Append(ctx context.Context, e *domain.Entry) error {
	m.nextID++
	e.ID = m.nextID
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *MemLedger) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Entry, error) {
	var out []domain.Entry
	for _, e := range m.Entries {
		if e.LoanID == loanID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemLedger) Latest(ctx context.Context, loanID uint64) (*domain.Entry, error) {
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].LoanID == loanID {
			e := m.Entries[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MemLedger) LatestByLoanIDs(ctx context.Context, loanIDs []uint64) ([]domain.Entry, error) {
	var out []domain.Entry
	for _, id := range loanIDs {
		e, err := m.Latest(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (m *MemLedger) CountByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	for _, e := range m.Entries {
		if e.LoanID == loanID {
			n++
		}
	}
	return n, nil
}

func (m *MemLedger) CreateReceipt(ctx context.Context, r *domain.Receipt) error {
	r.ID = uint64(len(m.Receipts) + 1)
	m.Receipts = append(m.Receipts, *r)
	return nil
}

func (m *MemLedger) GetReceiptByNumber(ctx context.Context, number string) (*domain.Receipt, error) {
	for _, r := range m.Receipts {
		if r.Number == number {
			rc := r
			return &rc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
