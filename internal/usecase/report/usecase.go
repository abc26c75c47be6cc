// Package report computes the dashboard read model by scanning loan and
// ledger state. It owns no ledger logic of its own: balances come from the
// same entry snapshots every other reader uses.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/borrower"
	"loanledger-backend/internal/domain/errs"
	"loanledger-backend/internal/domain/ledger"
	"loanledger-backend/internal/domain/loan"
	"loanledger-backend/internal/domain/repayment"
)

const cacheKey = "reports:dashboard"

type TrendPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type DashboardDTO struct {
	TotalBorrowers     int64            `json:"total_borrowers"`
	TotalLoans         int64            `json:"total_loans"`
	TotalOutstanding   decimal.Decimal  `json:"total_outstanding"`
	StatusDistribution map[string]int64 `json:"status_distribution"`
	RepaymentTrend     []TrendPoint     `json:"repayment_trend"`
	GeneratedAt        time.Time        `json:"generated_at"`
}

type Usecase struct {
	borrowers    borrower.Repository
	loans        loan.Repository
	installments repayment.Repository
	entries      ledger.Repository
	cache        *redis.Client // optional
	cacheTTL     time.Duration
	trendSize    int
}

func NewUsecase(
	borrowers borrower.Repository,
	loans loan.Repository,
	installments repayment.Repository,
	entries ledger.Repository,
	cache *redis.Client,
	cacheTTL time.Duration,
) *Usecase {
	return &Usecase{
		borrowers:    borrowers,
		loans:        loans,
		installments: installments,
		entries:      entries,
		cache:        cache,
		cacheTTL:     cacheTTL,
		trendSize:    10,
	}
}

// Dashboard returns the aggregate stats, served from the redis cache when a
// fresh copy exists. Cache failures degrade to a direct scan.
func (u *Usecase) Dashboard(ctx context.Context) (*DashboardDTO, error) {
	if u.cache != nil {
		if raw, err := u.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var dto DashboardDTO
			if json.Unmarshal(raw, &dto) == nil {
				return &dto, nil
			}
		}
	}

	dto, err := u.scan(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if raw, err := json.Marshal(dto); err == nil {
			if err := u.cache.Set(ctx, cacheKey, raw, u.cacheTTL).Err(); err != nil {
				log.Printf("report: cache set failed: %v", err)
			}
		}
	}
	return dto, nil
}

func (u *Usecase) scan(ctx context.Context) (*DashboardDTO, error) {
	totalBorrowers, err := u.borrowers.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := u.loans.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int64, len(byStatus))
	var totalLoans int64
	for s, n := range byStatus {
		dist[string(s)] = n
		totalLoans += n
	}

	// Outstanding balances exist only for disbursed loans; pending and
	// approved loans are not yet liabilities.
	outstanding := decimal.Zero
	disbursed, err := u.loans.ListByStatus(ctx, loan.StatusDisbursed)
	if err != nil {
		return nil, err
	}
	for i := range disbursed {
		latest, err := u.entries.Latest(ctx, disbursed[i].ID)
		switch {
		case err == nil:
			outstanding = outstanding.Add(latest.BalanceAfter)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// a total computed over a broken chain would under-report
			return nil, errs.Corruptf("disbursed loan %s has an empty ledger", disbursed[i].LoanID)
		default:
			return nil, err
		}
	}

	recent, err := u.installments.RecentPaid(ctx, u.trendSize)
	if err != nil {
		return nil, err
	}
	trend := make([]TrendPoint, 0, len(recent))
	// repository returns newest first; chart wants chronological order
	for i := len(recent) - 1; i >= 0; i-- {
		in := recent[i]
		if in.PaidOn == nil {
			continue
		}
		trend = append(trend, TrendPoint{Date: in.PaidOn.Format("2006-01-02"), Amount: in.PaidAmount})
	}

	return &DashboardDTO{
		TotalBorrowers:     totalBorrowers,
		TotalLoans:         totalLoans,
		TotalOutstanding:   outstanding,
		StatusDistribution: dist,
		RepaymentTrend:     trend,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}
