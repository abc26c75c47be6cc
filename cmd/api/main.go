package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanledger-backend/internal/adapter/http"
	"loanledger-backend/internal/adapter/middleware"
	"loanledger-backend/internal/adapter/repository/mysql"
	"loanledger-backend/internal/config"
	borrowerDomain "loanledger-backend/internal/domain/borrower"
	ledgerDomain "loanledger-backend/internal/domain/ledger"
	loanDomain "loanledger-backend/internal/domain/loan"
	typeDomain "loanledger-backend/internal/domain/loantype"
	repayDomain "loanledger-backend/internal/domain/repayment"
	"loanledger-backend/internal/infrastructure/cache"
	"loanledger-backend/internal/infrastructure/db"
	approvalUC "loanledger-backend/internal/usecase/approval"
	borrowerUC "loanledger-backend/internal/usecase/borrower"
	ledgerUC "loanledger-backend/internal/usecase/ledger"
	loanUC "loanledger-backend/internal/usecase/loan"
	loantypeUC "loanledger-backend/internal/usecase/loantype"
	repaymentUC "loanledger-backend/internal/usecase/repayment"
	reportUC "loanledger-backend/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	err = gdb.AutoMigrate(
		&borrowerDomain.Borrower{},
		&typeDomain.LoanType{},
		&loanDomain.Loan{},
		&loanDomain.Collateral{},
		&repayDomain.Installment{},
		&ledgerDomain.Entry{},
		&ledgerDomain.Receipt{},
	)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	borrowers := mysql.NewBorrowerRepository(gdb)
	loanTypes := mysql.NewLoanTypeRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	collaterals := mysql.NewCollateralRepository(gdb)
	installments := mysql.NewInstallmentRepository(gdb)
	entries := mysql.NewLedgerRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := loanTypes.Seed(ctx, typeDomain.Defaults()); err != nil {
		cancel()
		log.Fatalf("seed loan types: %v", err)
	}
	cancel()

	// usecases
	dashTTL := time.Duration(cfg.DashboardTTLSecs) * time.Second
	borrowerUsecase := borrowerUC.NewUsecase(borrowers)
	loantypeUsecase := loantypeUC.NewUsecase(loanTypes)
	loanUsecase := loanUC.NewUsecase(borrowers, loanTypes, loans, collaterals, entries, uow)
	approvalUsecase := approvalUC.NewUsecase(uow)
	repaymentUsecase := repaymentUC.NewUsecase(loans, installments, entries, uow)
	ledgerUsecase := ledgerUC.NewUsecase(loans, entries)
	reportUsecase := reportUC.NewUsecase(borrowers, loans, installments, entries, rdb, dashTTL)

	// handlers
	h := httpadp.NewHandler()
	borrowerHandler := httpadp.NewBorrowerHandler(borrowerUsecase)
	loantypeHandler := httpadp.NewLoanTypeHandler(loantypeUsecase)
	loanHandler := httpadp.NewLoanHandler(loanUsecase)
	approvalHandler := httpadp.NewApprovalHandler(approvalUsecase)
	repaymentHandler := httpadp.NewRepaymentHandler(repaymentUsecase)
	ledgerHandler := httpadp.NewLedgerHandler(ledgerUsecase)
	reportHandler := httpadp.NewReportHandler(reportUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// guard returns role middleware, or nothing when auth is disabled
	guard := func(roles ...string) []echo.MiddlewareFunc {
		if cfg.AuthSecret == "" {
			return nil
		}
		return []echo.MiddlewareFunc{middleware.RequireRoles([]byte(cfg.AuthSecret), roles...)}
	}
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	anyRole := []string{middleware.RoleAdmin, middleware.RoleLoanOfficer, middleware.RoleAccountant}

	e.GET("/health", h.Health)

	e.GET("/loan-types", loantypeHandler.ListLoanTypes, guard(anyRole...)...)
	e.GET("/loan-types/:id", loantypeHandler.GetLoanType, guard(anyRole...)...)

	e.POST("/borrowers", borrowerHandler.CreateBorrower, append(guard(middleware.RoleAdmin, middleware.RoleLoanOfficer), idemp)...)
	e.GET("/borrowers", borrowerHandler.ListBorrowers, guard(anyRole...)...)
	e.GET("/borrowers/:borrower_id", borrowerHandler.GetBorrower, guard(anyRole...)...)

	e.POST("/loans", loanHandler.CreateLoan, append(guard(middleware.RoleAdmin, middleware.RoleLoanOfficer), idemp)...)
	e.GET("/loans", loanHandler.ListLoans, guard(anyRole...)...)
	e.GET("/loans/:loan_id", loanHandler.GetLoan, guard(anyRole...)...)
	e.POST("/loans/:loan_id/approve", approvalHandler.ApproveLoan, append(guard(middleware.RoleAdmin, middleware.RoleLoanOfficer), idemp)...)
	e.POST("/loans/:loan_id/reject", approvalHandler.RejectLoan, append(guard(middleware.RoleAdmin, middleware.RoleLoanOfficer), idemp)...)

	e.GET("/loans/:loan_id/installments", repaymentHandler.ListInstallments, guard(anyRole...)...)
	e.POST("/installments/:installment_id/payments", repaymentHandler.PayInstallment, append(guard(middleware.RoleAdmin, middleware.RoleAccountant), idemp)...)
	e.GET("/receipts/:number", repaymentHandler.GetReceipt, guard(anyRole...)...)

	e.GET("/loans/:loan_id/balance", ledgerHandler.GetBalance, guard(anyRole...)...)
	e.GET("/loans/:loan_id/ledger", ledgerHandler.ListEntries, guard(anyRole...)...)

	e.GET("/reports/dashboard", reportHandler.Dashboard, guard(anyRole...)...)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
