package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanledger-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// Money fields bind as decimal.Decimal so clients may send either a JSON
// number or a quoted decimal string; scale rules live in the usecase.
type collateralReq struct {
	Type        string          `json:"type" validate:"required"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

type createLoanReq struct {
	BorrowerID   string           `json:"borrower_id"   validate:"required,hex32"`
	LoanTypeID   *uint64          `json:"loan_type_id"  validate:"omitempty,gt=0"`
	Principal    decimal.Decimal  `json:"principal"`
	InterestRate *decimal.Decimal `json:"interest_rate"`
	TermMonths   int              `json:"term_months"   validate:"required,gt=0"`
	Collaterals  []collateralReq  `json:"collaterals"   validate:"omitempty,dive"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := loan.CreateLoanInput{
		BorrowerID:   req.BorrowerID,
		LoanTypeID:   req.LoanTypeID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		TermMonths:   req.TermMonths,
	}
	for _, col := range req.Collaterals {
		in.Collaterals = append(in.Collaterals, loan.CollateralInput{
			Type:        col.Type,
			Value:       col.Value,
			Description: col.Description,
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
