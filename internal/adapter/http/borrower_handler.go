package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanledger-backend/internal/usecase/borrower"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type createBorrowerReq struct {
	Name          string   `json:"name"           validate:"required"`
	Address       string   `json:"address"`
	MonthlyIncome *float64 `json:"monthly_income" validate:"omitempty,gte=0,dec2"`
	CreditScore   *int     `json:"credit_score"   validate:"omitempty,gte=0,lte=1000"`
}

func (h *BorrowerHandler) CreateBorrower(c echo.Context) error {
	var req createBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := borrower.CreateBorrowerInput{
		Name:        req.Name,
		Address:     req.Address,
		CreditScore: req.CreditScore,
	}
	if req.MonthlyIncome != nil {
		v := decimal.NewFromFloat(*req.MonthlyIncome)
		in.MonthlyIncome = &v
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BorrowerHandler) GetBorrower(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) ListBorrowers(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
