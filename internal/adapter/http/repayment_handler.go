package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanledger-backend/internal/usecase/repayment"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler { return &RepaymentHandler{uc: uc} }

// Amount binds as decimal.Decimal, accepting a JSON number or a quoted
// decimal string; sign and scale are checked by the usecase.
type payReq struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *RepaymentHandler) PayInstallment(c echo.Context) error {
	installmentID := c.Param("installment_id")
	if installmentID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing installment_id path param"})
	}
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Pay(c.Request().Context(), repayment.PayInput{
		InstallmentID: installmentID,
		Amount:        req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepaymentHandler) ListInstallments(c echo.Context) error {
	dtos, err := h.uc.ListForLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *RepaymentHandler) GetReceipt(c echo.Context) error {
	dto, err := h.uc.Receipt(c.Request().Context(), c.Param("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
