package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"loanledger-backend/internal/usecase/loantype"
)

type LoanTypeHandler struct{ uc *loantype.Usecase }

func NewLoanTypeHandler(uc *loantype.Usecase) *LoanTypeHandler { return &LoanTypeHandler{uc: uc} }

func (h *LoanTypeHandler) ListLoanTypes(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanTypeHandler) GetLoanType(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be a positive integer"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
