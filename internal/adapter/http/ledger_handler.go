package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanledger-backend/internal/usecase/ledger"
)

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

func (h *LedgerHandler) GetBalance(c echo.Context) error {
	dto, err := h.uc.Balance(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) ListEntries(c echo.Context) error {
	dtos, err := h.uc.Entries(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
