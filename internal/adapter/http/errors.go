package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/errs"
)

// writeError maps domain errors onto HTTP statuses in one place so every
// handler reports the same way. Ledger corruption and unknown errors are
// logged server-side and reported opaquely.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrInvalidState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrTransient):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "temporarily unavailable, please retry"})
	case errors.Is(err, errs.ErrLedgerCorrupt):
		log.Printf("[ERROR] ledger integrity failure on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "ledger integrity failure"})
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
