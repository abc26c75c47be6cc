package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanledger-backend/internal/usecase/report"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Dashboard(c echo.Context) error {
	dto, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
