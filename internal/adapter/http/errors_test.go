package http

import (
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"loanledger-backend/internal/domain/errs"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.Validationf("principal must be positive"), stdhttp.StatusBadRequest},
		{"not found", errs.NotFoundf("loan abc"), stdhttp.StatusNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, stdhttp.StatusNotFound},
		{"invalid state", errs.InvalidStatef("loan is rejected"), stdhttp.StatusConflict},
		{"transient", errs.Transientf("deadlock"), stdhttp.StatusServiceUnavailable},
		{"corrupt ledger", errs.Corruptf("balance drift"), stdhttp.StatusInternalServerError},
		{"unknown", errors.New("disk on fire"), stdhttp.StatusInternalServerError},
	}
	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(stdhttp.MethodGet, "/x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := writeError(c, tc.err); err != nil {
				t.Fatalf("writeError returned: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestWriteError_InternalErrorsAreOpaque(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(stdhttp.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = writeError(c, errors.New("dsn user:secret@tcp(db)/loans"))
	if body := rec.Body.String(); strings.Contains(body, "secret") {
		t.Fatalf("internal detail leaked: %s", body)
	}
}
