package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "officer-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func authEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.POST("/loans/:loan_id/approve",
		func(c echo.Context) error { return c.JSON(http.StatusOK, map[string]string{"ok": "yes"}) },
		RequireRoles(testSecret, RoleAdmin, RoleLoanOfficer),
	)
	return e
}

func doAuthReq(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/loans/x/approve", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {
	e := authEcho()
	tok := signToken(t, testSecret, RoleLoanOfficer, time.Now().Add(time.Hour))
	rec := doAuthReq(e, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireRoles_WrongRoleIsForbidden(t *testing.T) {
	e := authEcho()
	tok := signToken(t, testSecret, RoleAccountant, time.Now().Add(time.Hour))
	rec := doAuthReq(e, tok)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRoles_MissingTokenIsUnauthorized(t *testing.T) {
	e := authEcho()
	rec := doAuthReq(e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRoles_BadSignatureIsUnauthorized(t *testing.T) {
	e := authEcho()
	tok := signToken(t, []byte("other-secret"), RoleAdmin, time.Now().Add(time.Hour))
	rec := doAuthReq(e, tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRoles_ExpiredTokenIsUnauthorized(t *testing.T) {
	e := authEcho()
	tok := signToken(t, testSecret, RoleAdmin, time.Now().Add(-time.Hour))
	rec := doAuthReq(e, tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
