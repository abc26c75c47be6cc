package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const roleClaim = "role"

// Roles understood by the API. Tokens are issued elsewhere; this layer only
// verifies the signature and checks the role claim.
const (
	RoleAdmin       = "admin"
	RoleLoanOfficer = "loan_officer"
	RoleAccountant  = "accountant"
)

type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequireRoles verifies the bearer token with an HS256 secret and admits the
// request only when the token's role is in the allowed set. A missing or bad
// token is 401; a valid token with the wrong role is 403.
func RequireRoles(secret []byte, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request())
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			var claims authClaims
			tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			if _, ok := allowed[claims.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}
			c.Set(roleClaim, claims.Role)
			if claims.Subject != "" {
				c.Set("subject", claims.Subject)
			}
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
