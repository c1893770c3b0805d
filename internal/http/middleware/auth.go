package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

const CtxKeyUser = "current_user"

// AuthUser is the request-scoped identity derived from the bearer token.
// Handlers read it through CurrentUser instead of re-parsing the token.
type AuthUser struct {
	ID    string
	Email string
	Role  string // employee | customer
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth parses the Authorization bearer token and puts the user on the
// context. Missing or invalid tokens abort with 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			Fail(c, apperr.UnauthorizedErr("Authentication required."))
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")

		claims := &Claims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			Fail(c, apperr.UnauthorizedErr("Invalid or expired token."))
			return
		}

		c.Set(CtxKeyUser, AuthUser{
			ID:    claims.Subject,
			Email: claims.Email,
			Role:  claims.Role,
		})
		c.Next()
	}
}

// RequireEmployee gates the back-office surface: only role=employee passes.
// Customers get 403 regardless of which entity they ask for.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Authentication required."))
			return
		}
		if u.Role != "employee" {
			Fail(c, apperr.ForbiddenErr("Employee role required."))
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(CtxKeyUser)
	if !ok {
		return AuthUser{}, false
	}
	u, ok := v.(AuthUser)
	return u, ok
}
