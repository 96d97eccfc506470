package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	identityContactKey = "identity_contact"
	identityRoleKey    = "identity_role"
)

type identityClaims struct {
	Contact string `json:"contact"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Identity parses an optional bearer token and stashes the caller's contact
// and role for the handlers downstream. A missing or invalid token passes
// through untouched: nothing here rejects a request.
func Identity(secret string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if secret == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.Next()
			return
		}

		var claims identityClaims
		_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil {
			log.Debug("identity token ignored",
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		if claims.Contact != "" {
			c.Set(identityContactKey, claims.Contact)
		}
		if claims.Role != "" {
			c.Set(identityRoleKey, claims.Role)
		}

		c.Next()
	}
}

// IdentityFromCtx returns the caller's contact and role as far as the token
// told us, empty strings otherwise.
func IdentityFromCtx(c *ginext.Context) (contact, role string) {
	if v, ok := c.Get(identityContactKey); ok {
		contact, _ = v.(string)
	}
	if v, ok := c.Get(identityRoleKey); ok {
		role, _ = v.(string)
	}
	return contact, role
}

// AdvisoryAdmin logs non-admin calls on admin routes without blocking them.
// The warn line is the whole feature, enforcement is out of scope.
func AdvisoryAdmin(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, role := IdentityFromCtx(c); role != string(domain.RoleAdmin) {
			log.Warn("non-admin call on admin route",
				logger.String("path", c.Request.URL.Path),
				logger.String("role", role),
				logger.String("ip", c.ClientIP()),
			)
		}

		c.Next()
	}
}
