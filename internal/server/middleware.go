package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/localvocal/localvocal/internal/auth/domain"
	"github.com/localvocal/localvocal/internal/auth/token"
)

const contextClaimsKey = "auth_claims"

// AuthRequired verifies the bearer token and attaches its claims to the
// request. A missing token and a bad token fail differently so clients can
// tell a logged-out state from a stale one.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, err := s.issuer.Verify(raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextClaimsKey, claims)
		c.Next()
	}
}

// RequireArtisan gates artisan-only endpoints. It must run after
// AuthRequired.
func (s *Server) RequireArtisan() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if claims.Role != authdomain.RoleArtisan {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func currentClaims(c *gin.Context) *token.Claims {
	value, ok := c.Get(contextClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
