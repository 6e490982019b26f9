package middleware

import (
	"net/http"
	"strings"

	"github.com/elham715/Exam-System/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminPrefixes lists the route prefixes that require an authenticated
// admin. The gate is prefix data, not per-route branching; everything else
// (exam taking, results, login) stays public.
var AdminPrefixes = []string{
	"/api/v1/admin",
}

// AccessGate intercepts every request and rejects unauthenticated access to
// admin-prefixed paths with 401. Public paths pass through untouched.
func AccessGate(authService *services.AuthService, protectedPrefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		protected := false
		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				protected = true
				break
			}
		}
		if !protected {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		adminID, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}
