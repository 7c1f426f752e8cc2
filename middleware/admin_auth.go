package middleware

import (
	"log"
	"net/http"
	"strings"

	"halachi-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CredentialSource supplies the stored admin password hash. Backed by the
// hotel profile row in production, by a stub in tests.
type CredentialSource interface {
	AdminPasswordHash() (string, error)
}

// AdminAuth gates the /api/admin routes. The password travels in the
// X-Admin-Password header (Authorization is accepted as a fallback for the
// older admin front-end) and is compared against the stored bcrypt hash.
func AdminAuth(creds CredentialSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		password := strings.TrimSpace(c.GetHeader("X-Admin-Password"))
		if password == "" {
			password = strings.TrimSpace(c.GetHeader("Authorization"))
		}
		if password == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		hash, err := creds.AdminPasswordHash()
		if err != nil || hash == "" {
			log.Printf("❌ AdminAuth: cannot load credential hash: %v", err)
			utils.JSONError(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			c.Abort()
			return
		}

		c.Next()
	}
}
