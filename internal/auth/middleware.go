package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/courseteen/server/internal/errors"
	"codeberg.org/courseteen/server/internal/logger"
)

// requires "Authorization: Bearer <key>" matching the configured admin key.
// an empty key disables the check so local setups work without one.
func AdminKeyMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.Next()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			errors.Unauthorized(c, "authorization header required")
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(adminKey)) != 1 {
			logger.FromContext(c.Request.Context()).Warn("rejected admin request",
				"path", c.Request.URL.Path,
				"ip", c.ClientIP(),
			)

			errors.Unauthorized(c, "invalid admin key")
			return
		}

		c.Set("is_admin", true)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
