package middleware

import (
	"errors"
	"net/http"

	"github.com/acmedash/invoice_dashboard_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates the session
// cookie carrying the dashboard JWT. The dashboard is cookie-session based:
// the login handler sets the cookie, this middleware guards everything behind
// the authenticated area.
func AuthMiddleware(jwtSecret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			logger.Warn("Session cookie missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid session token", "error", err)
			msg := "Invalid session"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Session has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(string(userIDKey), claims.Subject)
		c.Next()
	}
}
