package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/globopersona/marketing-dashboard/internal/config"
	"github.com/globopersona/marketing-dashboard/internal/utils"
)

// RequireAuth gates mutating actions behind a valid session token. A denied
// request is answered with a login-required payload and the guarded action
// is never reached. Listing and deleting stay outside this gate, matching
// the reference behavior.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	if cfg.JWT.Secret == "" {
		log.Fatal("[FATAL] RequireAuth: JWT.Secret is not configured")
	}

	return func(c *gin.Context) {
		const bearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":         "login required",
				"loginRequired": true,
			})
			return
		}

		claims, err := utils.ValidateJWT(authHeader[len(bearerSchema):], cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":         "login required",
				"loginRequired": true,
			})
			return
		}

		userID, ok := utils.UserIDFromClaims(claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":         "login required",
				"loginRequired": true,
			})
			return
		}

		c.Set("userID", userID)
		c.Set("userEmail", claims["email"])
		c.Next()
	}
}
