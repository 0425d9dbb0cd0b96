package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"esweb-http-service/internal/domain/services"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/internal/error/response"
	"esweb-http-service/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken pulls the token out of the Authorization header
func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateAdmin guards admin-only routes. Every mutating admin endpoint
// sits behind this middleware; a valid token puts the admin's email into the
// request context as "adminEmail".
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Authorization header is required")
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		email, err := jwtService.ExtractEmail(tokenString)
		if err != nil {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("adminEmail", email)
		c.Next()
	}
}
