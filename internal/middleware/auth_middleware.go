package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/benchtrack/allocation-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// CallerContextKey is the key used to store the authenticated caller in Gin context
const CallerContextKey = "caller"

// AuthMiddleware creates a middleware that validates JWT access tokens
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logrus.WithFields(logrus.Fields{
			"path": c.Request.URL.Path,
			"ip":   c.ClientIP(),
		})

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Auth failed: missing authorization header")
			abortUnauthorized(c, "unauthorized", "Authorization header is required", "MISSING_AUTH_HEADER")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			log.Warn("Auth failed: invalid authorization header format")
			abortUnauthorized(c, "unauthorized", "Invalid authorization header format. Expected: Bearer <token>", "INVALID_AUTH_FORMAT")
			return
		}

		claims, err := jwtService.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, gojwt.ErrTokenExpired) {
				log.WithError(err).Info("Auth failed: token expired")
				abortUnauthorized(c, "token_expired", "Access token has expired. Please refresh your token.", "TOKEN_EXPIRED")
				return
			}
			log.WithError(err).Warn("Auth failed: invalid token")
			abortUnauthorized(c, "invalid_token", "Invalid access token", "INVALID_TOKEN")
			return
		}

		c.Set(CallerContextKey, models.Caller{
			UserID:  claims.UserID,
			LoginID: claims.LoginID,
			Role:    claims.Role,
		})

		c.Next()
	}
}

// RequireRole creates a middleware that checks the caller holds one of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, exists := GetCaller(c)
		if !exists {
			abortUnauthorized(c, "unauthorized", "User context not found. Auth middleware may not be applied.", "MISSING_USER_CONTEXT")
			return
		}

		for _, role := range roles {
			if strings.EqualFold(caller.Role, role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "forbidden",
			"message": "You don't have permission to access this resource",
			"code":    "INSUFFICIENT_PERMISSIONS",
		})
	}
}

// GetCaller retrieves the authenticated caller from Gin context
func GetCaller(c *gin.Context) (models.Caller, bool) {
	value, exists := c.Get(CallerContextKey)
	if !exists {
		return models.Caller{}, false
	}

	caller, ok := value.(models.Caller)
	if !ok {
		return models.Caller{}, false
	}

	return caller, true
}

func abortUnauthorized(c *gin.Context, errorName, message, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   errorName,
		"message": message,
		"code":    code,
	})
}
