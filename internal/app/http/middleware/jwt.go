package middleware

import (
	"errors"
	"net/http"
	"strings"

	"mlmsite-api/config"
	"mlmsite-api/database"
	"mlmsite-api/internal/domain/users"
	"mlmsite-api/internal/infra/logging"
	"mlmsite-api/internal/infra/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func unauthorized(c *gin.Context, reason string) {
	logrus.WithFields(logrus.Fields{
		"path":   c.FullPath(),
		"reason": reason,
	}).Debug("session rejected")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// sessionToken reads the session cookie, falling back to a Bearer header.
func sessionToken(c *gin.Context) string {
	if v, err := c.Cookie(config.SESSION_COOKIE); err == nil && v != "" {
		return v
	}
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return strings.TrimSpace(tokenString)
}

// AuthMiddleware requires a valid session belonging to an existing user.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			unauthorized(c, "no session")
			return
		}

		claims, err := session.Parse([]byte(config.JWT_SECRET), tokenString)
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		if database.DB == nil {
			unauthorized(c, "database not initialized")
			return
		}
		var user users.User
		if err := database.DB.WithContext(c.Request.Context()).First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				unauthorized(c, "user not found")
				return
			}
			logging.LogError("session_user_lookup", err, map[string]interface{}{
				"user_id": claims.UserID,
				"path":    c.FullPath(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}

		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("role", user.Role)
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if value != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Next()
	}
}
