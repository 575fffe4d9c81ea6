package auth

import (
	"net/http"
	"strings"
	"time"

	"mlmsite-api/config"
	"mlmsite-api/database"
	"mlmsite-api/internal/domain/users"
	"mlmsite-api/internal/infra/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// setSessionCookie issues a session token for user and stores it in the
// session cookie. The token is also returned for header-based clients.
func setSessionCookie(c *gin.Context, user users.User) (string, error) {
	tokenString, err := session.Issue([]byte(config.JWT_SECRET), user.ID, user.Email, user.Role, config.SESSION_TTL, time.Now())
	if err != nil {
		return "", err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		config.SESSION_COOKIE,
		tokenString,
		int(config.SESSION_TTL.Seconds()),
		"/",
		"",
		config.COOKIE_SECURE,
		true,
	)
	return tokenString, nil
}

// POST /login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	err := database.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Password == nil || *user.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This account uses Google sign-in"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := setSessionCookie(c, user)
	if err != nil {
		logrus.WithError(err).Error("could not create session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	logrus.WithField("user_id", user.ID).Info("user signed in")
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// POST /logout
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SESSION_COOKIE, "", -1, "/", "", config.COOKIE_SECURE, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
