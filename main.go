package main

import (
	"time"

	"mlmsite-api/config"
	"mlmsite-api/database"
	plansapi "mlmsite-api/internal/api/plans"
	routes "mlmsite-api/internal/app/http"
	"mlmsite-api/internal/infra/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()
	logging.Setup(config.LOG_LEVEL, config.LOG_FORMAT)
	flush := logging.InitSentry(config.SENTRY_DSN, gin.Mode())
	defer flush()

	database.InitDB(config.DB_URL)
	if err := database.EnsureAdmin(database.DB, config.ADMIN_EMAIL, config.ADMIN_PASSWORD); err != nil {
		logrus.WithError(err).Fatal("Failed to bootstrap admin account")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, plansapi.NewGormHandler(database.DB))

	logrus.WithField("port", config.PORT).Info("Server starting")
	if err := r.Run(":" + config.PORT); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
