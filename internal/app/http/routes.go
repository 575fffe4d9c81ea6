package routes

import (
	"mlmsite-api/config"
	adminapi "mlmsite-api/internal/api/admin"
	authapi "mlmsite-api/internal/api/auth"
	plansapi "mlmsite-api/internal/api/plans"
	"mlmsite-api/internal/app/http/middleware"
	"mlmsite-api/internal/domain/users"
	"mlmsite-api/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, plans *plansapi.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/plans", plans.ListPlans)
	r.POST("/logout", authapi.Logout)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware("password"))
	public.POST("/login", authapi.Login)

	if config.GoogleEnabled() {
		r.GET("/auth/google", authapi.GoogleStart)
		r.GET("/auth/google/callback", authapi.GoogleCallback)
	}

	// Any signed-in account may (re)seed the catalog.
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.POST("/seed-plans", plans.SeedPlans)

	adminOnly := admin.Group("/")
	adminOnly.Use(middleware.RequireRole(users.RoleAdmin))
	adminOnly.GET("/plans/stats", adminapi.GetPlanStats)
	adminOnly.PUT("/plans/:id/home", plans.SetHomePage)
}
