package app

import (
	"phone_addiction_backend/internal/config"
	"phone_addiction_backend/internal/middleware"
	"phone_addiction_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	router.GET("/health", c.health.HealthCheck)
	router.GET("/about", c.assessment.About)

	limited := router.Group("/")
	limited.Use(a.limiter.Middleware())
	{
		limited.GET("/register", c.auth.RegisterForm)
		limited.POST("/register", c.auth.Register)
		limited.GET("/login", c.auth.LoginForm)
		limited.POST("/login", c.auth.Login)
	}

	router.GET("/logout", middleware.TryAuthMiddleware(cfg, s.tokens), c.auth.Logout)

	// 2. 需要登录的路由
	authGroup := router.Group("/")
	authGroup.Use(middleware.AuthMiddleware(cfg, s.tokens))
	{
		authGroup.GET("/predict", c.assessment.Questionnaire)
		authGroup.POST("/predict", c.assessment.Predict)
		authGroup.GET("/logs", c.assessment.History)
	}
}
