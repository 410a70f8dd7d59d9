package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idealink-backend/internal/shared/middleware"
	"idealink-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupIdeaRoutes(v1, c)
		setupApplicationRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

// ========================================
// IDEA ROUTES
// ========================================
func setupIdeaRoutes(v1 *gin.RouterGroup, c *container.Container) {
	ideas := v1.Group("/ideas")
	{
		ideas.GET("", c.IdeaHandler.List)
		ideas.POST("", c.IdeaHandler.Create)
		ideas.GET("/:id", c.IdeaHandler.GetByID)
		ideas.PATCH("/:id", c.IdeaHandler.Update)
		ideas.DELETE("/:id", c.IdeaHandler.Delete)
	}
}

// ========================================
// APPLICATION ROUTES
// ========================================
func setupApplicationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	applications := v1.Group("/applications")
	{
		applications.POST("", c.ApplicationHandler.Create)
		applications.GET("", c.ApplicationHandler.List)
		applications.PATCH("/:id/status", c.ApplicationHandler.UpdateStatus)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"status":  "unhealthy",
				"error":   err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}
