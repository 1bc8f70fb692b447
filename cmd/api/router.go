package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"selleradmin-backend/internal/shared/middleware"
	"selleradmin-backend/pkg/container"
)

// SetupRouter mounts all routes under /api/v1. Auth endpoints are
// public; everything touching seller data requires a session token.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

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
		setupSellerRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", c.AccountHandler.SignUp)
		auth.POST("/signin", c.AccountHandler.SignIn)
	}
}

func setupSellerRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sellers := v1.Group("/sellers")
	sellers.Use(middleware.Auth(c.JWTManager))
	{
		sellers.GET("", c.SellerHandler.ListSellers)
		sellers.GET("/:id", c.SellerHandler.GetSeller)
		sellers.PUT("/:id", c.SellerHandler.UpdateSeller)
		sellers.PATCH("/:id/status", c.SellerHandler.UpdateShopStatus)
		sellers.GET("/:id/status-history", c.SellerHandler.StatusHistory)
	}

	categories := v1.Group("/seller-categories")
	categories.Use(middleware.Auth(c.JWTManager))
	{
		categories.GET("", c.SellerHandler.ListCategories)
	}
}

func healthCheckHandler(app *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   app.Config.App.Version,
		}

		dbStatus := "ok"
		if app.DB == nil || app.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := app.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if app.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := app.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
