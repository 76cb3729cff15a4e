package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pet-registry-backend/internal/shared/middleware"
	"pet-registry-backend/pkg/container"
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

	router.GET("/", rootHandler(c))
	router.GET("/healthcheck", healthCheckHandler(c))

	setupOwnerRoutes(router, c)
	setupCatRoutes(router, c)

	return router
}

func setupOwnerRoutes(router *gin.Engine, c *container.Container) {
	owners := router.Group("/owners")
	{
		owners.GET("", c.OwnerHandler.List)
		owners.GET("/:id", c.OwnerHandler.GetByID)
		owners.POST("", c.OwnerHandler.Create)
		owners.PUT("/:id", c.OwnerHandler.Update)
		owners.DELETE("/:id", c.OwnerHandler.Delete)
	}
}

func setupCatRoutes(router *gin.Engine, c *container.Container) {
	cats := router.Group("/cats")
	{
		cats.GET("", c.CatHandler.List)
		cats.GET("/:id", c.CatHandler.GetByID)
		cats.POST("", c.CatHandler.Create)
	}
}

// rootHandler reports the service identity.
func rootHandler(appCtx *container.Container) gin.HandlerFunc {
	message := fmt.Sprintf("%s v%s", appCtx.Config.App.Name, appCtx.Config.App.Version)

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// healthCheckHandler answers readiness probes with a trivial round trip
// against the store.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "error connecting to database",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "database is ready",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
