package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Darpan-10/HUMAN-API/internal/api/handlers"
	"github.com/Darpan-10/HUMAN-API/internal/api/middleware"
)

type Deps struct {
	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	Intent      *handlers.IntentHandler
	Suggestions *handlers.SuggestionHandler
	JWTSecret   string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to Campus Connect API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/register", d.Auth.Register)
	r.POST("/auth/login", d.Auth.Login)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth(d.JWTSecret))

	auth.GET("/profile/me", d.Profile.Me)
	auth.PUT("/profile", d.Profile.Update)
	auth.DELETE("/profile", d.Profile.Delete)

	auth.POST("/intents", d.Intent.Submit)
	auth.GET("/intents", d.Intent.ListMine)
	auth.PATCH("/intents/:intent_id/status", d.Intent.SetStatus)

	auth.GET("/suggestions", d.Suggestions.List)
}
