package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "athenaeum/internal/interfaces/http/handlers/auth"
	"athenaeum/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil if Redis is not configured
}

// SetupAuthRoutes configures authentication and account routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", withRateLimit(cfg.RateLimiter, cfg.AuthHandler.Register)...)
		auth.POST("/login", withRateLimit(cfg.RateLimiter, cfg.AuthHandler.Login)...)
	}

	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.POST("/:id/confirm",
			cfg.AuthMiddleware.RequireAdmin(),
			cfg.AuthHandler.ConfirmUser)
	}
}

func withRateLimit(rl *middleware.RateLimiter, handler gin.HandlerFunc) []gin.HandlerFunc {
	if rl == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{rl.Limit(), handler}
}
