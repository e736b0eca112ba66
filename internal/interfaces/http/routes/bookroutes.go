package routes

import (
	"github.com/gin-gonic/gin"

	bookhandlers "athenaeum/internal/interfaces/http/handlers/book"
	"athenaeum/internal/interfaces/http/middleware"
)

// BookRouteConfig holds dependencies for catalog routes.
type BookRouteConfig struct {
	BookHandler    *bookhandlers.BookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBookRoutes configures the catalog routes. Reads are open to every
// authenticated user; mutations are restricted to employees.
func SetupBookRoutes(api *gin.RouterGroup, cfg *BookRouteConfig) {
	books := api.Group("/books")
	books.Use(cfg.AuthMiddleware.RequireAuth())
	{
		books.GET("", cfg.BookHandler.ListBooks)
		books.GET("/:id", cfg.BookHandler.GetBook)

		books.POST("",
			cfg.AuthMiddleware.RequireEmployee(),
			cfg.BookHandler.CreateBook)
		books.PUT("/:id",
			cfg.AuthMiddleware.RequireEmployee(),
			cfg.BookHandler.UpdateBook)
		books.DELETE("/:id",
			cfg.AuthMiddleware.RequireEmployee(),
			cfg.BookHandler.DeleteBook)
	}
}
