package routes

import (
	"github.com/gin-gonic/gin"

	loanhandlers "athenaeum/internal/interfaces/http/handlers/loan"
	"athenaeum/internal/interfaces/http/middleware"
)

// LoanRouteConfig holds dependencies for cart and loan routes.
type LoanRouteConfig struct {
	LoanHandler    *loanhandlers.LoanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupLoanRoutes configures the cart and loan routes.
func SetupLoanRoutes(api *gin.RouterGroup, cfg *LoanRouteConfig) {
	cart := api.Group("/cart")
	cart.Use(cfg.AuthMiddleware.RequireAuth())
	{
		cart.GET("", cfg.LoanHandler.GetCart)
		cart.POST("/items", cfg.LoanHandler.AddCartItem)
		cart.PATCH("/items/:id", cfg.LoanHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cfg.LoanHandler.RemoveCartItem)
	}

	loans := api.Group("/loans")
	loans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Specific paths before parameterized ones to avoid route conflicts
		loans.POST("/confirm", cfg.LoanHandler.ConfirmLoan)
		loans.GET("", cfg.LoanHandler.ListLoans)

		loans.POST("/:id/delivery",
			cfg.AuthMiddleware.RequireEmployee(),
			cfg.LoanHandler.RecordDelivery)
		loans.GET("/:id", cfg.LoanHandler.GetLoan)
	}
}
