package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "athenaeum/internal/application/auth/usecases"
	bookusecases "athenaeum/internal/application/book/usecases"
	loanusecases "athenaeum/internal/application/loan/usecases"
	"athenaeum/internal/infrastructure/auth"
	"athenaeum/internal/infrastructure/config"
	"athenaeum/internal/infrastructure/persistence/mappers"
	"athenaeum/internal/infrastructure/repository"
	authhandlers "athenaeum/internal/interfaces/http/handlers/auth"
	bookhandlers "athenaeum/internal/interfaces/http/handlers/book"
	loanhandlers "athenaeum/internal/interfaces/http/handlers/loan"
	"athenaeum/internal/interfaces/http/middleware"
	"athenaeum/internal/interfaces/http/routes"
	"athenaeum/internal/shared/clock"
	"athenaeum/internal/shared/logger"
	"athenaeum/internal/shared/utils"
)

// Router wires the repositories, use cases, and handlers behind a Gin engine.
type Router struct {
	engine         *gin.Engine
	db             *gorm.DB
	authHandler    *authhandlers.AuthHandler
	bookHandler    *bookhandlers.BookHandler
	loanHandler    *loanhandlers.LoanHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	allowedOrigins []string
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
// redisClient may be nil; rate limiting is then disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	clk := clock.System()

	userRepo := repository.NewUserRepository(db, mappers.NewUserMapper(), log)
	bookRepo := repository.NewBookRepository(db, mappers.NewBookMapper(), log)
	loanRepo := repository.NewLoanRepository(db, mappers.NewLoanMapper(), userRepo, clk, cfg.Loan.GracePeriodDays, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	authHandler := authhandlers.NewAuthHandler(
		authusecases.NewRegisterUseCase(userRepo, hasher, log),
		authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		authusecases.NewConfirmUserUseCase(userRepo, log),
	)

	bookHandler := bookhandlers.NewBookHandler(
		bookusecases.NewCreateBookUseCase(bookRepo, log),
		bookusecases.NewUpdateBookUseCase(bookRepo, log),
		bookusecases.NewDeleteBookUseCase(bookRepo, log),
		bookusecases.NewGetBookUseCase(bookRepo, log),
		bookusecases.NewListBooksUseCase(bookRepo, log),
	)

	penaltyPerDay := cfg.Loan.PenaltyPerDayEUR
	loanHandler := loanhandlers.NewLoanHandler(
		loanusecases.NewAddItemToCartUseCase(loanRepo, log),
		loanusecases.NewUpdateCartItemUseCase(loanRepo, log),
		loanusecases.NewRemoveCartItemUseCase(loanRepo, log),
		loanusecases.NewGetCartUseCase(loanRepo, log),
		loanusecases.NewConfirmLoanUseCase(loanRepo, log),
		loanusecases.NewListLoansUseCase(loanRepo, clk, penaltyPerDay, log),
		loanusecases.NewGetLoanUseCase(loanRepo, clk, penaltyPerDay, log),
		loanusecases.NewRecordDeliveryUseCase(loanRepo, clk, log),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, 100, 1*time.Minute)
	}

	return &Router{
		engine:         engine,
		db:             db,
		authHandler:    authHandler,
		bookHandler:    bookHandler,
		loanHandler:    loanHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupBookRoutes(api, &routes.BookRouteConfig{
		BookHandler:    r.bookHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupLoanRoutes(api, &routes.LoanRouteConfig{
		LoanHandler:    r.loanHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		r.logger.Errorw("health check failed", "error", err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
