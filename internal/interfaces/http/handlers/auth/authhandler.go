package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"athenaeum/internal/application/auth/usecases"
	"athenaeum/internal/shared/logger"
	"athenaeum/internal/shared/utils"
)

type AuthHandler struct {
	registerUC    usecases.RegisterExecutor
	loginUC       usecases.LoginExecutor
	confirmUserUC usecases.ConfirmUserExecutor
	logger        logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	confirmUserUC usecases.ConfirmUserExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC:    registerUC,
		loginUC:       loginUC,
		confirmUserUC: confirmUserUC,
		logger:        logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created, pending confirmation")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := LoginResponse{
		Token:              result.Token,
		ExpiresAt:          result.ExpiresAt,
		UserID:             result.UserID,
		Username:           result.Username,
		Role:               result.Role,
		MustChangePassword: result.MustChangePassword,
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// ConfirmUser handles POST /users/:id/confirm
func (h *AuthHandler) ConfirmUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ConfirmUserCommand{UserID: userID}

	if err := h.confirmUserUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User confirmed", nil)
}
