package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waitline/internal/application/user/usecases"
	"waitline/internal/shared/logger"
	"waitline/internal/shared/utils"
)

type AuthHandler struct {
	registerUC usecases.RegisterExecutor
	loginUC    usecases.LoginExecutor
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		UserID:       result.UserID,
		Email:        result.Email,
		Name:         result.Name,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}
