package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casefile/internal/application/user/usecases"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
	"casefile/internal/shared/utils"
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

// Signup handles POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid signup request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("identifier and password are required"))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:    req.Identifier,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "account created successfully", gin.H{
		"user_id": result.UserID,
	})
}

// Signin handles POST /api/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid signin request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("identifier and password are required"))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Identifier,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "signed in successfully", gin.H{
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
		"user":       NewUserResponse(result.User),
	})
}
