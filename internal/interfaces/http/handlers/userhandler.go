package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casefile/internal/application/user/usecases"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
	"casefile/internal/shared/utils"
)

type UserHandler struct {
	getUserUC         usecases.GetUserExecutor
	completeProfileUC usecases.CompleteProfileExecutor
	logger            logger.Interface
}

func NewUserHandler(
	getUserUC usecases.GetUserExecutor,
	completeProfileUC usecases.CompleteProfileExecutor,
) *UserHandler {
	return &UserHandler{
		getUserUC:         getUserUC,
		completeProfileUC: completeProfileUC,
		logger:            logger.NewLogger(),
	}
}

// Me handles GET /api/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := currentUserID(c)

	currentUser, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user": NewUserResponse(currentUser),
	})
}

// CompleteProfile handles PUT /api/me/profile
func (h *UserHandler) CompleteProfile(c *gin.Context) {
	var req CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid complete profile request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("display_name is required"))
		return
	}

	updatedUser, err := h.completeProfileUC.Execute(c.Request.Context(), usecases.CompleteProfileCommand{
		UserID:      currentUserID(c),
		DisplayName: req.DisplayName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated successfully", gin.H{
		"user": NewUserResponse(updatedUser),
	})
}

// currentUserID reads the identity set by the auth middleware. Routes using
// this helper must be registered behind RequireAuth.
func currentUserID(c *gin.Context) uint {
	if id, exists := c.Get("user_id"); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
