package handlers

import (
	"net/http"

	"shiftsync/services/user"
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the display name endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// UserInfoHandler handles GET /user-info.
func (h *UserHandler) UserInfoHandler(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	info, err := h.UserService.GetUserInfo(c.Request.Context(), s.Token)
	if err != nil {
		getLogger(c).Error("Error getting user info", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// SaveNameHandler handles POST /save-name.
func (h *UserHandler) SaveNameHandler(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var input struct {
		FirstName string `json:"firstName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortWithError(c, utils.NewValidationError("First name is required"))
		return
	}
	name, err := h.UserService.SaveName(c.Request.Context(), s.Token, input.FirstName)
	if err != nil {
		getLogger(c).Error("Error saving user name", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "firstName": name})
}
