package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/service"
)

// UserHandler provides endpoints for the authenticated user's own record.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me godoc
// @Summary Get the authenticated user
// @Tags    users
// @Produce json
// @Success 200 {object} model.UserDTO
// @Security JWTAuth
// @Router  /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary Update the authenticated user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body model.UpdateUserInput true "fields"
// @Success 200 {object} model.UserDTO
// @Failure 400 {object} map[string]string "message"
// @Security JWTAuth
// @Router  /users/me [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input model.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no data was sent"})
		return
	}
	if input.Username == nil && input.Name == nil && input.Email == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		return
	}

	user, err := h.userService.Update(userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidEmail),
			errors.Is(err, model.ErrUsernameSpaces),
			errors.Is(err, model.ErrBlankField):
			c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update user"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete the authenticated user and their lists
// @Tags    users
// @Produce json
// @Success 204 "No Content"
// @Security JWTAuth
// @Router  /users/me [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterProtectedRoutes registers the user endpoints.
func (h *UserHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.Me)
	rg.PUT("/users/me", h.Update)
	rg.DELETE("/users/me", h.Delete)
}
