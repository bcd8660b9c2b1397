package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fuzumoe/shoplist-api/internal/logger"
	"github.com/fuzumoe/shoplist-api/internal/middleware"
	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/service"
)

// AuthHandler provides endpoints for authentication operations.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// LoginRequest represents the expected body for login requests.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest represents the expected body for password resets.
type ResetPasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body model.CreateUserInput true "Registration payload"
// @Success      201 {object} map[string]string "registration successful"
// @Failure      400 {object} map[string]string "missing or malformed fields"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input model.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no data was sent"})
		return
	}

	if _, err := h.userService.Register(&input); err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateUser):
			c.JSON(http.StatusAccepted, gin.H{"message": "User already exists. Please login"})
		case errors.Is(err, model.ErrInvalidEmail),
			errors.Is(err, model.ErrShortPassword),
			errors.Is(err, model.ErrUsernameSpaces),
			errors.Is(err, model.ErrBlankField):
			c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		default:
			logger.Log.WithFields(logrus.Fields{"error": err.Error()}).Error("registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while registering user. Try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registration successful"})
}

// Login godoc
// @Summary      Log in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginRequest true "Login payload"
// @Success      200 {object} map[string]string "token issued"
// @Failure      401 {object} map[string]string "bad credentials"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no data was sent"})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password. Try again"})
			return
		}
		logger.Log.WithFields(logrus.Fields{"error": err.Error()}).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while logging in. Try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
	})
}

// Logout godoc
// @Summary      Revoke the presented bearer token
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]string "logout successful"
// @Failure      401 {object} map[string]string "invalid, expired or revoked token"
// @Failure      403 {object} map[string]string "no token presented"
// @Security     JWTAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// The auth middleware has already resolved the token: an already
	// revoked token never reaches this point, it is rejected there with
	// the logged-out message.
	tokenAny, ok := c.Get(middleware.ContextTokenKey)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": service.MsgNoPermission})
		return
	}

	if err := h.authService.Logout(tokenAny.(string)); err != nil {
		switch {
		case errors.Is(err, service.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"message": service.MsgTokenExpired})
		case errors.Is(err, service.ErrTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"message": service.MsgTokenInvalid})
		default:
			logger.Log.WithFields(logrus.Fields{"error": err.Error()}).Error("logout failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while logging out. Try again"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logout successful",
	})
}

// ResetPassword godoc
// @Summary      Change the authenticated user's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body ResetPasswordRequest true "Old and new password"
// @Success      200 {object} map[string]string "password reset"
// @Failure      400 {object} map[string]string "bad shape or weak password"
// @Failure      401 {object} map[string]string "old password mismatch"
// @Security     JWTAuth
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		return
	}

	userIDAny, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": service.MsgNoPermission})
		return
	}
	token, _ := c.Get(middleware.ContextTokenKey)
	tokenString, _ := token.(string)

	err := h.authService.ResetPassword(userIDAny.(uint), tokenString, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password. Try again"})
		case errors.Is(err, model.ErrShortPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "The data you sent was in the wrong structure"})
		default:
			logger.Log.WithFields(logrus.Fields{"error": err.Error()}).Error("password reset failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while resetting password. Try again"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

// RegisterPublicRoutes registers the public auth endpoints.
func (h *AuthHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers the protected auth endpoints.
func (h *AuthHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", h.Logout)
	rg.POST("/auth/reset-password", h.ResetPassword)
}
