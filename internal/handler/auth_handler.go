package handler

import (
	"errors"
	"net/http"

	"gamestore/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required" example:"Ada"`
	LastName  string `json:"lastName" binding:"required" example:"Lovelace"`
	Email     string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password  string `json:"password" binding:"required,min=8" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RefreshInput defines the structure for a token refresh.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// endregion

// AuthHandler serves registration, login, and token refresh.
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler creates an AuthHandler backed by the given service.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new account and returns a token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body  RegisterInput  true  "Registration info"
// @Success      200  {object}  auth.Session
// @Failure      400  {object}  ErrorResponse  "Validation failure or duplicate email"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session, err := h.svc.Register(input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates with email and password and returns a token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body  LoginInput  true  "Login info"
// @Success      200  {object}  auth.Session
// @Failure      400  {object}  ErrorResponse  "Invalid credentials or disabled account"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		case errors.Is(err, auth.ErrAccountDisabled):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Account is disabled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// Refresh godoc
// @Summary      Refresh a session
// @Description  Exchanges a refresh token for a fresh token pair. The used token is revoked.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body  RefreshInput  true  "Refresh token"
// @Success      200  {object}  auth.Session
// @Failure      400  {object}  ErrorResponse  "Unknown, expired, or already used token"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session, err := h.svc.Refresh(input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidRefreshToken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid refresh token"})
		case errors.Is(err, auth.ErrAccountDisabled):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Account is disabled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}
