package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/orderdesk/orderdesk/internal/domain/errors"
	"github.com/orderdesk/orderdesk/internal/server/http/dto"
	"github.com/orderdesk/orderdesk/internal/server/http/middleware"
)

// AuthHandler serves account registration, login and token refresh.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Welcome greets an authenticated caller.
func (h *AuthHandler) Welcome(c *gin.Context) {
	caller := CurrentCaller(c)
	c.JSON(http.StatusOK, gin.H{"message": "hello " + caller.Username})
}

// SignUp registers a new client account.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	isStaff := req.IsStaff != nil && *req.IsStaff
	isActive := req.IsActive == nil || *req.IsActive

	client, err := h.facade.SignUp(c.Request.Context(), req.Username, req.Email, req.Password, isStaff, isActive)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists), errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("signup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewClientResponse(client))
}

// Login authenticates by username or email and issues a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, pair, err := h.facade.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username/email or password"})
			return
		}
		h.logger.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	middleware.SetAuthCookie(c, pair.Access, 0)
	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		TokenType:    "bearer",
	})
}

// Refresh exchanges the bearer refresh token for a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing refresh token"})
		return
	}

	access, err := h.facade.Refresh(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user no longer exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: access, TokenType: "bearer"})
}
