package handlers

import (
	"context"
	"net/http"

	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/benchtrack/allocation-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthOperations is the service surface behind the auth routes
type AuthOperations interface {
	RegisterUser(ctx context.Context, dto *models.RegisterUserDto) (*models.ServiceResponse[models.User], error)
	Login(ctx context.Context, dto *models.LoginDto) (*models.ServiceResponse[models.TokenDto], error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.ServiceResponse[models.TokenDto], error)
	ResetPassword(ctx context.Context, dto *models.ResetPasswordDto) (*models.ServiceResponse[bool], error)
	GetAllSecurityQuestions(ctx context.Context) (*models.ServiceResponse[[]models.SecurityQuestion], error)
	GetUserRoles(ctx context.Context) (*models.ServiceResponse[[]models.UserRole], error)
}

// RefreshTokenRequest represents the request to refresh an access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	service AuthOperations
	logger  logrus.FieldLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthOperations, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.WithField("handler", "auth"),
	}
}

// RegisterRoutes mounts the public auth routes on rg
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/refresh", h.RefreshToken)
	rg.POST("/reset-password", h.ResetPassword)
	rg.GET("/security-questions", h.GetSecurityQuestions)
	rg.GET("/roles", h.GetUserRoles)
}

// RegisterAdminRoutes mounts the account-creation route. rg must already
// require an authenticated Admin since the payload chooses the new user's role.
func (h *AuthHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterUserDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.RegisterUser(c.Request.Context(), &req)
	respond(c, h.logger, http.StatusCreated, resp, err)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err == nil && !resp.Success {
		h.logger.WithFields(logrus.Fields{
			"login_id": req.LoginID,
			"ip":       utils.GetRealIP(c),
		}).Warn("Login rejected")
	}
	respond(c, h.logger, http.StatusOK, resp, err)
}

// RefreshToken handles POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	respond(c, h.logger, http.StatusOK, resp, err)
}

// ResetPassword handles POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordDto
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.ResetPassword(c.Request.Context(), &req)
	respond(c, h.logger, http.StatusOK, resp, err)
}

// GetSecurityQuestions handles GET /api/v1/auth/security-questions
func (h *AuthHandler) GetSecurityQuestions(c *gin.Context) {
	resp, err := h.service.GetAllSecurityQuestions(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}

// GetUserRoles handles GET /api/v1/auth/roles
func (h *AuthHandler) GetUserRoles(c *gin.Context) {
	resp, err := h.service.GetUserRoles(c.Request.Context())
	respond(c, h.logger, http.StatusOK, resp, err)
}
