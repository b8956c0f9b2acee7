package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"reserveit/internal/service"
)

// AuthHandler exposes the register and login endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates an AuthHandler instance.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest is the request body of both register and login.
// Emptiness is validated in the service so both absent and blank fields
// produce the same 400.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the success body of register and login. The password is
// never echoed back.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Register: invalid request body")
		ErrorResponse(c, http.StatusBadRequest, service.ErrMissingCredentials.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, UserResponse{ID: user.ID, Username: user.Username})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: invalid request body")
		ErrorResponse(c, http.StatusBadRequest, service.ErrMissingCredentials.Error())
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, UserResponse{ID: user.ID, Username: user.Username})
}
