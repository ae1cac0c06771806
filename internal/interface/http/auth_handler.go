package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/okiprasetya/user-management-api/internal/application"
	"github.com/okiprasetya/user-management-api/pkg/response"
	"github.com/okiprasetya/user-management-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,uname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/v1/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithFields(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		translate(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, "User created successfully", u)
}

// Login POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithFields(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// The two failure branches deliberately keep distinct messages.
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusUnauthorized, "user not found")
		case errors.Is(err, application.ErrWrongPassword):
			response.Error(c, http.StatusUnauthorized, "wrong password")
		default:
			translate(c, h.Logger, err)
		}
		return
	}
	response.Success(c, http.StatusOK, "Login successful", res)
}
