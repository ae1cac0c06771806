package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/okiprasetya/user-management-api/internal/application"
	"github.com/okiprasetya/user-management-api/internal/interface/middleware"
	"github.com/okiprasetya/user-management-api/internal/policy"
	"github.com/okiprasetya/user-management-api/pkg/response"
	"github.com/okiprasetya/user-management-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Policy policy.Access
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, access policy.Access, logger *logrus.Logger) *UserHandler {
	if access == nil {
		access = policy.AllowAny
	}
	return &UserHandler{Svc: svc, Policy: access, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,uname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type updateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Username *string `json:"username" binding:"omitempty,uname"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,pwd"`
}

func targetID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}

// allowed applies the configured ownership policy to a target id.
func (h *UserHandler) allowed(c *gin.Context, id int64) bool {
	if h.Policy(c.GetInt64(middleware.CtxUserIDKey), id) {
		return true
	}
	response.Error(c, http.StatusForbidden, "forbidden")
	return false
}

// List GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		translate(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Get all users", users)
}

// Get GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := targetID(c)
	if !ok || !h.allowed(c, id) {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", id))
			return
		}
		translate(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("Get user with ID %d", id), u)
}

// Create POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithFields(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.RegisterInput{
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

// Update PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := targetID(c)
	if !ok || !h.allowed(c, id) {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithFields(c, http.StatusBadRequest, "Validation failed", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), id, application.UpdateInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		translate(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("User %d updated successfully", u.ID), u)
}

// Delete DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := targetID(c)
	if !ok || !h.allowed(c, id) {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", id))
			return
		}
		translate(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("User with ID %d successfully deleted", id))
}
