package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okiprasetya/user-management-api/internal/container"
	handlers "github.com/okiprasetya/user-management-api/internal/interface/http"
	"github.com/okiprasetya/user-management-api/internal/interface/middleware"
	"github.com/okiprasetya/user-management-api/pkg/helpers"
)

// UserModule wires the token-gated user CRUD routes.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	// Softer per-IP limiter plus a per-user limiter on all protected routes
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.GET("/users", m.Handler.List)
		auth.GET("/users/:id", m.Handler.Get)
		auth.POST("/users", m.Handler.Create)
		auth.PUT("/users/:id", m.Handler.Update)
		auth.DELETE("/users/:id", m.Handler.Delete)
	}
}
