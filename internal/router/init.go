package router

import (
	"github.com/okiprasetya/user-management-api/internal/application"
	"github.com/okiprasetya/user-management-api/internal/container"
	pginfra "github.com/okiprasetya/user-management-api/internal/infrastructure/postgres"
	handlers "github.com/okiprasetya/user-management-api/internal/interface/http"
	"github.com/okiprasetya/user-management-api/internal/policy"
	"github.com/okiprasetya/user-management-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during application startup.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	logger := container.GetLogger()
	cfg := container.GetConfig()

	authSvc := application.NewAuthService(repo, container.GetJWT(), logger)
	userSvc := application.NewUserService(repo, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, policy.FromName(cfg.OwnershipPolicy), logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
