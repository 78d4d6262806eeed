// Package app provides application-level wiring and dependency injection
// for the calculator catalog server.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"omnicalc/internal/config"
	"omnicalc/internal/db/repository"
	"omnicalc/internal/service"
)

// Deps holds the external dependencies that main() must provide: database
// handles, config, and the root logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// Services groups all service pointers that the API handler and the UI need.
type Services struct {
	Provision *service.ProvisionService
	Auth      *service.AuthService
	Profile   *service.ProfileService
	Catalog   *service.CatalogService
	Suggest   *service.SuggestionService
}

// App holds the fully-wired application.
type App struct {
	Services Services
}

// New wires repositories and services from the provided deps and seeds the
// calculator catalog.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg

	// Write-pool repositories; reads go through the read pool.
	identityRepo := repository.NewIdentityRepo(deps.WriteDB)
	profileRepo := repository.NewProfileRepo(deps.WriteDB)
	catalogRepo := repository.NewCatalogRepo(deps.WriteDB)
	catalogReadRepo := repository.NewCatalogRepo(deps.ReadDB)

	if err := seedCatalog(ctx, catalogRepo); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	suggestSvc, err := service.NewSuggestionService(ctx, cfg.GeminiAPIKey, deps.Logger.With("component", "suggest"))
	if err != nil {
		return nil, fmt.Errorf("create suggestion service: %w", err)
	}

	return &App{Services: Services{
		Provision: service.NewProvisionService(identityRepo, profileRepo, deps.Logger.With("component", "provision")),
		Auth:      service.NewAuthService(identityRepo, []byte(cfg.SessionSecret), deps.Logger.With("component", "auth")),
		Profile:   service.NewProfileService(identityRepo, profileRepo),
		Catalog:   service.NewCatalogService(catalogReadRepo),
		Suggest:   suggestSvc,
	}}, nil
}
