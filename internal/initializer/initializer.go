// Package initializer builds the infrastructure dependencies the entrypoints
// share: logger, database connection, migrations, and the unit of work.
package initializer

import (
	"fmt"

	"github.com/fintrackd/fintrack/infra"
	infrarepo "github.com/fintrackd/fintrack/infra/repository"
	"github.com/fintrackd/fintrack/pkg/app"
	"github.com/fintrackd/fintrack/pkg/config"
)

// InitializeDependencies connects the database, runs migrations, and returns
// the shared dependency set.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infrarepo.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &app.Deps{
		Uow:    infrarepo.NewUoW(db),
		Logger: logger,
	}, nil
}
