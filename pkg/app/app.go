// Package app wires the services together behind one container the
// entrypoints share.
package app

import (
	"log/slog"

	"github.com/fintrackd/fintrack/pkg/config"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/fintrackd/fintrack/pkg/service/account"
	"github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/fintrackd/fintrack/pkg/service/auth"
	"github.com/fintrackd/fintrack/pkg/service/goal"
	"github.com/fintrackd/fintrack/pkg/service/ledger"
	"github.com/fintrackd/fintrack/pkg/service/transfer"
)

// Deps holds the infrastructure dependencies the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App bundles the configured services.
type App struct {
	Deps   *Deps
	Config *config.App

	AuthService     *auth.Service
	AccountService  *account.Service
	LedgerService   *ledger.Service
	TransferService *transfer.Service
	GoalService     *goal.Service
	AuditService    *audit.Service
}

// New builds the service graph. All ledger services share one audit recorder
// so movements land in the same trail, and one account list cache so any
// balance write invalidates the owner's cached reads.
func New(deps *Deps, cfg *config.App) *App {
	recorder := audit.NewRecorder(deps.Uow, deps.Logger)
	accounts := account.NewListCache()
	return &App{
		Deps:            deps,
		Config:          cfg,
		AuthService:     auth.NewService(deps.Uow, cfg.Jwt, deps.Logger),
		AccountService:  account.NewService(deps.Uow, recorder, accounts, deps.Logger),
		LedgerService:   ledger.NewService(deps.Uow, recorder, accounts, deps.Logger),
		TransferService: transfer.NewService(deps.Uow, recorder, accounts, deps.Logger),
		GoalService:     goal.NewService(deps.Uow, recorder, accounts, deps.Logger),
		AuditService:    audit.NewService(deps.Uow, deps.Logger),
	}
}
