package audit

import (
	"context"
	"log/slog"

	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/repository"
)

// Recorder is the write side the ledger services use after a mutation
// commits. An append failure is logged and swallowed: the record of money
// moving matters more operationally than the record of having recorded it,
// so a mutation's success is never rolled back or re-reported as failure
// because its audit entry could not be written.
type Recorder struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewRecorder creates a Recorder.
func NewRecorder(uow repository.UnitOfWork, logger *slog.Logger) *Recorder {
	return &Recorder{uow: uow, logger: logger}
}

// Record appends the movement best-effort.
func (r *Recorder) Record(ctx context.Context, m *movement.Movement) {
	repo, err := r.uow.MovementRepository()
	if err != nil {
		r.logger.Error("audit append skipped: movement repository unavailable",
			"type", m.Type, "ownerID", m.OwnerID, "error", err)
		return
	}
	if err := repo.Create(ctx, m); err != nil {
		r.logger.Error("audit append failed; primary mutation already committed",
			"type", m.Type, "ownerID", m.OwnerID, "description", m.Description, "error", err)
	}
}
