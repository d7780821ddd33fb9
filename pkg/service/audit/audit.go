// Package audit provides the Movement Audit Log service: appending audit
// entries and reading the trail back with keyset pagination.
//
// The log is append-only. Nothing here updates a movement, and the delete
// operation exists only for administrative cleanup; no ledger operation
// calls it.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackd/fintrack/pkg/domain"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/mapper"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/google/uuid"
)

// Service reads and administers the movement audit trail.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates the audit service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Append writes one movement. Unlike Recorder.Record, a failure here is a
// hard error; this is the path for callers that need the write confirmed
// (data migrations, admin tooling).
func (s *Service) Append(ctx context.Context, m *movement.Movement) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	repo, err := s.uow.MovementRepository()
	if err != nil {
		return err
	}
	return repo.Create(ctx, m)
}

// List returns one page of the trail, newest first. The cursor token is
// opaque to callers; an empty token starts at the newest entry. The returned
// page carries the token for the next, strictly older, page. The page size
// defaults to 50 and caps at 100.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, limit int, cursorToken string) (*dto.MovementPage, error) {
	cursor, err := movement.DecodeCursor(cursorToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	repo, err := s.uow.MovementRepository()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	} else if limit > 100 {
		limit = 100
	}
	movements, err := repo.List(ctx, ownerID, limit, cursor)
	if err != nil {
		return nil, err
	}
	return buildPage(movements, limit), nil
}

// ListByType returns the newest movements of one type.
func (s *Service) ListByType(ctx context.Context, ownerID uuid.UUID, t string, limit int) ([]dto.MovementRead, error) {
	mvType := movement.Type(t)
	if !mvType.IsValid() {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, movement.ErrInvalidType)
	}
	repo, err := s.uow.MovementRepository()
	if err != nil {
		return nil, err
	}
	movements, err := repo.ListByType(ctx, ownerID, mvType, limit)
	if err != nil {
		return nil, err
	}
	return toReads(movements), nil
}

// ListByDateRange returns the newest movements within [start, end].
func (s *Service) ListByDateRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time, limit int) ([]dto.MovementRead, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", domain.ErrValidation)
	}
	repo, err := s.uow.MovementRepository()
	if err != nil {
		return nil, err
	}
	movements, err := repo.ListByDateRange(ctx, ownerID, start, end, limit)
	if err != nil {
		return nil, err
	}
	return toReads(movements), nil
}

// DeleteMovement removes one audit entry. Administrative cleanup only.
func (s *Service) DeleteMovement(ctx context.Context, ownerID, id uuid.UUID) error {
	s.logger.Warn("deleting audit movement", "ownerID", ownerID, "movementID", id)
	repo, err := s.uow.MovementRepository()
	if err != nil {
		return err
	}
	return repo.Delete(ctx, ownerID, id)
}

func buildPage(movements []*movement.Movement, limit int) *dto.MovementPage {
	page := &dto.MovementPage{Items: toReads(movements)}
	// A full page means there may be older entries; hand back the position
	// of the last one. A short page exhausts the trail.
	if len(movements) == limit {
		last := movements[len(movements)-1]
		page.NextCursor = movement.CursorFor(last).Encode()
	}
	return page
}

func toReads(movements []*movement.Movement) []dto.MovementRead {
	out := make([]dto.MovementRead, 0, len(movements))
	for _, m := range movements {
		out = append(out, *mapper.MovementToRead(m))
	}
	return out
}
