package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository creates a MovementRepository bound to the given session.
func NewMovementRepository(db *gorm.DB) repository.MovementRepository {
	return &movementRepository{db: db}
}

func movementToDomain(m *Movement) (*movement.Movement, error) {
	mv := &movement.Movement{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Type:          movement.Type(m.Type),
		Description:   m.Description,
		Timestamp:     m.Timestamp,
		EntityID:      m.EntityID,
		EntityKind:    movement.EntityKind(m.EntityKind),
		Currency:      currency.Code(m.Currency),
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Metadata:      m.Metadata,
	}
	if m.Amount != nil {
		amount, err := money.NewFromSmallestUnit(*m.Amount, currency.Code(m.Currency))
		if err != nil {
			return nil, err
		}
		mv.Amount = &amount
	}
	return mv, nil
}

func movementToModel(m *movement.Movement) *Movement {
	model := &Movement{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Type:          string(m.Type),
		Description:   m.Description,
		Timestamp:     m.Timestamp,
		EntityID:      m.EntityID,
		EntityKind:    string(m.EntityKind),
		Currency:      m.Currency.String(),
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Metadata:      m.Metadata,
	}
	if m.Amount != nil {
		amt := m.Amount.Amount()
		model.Amount = &amt
		model.Currency = m.Amount.Currency().String()
	}
	return model
}

// Create validates the movement before writing so a malformed audit record is
// never partially persisted.
func (r *movementRepository) Create(ctx context.Context, m *movement.Movement) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(movementToModel(m)).Error
}

func (r *movementRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (*movement.Movement, error) {
	var m Movement
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, movement.ErrMovementNotFound
		}
		return nil, result.Error
	}
	return movementToDomain(&m)
}

func (r *movementRepository) find(q *gorm.DB, limit int) ([]*movement.Movement, error) {
	if limit <= 0 {
		limit = 50
	}
	var models []Movement
	result := q.Order("timestamp desc, id desc").Limit(limit).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	movements := make([]*movement.Movement, 0, len(models))
	for i := range models {
		m, err := movementToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}

// List pages the audit trail newest first. The cursor is a keyset position:
// entries strictly older than (timestamp, id) are returned, so pages have no
// duplicates and no gaps even when timestamps collide.
func (r *movementRepository) List(ctx context.Context, ownerID uuid.UUID, limit int, cursor *movement.Cursor) ([]*movement.Movement, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if cursor != nil {
		q = q.Where(
			"timestamp < ? OR (timestamp = ? AND id < ?)",
			cursor.Timestamp, cursor.Timestamp, cursor.LastID,
		)
	}
	return r.find(q, limit)
}

func (r *movementRepository) ListByType(ctx context.Context, ownerID uuid.UUID, t movement.Type, limit int) ([]*movement.Movement, error) {
	q := r.db.WithContext(ctx).
		Where("owner_id = ? AND type = ?", ownerID, string(t))
	return r.find(q, limit)
}

func (r *movementRepository) ListByDateRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time, limit int) ([]*movement.Movement, error) {
	q := r.db.WithContext(ctx).
		Where("owner_id = ? AND timestamp >= ? AND timestamp <= ?", ownerID, start, end)
	return r.find(q, limit)
}

// Delete exists for administrative cleanup only. No ledger operation calls it.
func (r *movementRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&Movement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return movement.ErrMovementNotFound
	}
	return nil
}
