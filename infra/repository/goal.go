package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/domain/goal"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a GoalRepository bound to the given session.
func NewGoalRepository(db *gorm.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

func goalToDomain(m *Goal) (*goal.Goal, error) {
	return goal.New().
		WithID(m.ID).
		WithOwner(m.OwnerID).
		WithName(m.Name).
		WithTarget(m.Target).
		WithCurrent(m.Current).
		WithCurrency(currency.Code(m.Currency)).
		WithStatus(goal.Status(m.Status)).
		WithAccount(m.AccountID).
		WithDeadline(m.Deadline).
		WithCreatedAt(m.CreatedAt).
		WithUpdatedAt(m.UpdatedAt).
		Build()
}

func goalToModel(g *goal.Goal) *Goal {
	return &Goal{
		ID:        g.ID,
		OwnerID:   g.OwnerID,
		Name:      g.Name,
		Target:    g.Target.Amount(),
		Current:   g.Current.Amount(),
		Currency:  g.Currency().String(),
		Status:    string(g.Status),
		AccountID: g.AccountID,
		Deadline:  g.Deadline,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func (r *goalRepository) get(ctx context.Context, ownerID, id uuid.UUID, lock bool) (*goal.Goal, error) {
	var m Goal
	q := r.db.WithContext(ctx)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	result := q.Where("id = ? AND owner_id = ?", id, ownerID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, goal.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalToDomain(&m)
}

func (r *goalRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (*goal.Goal, error) {
	return r.get(ctx, ownerID, id, false)
}

func (r *goalRepository) GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*goal.Goal, error) {
	return r.get(ctx, ownerID, id, true)
}

func (r *goalRepository) List(ctx context.Context, ownerID uuid.UUID) ([]*goal.Goal, error) {
	var models []Goal
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	goals := make([]*goal.Goal, 0, len(models))
	for i := range models {
		g, err := goalToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, g *goal.Goal) error {
	return r.db.WithContext(ctx).Create(goalToModel(g)).Error
}

func (r *goalRepository) Update(ctx context.Context, g *goal.Goal) error {
	m := goalToModel(g)
	m.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&Goal{}).
		Where("id = ? AND owner_id = ?", g.ID, g.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return goal.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) DetachAccount(ctx context.Context, ownerID, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Goal{}).
		Where("owner_id = ? AND account_id = ?", ownerID, accountID).
		Update("account_id", nil).Error
}
