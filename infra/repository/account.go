package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an AccountRepository bound to the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func accountToDomain(m *Account) (*account.Account, error) {
	return account.New().
		WithID(m.ID).
		WithOwner(m.OwnerID).
		WithName(m.Name).
		WithType(account.Type(m.Type)).
		WithBalance(m.Balance).
		WithCurrency(currency.Code(m.Currency)).
		WithDescription(m.Description).
		WithDefault(m.IsDefault).
		WithGoalLink(m.GoalID, m.IsGoalAccount).
		WithCreatedAt(m.CreatedAt).
		WithUpdatedAt(m.UpdatedAt).
		Build()
}

func accountToModel(a *account.Account) *Account {
	return &Account{
		ID:            a.ID,
		OwnerID:       a.OwnerID,
		Name:          a.Name,
		Type:          string(a.Type),
		Balance:       a.Balance.Amount(),
		Currency:      a.Currency().String(),
		Description:   a.Description,
		IsDefault:     a.IsDefault,
		GoalID:        a.GoalID,
		IsGoalAccount: a.IsGoalAccount,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (r *accountRepository) get(ctx context.Context, ownerID, id uuid.UUID, lock bool) (*account.Account, error) {
	var m Account
	q := r.db.WithContext(ctx)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	result := q.Where("id = ? AND owner_id = ?", id, ownerID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountToDomain(&m)
}

func (r *accountRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (*account.Account, error) {
	return r.get(ctx, ownerID, id, false)
}

func (r *accountRepository) GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*account.Account, error) {
	return r.get(ctx, ownerID, id, true)
}

func (r *accountRepository) List(ctx context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	var models []Account
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	accounts := make([]*account.Account, 0, len(models))
	for i := range models {
		a, err := accountToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	return r.db.WithContext(ctx).Create(accountToModel(a)).Error
}

func (r *accountRepository) Update(ctx context.Context, a *account.Account) error {
	m := accountToModel(a)
	m.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ? AND owner_id = ?", a.ID, a.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&Account{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}
