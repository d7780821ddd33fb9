package repository

import (
	"context"
	"errors"

	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/fintrackd/fintrack/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userLedgerTypes are the transaction types that make up the user-level
// ledger view, as opposed to the account-scoped debit/credit sub-ledger.
var userLedgerTypes = []string{
	string(account.TransactionIncome),
	string(account.TransactionExpense),
	string(account.TransactionTransfer),
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a TransactionRepository bound to the given session.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func transactionToDomain(m *Transaction) (*account.Transaction, error) {
	code := currency.Code(m.Currency)
	amount, err := money.NewFromSmallestUnit(m.Amount, code)
	if err != nil {
		return nil, err
	}
	balance, err := money.NewFromSmallestUnit(m.Balance, code)
	if err != nil {
		return nil, err
	}
	return account.NewTransactionFromData(
		m.ID, m.OwnerID, m.AccountID,
		amount, balance,
		account.TransactionType(m.Type),
		account.Category(m.Category),
		m.Source,
		m.CounterpartAccountID,
		m.CreatedAt,
	), nil
}

func transactionToModel(t *account.Transaction) *Transaction {
	return &Transaction{
		ID:                   t.ID,
		OwnerID:              t.OwnerID,
		AccountID:            t.AccountID,
		Amount:               t.Amount.Amount(),
		Balance:              t.Balance.Amount(),
		Currency:             t.Amount.Currency().String(),
		Type:                 string(t.Type),
		Category:             string(t.Category),
		Source:               t.Source,
		CounterpartAccountID: t.CounterpartAccountID,
		CreatedAt:            t.CreatedAt,
	}
}

func (r *transactionRepository) Create(ctx context.Context, t *account.Transaction) error {
	return r.db.WithContext(ctx).Create(transactionToModel(t)).Error
}

func (r *transactionRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (*account.Transaction, error) {
	var m Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, account.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionToDomain(&m)
}

func (r *transactionRepository) list(q *gorm.DB, limit int) ([]*account.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	var models []Transaction
	result := q.Order("created_at desc").Limit(limit).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	txs := make([]*account.Transaction, 0, len(models))
	for i := range models {
		t, err := transactionToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func (r *transactionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*account.Transaction, error) {
	q := r.db.WithContext(ctx).
		Where("owner_id = ? AND type IN ?", ownerID, userLedgerTypes)
	return r.list(q, limit)
}

func (r *transactionRepository) ListByAccount(ctx context.Context, ownerID, accountID uuid.UUID, limit int) ([]*account.Transaction, error) {
	q := r.db.WithContext(ctx).
		Where("owner_id = ? AND account_id = ?", ownerID, accountID)
	return r.list(q, limit)
}

func (r *transactionRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return account.ErrTransactionNotFound
	}
	return nil
}
