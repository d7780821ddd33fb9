// Package mapper converts domain entities to their read-optimized DTO shapes.
package mapper

import (
	"github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/domain/goal"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/domain/user"
	"github.com/fintrackd/fintrack/pkg/dto"
)

// AccountToRead maps an Account aggregate to its read DTO.
func AccountToRead(a *account.Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:            a.ID,
		OwnerID:       a.OwnerID,
		Name:          a.Name,
		Type:          string(a.Type),
		Balance:       a.Balance.AmountFloat(),
		Currency:      a.Currency().String(),
		Description:   a.Description,
		IsDefault:     a.IsDefault,
		GoalID:        a.GoalID,
		IsGoalAccount: a.IsGoalAccount,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// TransactionToRead maps a Transaction entity to its read DTO.
func TransactionToRead(t *account.Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:                   t.ID,
		OwnerID:              t.OwnerID,
		AccountID:            t.AccountID,
		Amount:               t.Amount.AmountFloat(),
		Balance:              t.Balance.AmountFloat(),
		Currency:             t.Amount.Currency().String(),
		Type:                 string(t.Type),
		Category:             string(t.Category),
		Source:               t.Source,
		CounterpartAccountID: t.CounterpartAccountID,
		CreatedAt:            t.CreatedAt,
	}
}

// TransactionsToRead maps a slice of transactions, newest-first order preserved.
func TransactionsToRead(txs []*account.Transaction) []dto.TransactionRead {
	out := make([]dto.TransactionRead, 0, len(txs))
	for _, t := range txs {
		out = append(out, *TransactionToRead(t))
	}
	return out
}

// GoalToRead maps a Goal aggregate to its read DTO.
func GoalToRead(g *goal.Goal) *dto.GoalRead {
	return &dto.GoalRead{
		ID:        g.ID,
		OwnerID:   g.OwnerID,
		Name:      g.Name,
		Target:    g.Target.AmountFloat(),
		Current:   g.Current.AmountFloat(),
		Currency:  g.Currency().String(),
		Status:    string(g.Status),
		AccountID: g.AccountID,
		Deadline:  g.Deadline,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// MovementToRead maps a Movement entry to its read DTO.
func MovementToRead(m *movement.Movement) *dto.MovementRead {
	read := &dto.MovementRead{
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
		amt := m.Amount.AmountFloat()
		read.Amount = &amt
	}
	return read
}

// UserToRead maps a User to its read DTO. The password hash is dropped here.
func UserToRead(u *user.User) *dto.UserRead {
	return &dto.UserRead{
		ID:        u.ID,
		Email:     u.Email,
		Names:     u.Names,
		CreatedAt: u.CreatedAt,
	}
}
