// Package goal implements the Savings Goal Tracker: goal lifecycle, funding
// from a linked account, and explicit progress reduction.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fintrackd/fintrack/pkg/currency"
	"github.com/fintrackd/fintrack/pkg/domain"
	accountdomain "github.com/fintrackd/fintrack/pkg/domain/account"
	goaldomain "github.com/fintrackd/fintrack/pkg/domain/goal"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/mapper"
	"github.com/fintrackd/fintrack/pkg/money"
	"github.com/fintrackd/fintrack/pkg/repository"
	accountsvc "github.com/fintrackd/fintrack/pkg/service/account"
	"github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/google/uuid"
)

// Service provides savings goal operations.
type Service struct {
	uow      repository.UnitOfWork
	recorder *audit.Recorder
	accounts *accountsvc.ListCache
	logger   *slog.Logger
}

// NewService creates the goal service.
func NewService(uow repository.UnitOfWork, recorder *audit.Recorder, accounts *accountsvc.ListCache, logger *slog.Logger) *Service {
	return &Service{uow: uow, recorder: recorder, accounts: accounts, logger: logger}
}

// CreateGoal creates a savings goal. When a funding account is named, the
// goal and the account's back-reference are written in one unit of work.
func (s *Service) CreateGoal(ctx context.Context, create dto.GoalCreate) (*dto.GoalRead, error) {
	log := s.logger.With("ownerID", create.OwnerID, "name", create.Name)

	code := currency.Code(create.Currency)
	if code == "" {
		code = currency.DefaultCode
	}
	target, err := money.New(create.Target, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	g, err := goaldomain.New().
		WithOwner(create.OwnerID).
		WithName(create.Name).
		WithTarget(target.Amount()).
		WithCurrency(target.Currency()).
		WithAccount(create.AccountID).
		WithDeadline(create.Deadline).
		Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		goalRepo, err := uow.GoalRepository()
		if err != nil {
			return err
		}
		if create.AccountID != nil {
			accRepo, err := uow.AccountRepository()
			if err != nil {
				return err
			}
			a, err := accRepo.GetForUpdate(ctx, create.OwnerID, *create.AccountID)
			if err != nil {
				return err
			}
			a.GoalID = &g.ID
			a.IsGoalAccount = true
			if err = accRepo.Update(ctx, a); err != nil {
				return err
			}
		}
		return goalRepo.Create(ctx, g)
	})
	if err != nil {
		log.Error("create goal failed", "error", err)
		return nil, err
	}
	if create.AccountID != nil {
		s.accounts.Invalidate(create.OwnerID)
	}

	if m, err := movement.New(g.OwnerID, movement.GoalCreated,
		fmt.Sprintf("Goal %q created with target %s", g.Name, g.Target)); err == nil {
		m.WithEntity(movement.EntityGoal, g.ID).
			WithAmount(g.Target).
			WithMeta("goal_name", g.Name)
		s.recorder.Record(ctx, m)
	}

	log.Info("goal created", "goalID", g.ID)
	return mapper.GoalToRead(g), nil
}

// GetGoal returns one goal scoped to the owner.
func (s *Service) GetGoal(ctx context.Context, ownerID, id uuid.UUID) (*dto.GoalRead, error) {
	repo, err := s.uow.GoalRepository()
	if err != nil {
		return nil, err
	}
	g, err := repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return mapper.GoalToRead(g), nil
}

// ListGoals returns all of the owner's goals.
func (s *Service) ListGoals(ctx context.Context, ownerID uuid.UUID) ([]dto.GoalRead, error) {
	repo, err := s.uow.GoalRepository()
	if err != nil {
		return nil, err
	}
	goals, err := repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	reads := make([]dto.GoalRead, 0, len(goals))
	for _, g := range goals {
		reads = append(reads, *mapper.GoalToRead(g))
	}
	return reads, nil
}

// UpdateGoal merges the patchable fields. Current amount is not reachable
// here; it only moves through funding and explicit progress reduction.
func (s *Service) UpdateGoal(ctx context.Context, ownerID, id uuid.UUID, update dto.GoalUpdate) (*dto.GoalRead, error) {
	log := s.logger.With("ownerID", ownerID, "goalID", id)

	patch := goaldomain.Patch{
		Name:      update.Name,
		Deadline:  update.Deadline,
		AccountID: update.AccountID,
	}
	if update.Status != nil {
		st := goaldomain.Status(*update.Status)
		patch.Status = &st
	}

	var g *goaldomain.Goal
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.GoalRepository()
		if err != nil {
			return err
		}
		g, err = repo.GetForUpdate(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if update.Target != nil {
			target, err := money.New(*update.Target, g.Currency())
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrValidation, err)
			}
			t := target.Amount()
			patch.Target = &t
		}
		if err = patch.Apply(g); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return repo.Update(ctx, g)
	})
	if err != nil {
		log.Error("update goal failed", "error", err)
		return nil, err
	}

	if m, err := movement.New(ownerID, movement.GoalUpdated,
		fmt.Sprintf("Goal %q updated", g.Name)); err == nil {
		m.WithEntity(movement.EntityGoal, g.ID).WithMeta("goal_name", g.Name)
		s.recorder.Record(ctx, m)
	}

	return mapper.GoalToRead(g), nil
}

// DeleteGoal removes the goal and clears the back-reference on its funding
// account if one is linked. Funds already contributed stay where they are.
func (s *Service) DeleteGoal(ctx context.Context, ownerID, id uuid.UUID) error {
	log := s.logger.With("ownerID", ownerID, "goalID", id)

	var name string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		goalRepo, err := uow.GoalRepository()
		if err != nil {
			return err
		}
		g, err := goalRepo.GetForUpdate(ctx, ownerID, id)
		if err != nil {
			return err
		}
		name = g.Name
		if g.AccountID != nil {
			accRepo, err := uow.AccountRepository()
			if err != nil {
				return err
			}
			a, err := accRepo.GetForUpdate(ctx, ownerID, *g.AccountID)
			if err == nil {
				a.DetachGoal()
				if err = accRepo.Update(ctx, a); err != nil {
					return err
				}
			}
		}
		return goalRepo.Delete(ctx, ownerID, id)
	})
	if err != nil {
		log.Error("delete goal failed", "error", err)
		return err
	}
	s.accounts.Invalidate(ownerID)

	if m, err := movement.New(ownerID, movement.GoalDeleted,
		fmt.Sprintf("Goal %q deleted", name)); err == nil {
		m.WithEntity(movement.EntityGoal, id).WithMeta("goal_name", name)
		s.recorder.Record(ctx, m)
	}

	log.Info("goal deleted")
	return nil
}

// AddFunds moves amount from the goal's linked account into the goal's
// progress. The account debit, its transaction record, and the goal progress
// update land in one unit of work; funding an unlinked goal fails, and an
// underfunded account fails before any write.
func (s *Service) AddFunds(ctx context.Context, ownerID, goalID uuid.UUID, amount float64) (*dto.FundingResult, error) {
	log := s.logger.With("ownerID", ownerID, "goalID", goalID)

	var (
		g            *goaldomain.Goal
		a            *accountdomain.Account
		m            money.Money
		completedNow bool
	)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		goalRepo, err := uow.GoalRepository()
		if err != nil {
			return err
		}
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		g, err = goalRepo.GetForUpdate(ctx, ownerID, goalID)
		if err != nil {
			return err
		}
		if g.AccountID == nil {
			return goaldomain.ErrNoLinkedAccount
		}
		a, err = accRepo.GetForUpdate(ctx, ownerID, *g.AccountID)
		if err != nil {
			return err
		}

		m, err = money.New(amount, a.Currency())
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		if err = a.ValidateDebit(ownerID, m); err != nil {
			return err
		}
		if err = a.ApplyDebit(m); err != nil {
			return err
		}
		completedNow, err = g.AddFunds(m)
		if err != nil {
			return err
		}

		tx, err := accountdomain.NewTransaction(
			ownerID, a.ID, m, a.Balance,
			accountdomain.TransactionDebit, accountdomain.CategoryGoalContribution,
			fmt.Sprintf("contribution to goal %q", g.Name),
		)
		if err != nil {
			return err
		}
		if err = txRepo.Create(ctx, tx); err != nil {
			return err
		}
		if err = accRepo.Update(ctx, a); err != nil {
			return err
		}
		return goalRepo.Update(ctx, g)
	})
	if err != nil {
		log.Error("goal funding failed", "error", err)
		return nil, err
	}
	s.accounts.Invalidate(ownerID)

	if mv, err := movement.New(ownerID, movement.GoalFundsAdded,
		fmt.Sprintf("Added %s to goal %q", m, g.Name)); err == nil {
		mv.WithEntity(movement.EntityGoal, g.ID).
			WithAmount(m).
			WithAccounts(g.AccountID, nil).
			WithMeta("goal_name", g.Name)
		if completedNow {
			mv.WithMeta("goal_completed", "true")
		}
		s.recorder.Record(ctx, mv)
	}

	log.Info("goal funded", "amount", m.String(), "completed", completedNow)
	return &dto.FundingResult{
		GoalID:         g.ID,
		Completed:      completedNow,
		AccountBalance: a.Balance.AmountFloat(),
		GoalCurrent:    g.Current.AmountFloat(),
		Currency:       m.Currency().String(),
	}, nil
}

// ReduceProgress lowers a goal's current amount without moving any account
// money. Progress floors at zero; a completed goal stays completed.
func (s *Service) ReduceProgress(ctx context.Context, ownerID, goalID uuid.UUID, amount float64) (*dto.GoalRead, error) {
	log := s.logger.With("ownerID", ownerID, "goalID", goalID)

	var g *goaldomain.Goal
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.GoalRepository()
		if err != nil {
			return err
		}
		g, err = repo.GetForUpdate(ctx, ownerID, goalID)
		if err != nil {
			return err
		}
		m, err := money.New(amount, g.Currency())
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		if err = g.ReduceProgress(m); err != nil {
			return err
		}
		return repo.Update(ctx, g)
	})
	if err != nil {
		log.Error("reduce goal progress failed", "error", err)
		return nil, err
	}

	if m, err := movement.New(ownerID, movement.GoalUpdated,
		fmt.Sprintf("Progress on goal %q reduced", g.Name)); err == nil {
		m.WithEntity(movement.EntityGoal, g.ID).WithMeta("goal_name", g.Name)
		s.recorder.Record(ctx, m)
	}

	return mapper.GoalToRead(g), nil
}
