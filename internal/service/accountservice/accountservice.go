package accountservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/prizepanda/internal/domain"
)

var ErrNotFound = errors.New("account not found")

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Count(ctx context.Context) (int, error)
}

type CodeStats interface {
	CountActive(ctx context.Context) (int, error)
}

type WithdrawalStats interface {
	PendingSummary(ctx context.Context) (domain.PendingSummary, error)
}

type Service struct {
	accountRepo     Repo
	codeStats       CodeStats
	withdrawalStats WithdrawalStats
}

func New(accountRepo Repo, codeStats CodeStats, withdrawalStats WithdrawalStats) *Service {
	return &Service{
		accountRepo:     accountRepo,
		codeStats:       codeStats,
		withdrawalStats: withdrawalStats,
	}
}

func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// IsAdmin reports the stored admin flag; an unknown account is not an admin.
func (s *Service) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return account != nil && account.IsAdmin, nil
}

func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	var overview domain.Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.accountRepo.Count(ctx)
		overview.Accounts = count
		return err
	})
	g.Go(func() error {
		count, err := s.codeStats.CountActive(ctx)
		overview.ActiveCodes = count
		return err
	})
	g.Go(func() error {
		summary, err := s.withdrawalStats.PendingSummary(ctx)
		overview.PendingWithdrawal = summary
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build overview", zap.Error(err))
		return nil, err
	}
	return &overview, nil
}
