package withdrawalservice

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/pg"
)

// MinimumAmount is the smallest amount a withdrawal may request.
var MinimumAmount = decimal.New(500, -2)

var (
	ErrBelowMinimum         = errors.New("minimum withdrawal amount is 5.00")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidPayoutAddress = errors.New("payout address is required")
	ErrAccountNotFound      = errors.New("account not found")
	ErrNotFound             = errors.New("withdrawal request not found")
	ErrInvalidTransition    = errors.New("withdrawal request is already resolved")
	ErrInvalidDecision      = errors.New("status must be approved or declined")
)

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WithdrawalStatus) (*domain.WithdrawalRequest, error)
	List(ctx context.Context) ([]domain.WithdrawalRequest, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.WithdrawalRequest, error)
	PendingTotal(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}

type AccountRepo interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error)
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	accountRepo    AccountRepo
	txManager      pg.TXManager
}

func New(withdrawalRepo WithdrawalRepo, accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		accountRepo:    accountRepo,
		txManager:      txManager,
	}
}

// Create files a pending withdrawal. The balance is not debited yet, but
// amounts of the account's other pending requests count as reserved.
func (s *Service) Create(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, payoutAddress string) (*domain.WithdrawalRequest, error) {
	if amount.LessThan(MinimumAmount) {
		return nil, ErrBelowMinimum
	}
	payoutAddress = strings.TrimSpace(payoutAddress)
	if payoutAddress == "" {
		return nil, ErrInvalidPayoutAddress
	}

	var created *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		reserved, err := s.withdrawalRepo.PendingTotal(ctx, accountID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(account.Balance.Sub(reserved)) {
			return ErrInsufficientBalance
		}

		created, err = s.withdrawalRepo.Create(ctx, &domain.WithdrawalRequest{
			AccountID:     accountID,
			Amount:        amount,
			PayoutAddress: payoutAddress,
			Status:        domain.WithdrawalPending,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) || errors.Is(err, ErrAccountNotFound) {
			zap.L().Info("withdrawal declined", zap.Stringer("account_id", accountID), zap.Error(err))
		} else {
			zap.L().Error("failed to create withdrawal", zap.Stringer("account_id", accountID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal requested", zap.Stringer("id", created.ID), zap.String("amount", amount.StringFixed(2)))
	return created, nil
}

// Resolve moves a pending request to approved or declined. Approval debits the
// balance in the same transaction; resolved requests never change again.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID, decision domain.WithdrawalStatus) (*domain.WithdrawalRequest, error) {
	if !decision.Terminal() {
		return nil, ErrInvalidDecision
	}

	var resolved *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		request, err := s.withdrawalRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrNotFound
		}
		if request.Status != domain.WithdrawalPending {
			return ErrInvalidTransition
		}

		if decision == domain.WithdrawalApproved {
			ok, err := s.accountRepo.Debit(ctx, request.AccountID, request.Amount)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientBalance
			}
		}

		resolved, err = s.withdrawalRepo.UpdateStatus(ctx, id, decision)
		if err != nil {
			return err
		}
		if resolved == nil {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrInsufficientBalance):
			zap.L().Info("withdrawal resolution declined", zap.Stringer("id", id), zap.Error(err))
		default:
			zap.L().Error("failed to resolve withdrawal", zap.Stringer("id", id), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal resolved", zap.Stringer("id", id), zap.String("status", string(decision)))
	return resolved, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.withdrawalRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.withdrawalRepo.ListByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to list account withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
