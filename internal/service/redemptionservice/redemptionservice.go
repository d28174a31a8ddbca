package redemptionservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/pg"
)

var (
	ErrNotFound        = errors.New("gift code not found")
	ErrInactive        = errors.New("gift code is inactive")
	ErrExpired         = errors.New("gift code has expired")
	ErrLimitReached    = errors.New("gift code usage limit reached")
	ErrAlreadyRedeemed = errors.New("gift code already redeemed by this account")
	ErrCodeExists      = errors.New("gift code already exists")
	ErrExpiryInPast    = errors.New("expiry must be in the future")
)

type CodeRepo interface {
	FindByCodeForUpdate(ctx context.Context, code string) (*domain.GiftCode, time.Time, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, code *domain.GiftCode) (*domain.GiftCode, error)
	List(ctx context.Context) ([]domain.GiftCode, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.GiftCode, error)
}

type RedemptionRepo interface {
	Exists(ctx context.Context, accountID, codeID uuid.UUID) (bool, error)
	Create(ctx context.Context, accountID, codeID uuid.UUID) (*domain.Redemption, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.RedemptionDetail, error)
}

type AccountRepo interface {
	Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

type Service struct {
	codeRepo       CodeRepo
	redemptionRepo RedemptionRepo
	accountRepo    AccountRepo
	txManager      pg.TXManager
	now            func() time.Time
}

func New(codeRepo CodeRepo, redemptionRepo RedemptionRepo, accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		codeRepo:       codeRepo,
		redemptionRepo: redemptionRepo,
		accountRepo:    accountRepo,
		txManager:      txManager,
		now:            time.Now,
	}
}

// Redeem consumes one use of code for the account and credits its prize.
// Every check and write happens in one transaction holding the code's row
// lock, so concurrent attempts on the same code are applied one at a time.
func (s *Service) Redeem(ctx context.Context, accountID uuid.UUID, code string) (decimal.Decimal, error) {
	var prize decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		giftCode, now, err := s.codeRepo.FindByCodeForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if err := checkRedeemable(giftCode, now); err != nil {
			return err
		}

		redeemed, err := s.redemptionRepo.Exists(ctx, accountID, giftCode.ID)
		if err != nil {
			return err
		}
		if redeemed {
			return ErrAlreadyRedeemed
		}

		if _, err := s.redemptionRepo.Create(ctx, accountID, giftCode.ID); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrAlreadyRedeemed
			}
			return err
		}

		ok, err := s.codeRepo.IncrementUsage(ctx, giftCode.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrLimitReached
		}

		if err := s.accountRepo.Credit(ctx, accountID, giftCode.PrizeAmount); err != nil {
			return err
		}
		prize = giftCode.PrizeAmount
		return nil
	})
	if err != nil {
		if isRuleViolation(err) {
			zap.L().Info("redemption declined", zap.String("code", code), zap.Stringer("account_id", accountID), zap.Error(err))
		} else {
			zap.L().Error("redemption failed", zap.String("code", code), zap.Stringer("account_id", accountID), zap.Error(err))
		}
		return decimal.Zero, err
	}

	zap.L().Info("gift code redeemed", zap.String("code", code), zap.Stringer("account_id", accountID), zap.String("prize", prize.StringFixed(2)))
	return prize, nil
}

// checkRedeemable applies the code rules in their reporting order.
func checkRedeemable(code *domain.GiftCode, now time.Time) error {
	switch {
	case code == nil:
		return ErrNotFound
	case !code.IsActive:
		return ErrInactive
	case code.ExpiredAt(now):
		return ErrExpired
	case code.Exhausted():
		return ErrLimitReached
	}
	return nil
}

func isRuleViolation(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInactive) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrLimitReached) ||
		errors.Is(err, ErrAlreadyRedeemed)
}

func (s *Service) CreateCode(ctx context.Context, code *domain.GiftCode) (*domain.GiftCode, error) {
	if !code.ExpiresAt.After(s.now()) {
		return nil, ErrExpiryInPast
	}

	created, err := s.codeRepo.Create(ctx, code)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			zap.L().Info("gift code already exists", zap.String("code", code.Code))
			return nil, ErrCodeExists
		}
		zap.L().Error("can't create gift code", zap.Error(err))
		return nil, err
	}

	zap.L().Info("gift code created", zap.String("code", created.Code), zap.Int("usage_limit", created.UsageLimit))
	return created, nil
}

func (s *Service) ListCodes(ctx context.Context) ([]domain.GiftCode, error) {
	codes, err := s.codeRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list gift codes", zap.Error(err))
		return nil, err
	}
	return codes, nil
}

func (s *Service) DeactivateCode(ctx context.Context, id uuid.UUID) (*domain.GiftCode, error) {
	code, err := s.codeRepo.Deactivate(ctx, id)
	if err != nil {
		zap.L().Error("can't deactivate gift code", zap.Error(err))
		return nil, err
	}
	if code == nil {
		return nil, ErrNotFound
	}

	zap.L().Info("gift code deactivated", zap.String("code", code.Code))
	return code, nil
}

func (s *Service) ListRedemptions(ctx context.Context, accountID uuid.UUID) ([]domain.RedemptionDetail, error) {
	redemptions, err := s.redemptionRepo.ListByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("can't list redemptions", zap.Error(err))
		return nil, err
	}
	return redemptions, nil
}
