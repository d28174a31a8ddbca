package authservice

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/pg"
	"github.com/GlebRadaev/prizepanda/pkg/auth"
)

var (
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidAdminPassword = errors.New("invalid admin password")
	ErrAccountNotFound      = errors.New("account not found")
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error
}

type Options struct {
	TokenTTL      time.Duration
	AdminTokenTTL time.Duration
	AdminPassword string
}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	revoker     auth.Revoker
	opts        Options
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, revoker auth.Revoker, opts Options) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
		revoker:     revoker,
		opts:        opts,
		now:         time.Now,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	existing, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("username already taken", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	account, err := s.accountRepo.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account registered", zap.String("username", username))
	return account, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if account == nil || !s.hashService.ComparePassword(account.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("account authenticated", zap.String("username", username))
	return account, nil
}

func (s *Service) GenerateToken(accountID uuid.UUID) (string, error) {
	token, err := s.jwtService.GenerateJWT(accountID, false, s.now().Add(s.opts.TokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// ElevateAdmin checks the shared admin password, marks the account as admin
// and issues a short-lived token carrying the admin claim.
func (s *Service) ElevateAdmin(ctx context.Context, accountID uuid.UUID, password string) (string, error) {
	if s.opts.AdminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.opts.AdminPassword)) != 1 {
		zap.L().Info("admin elevation refused", zap.Stringer("account_id", accountID))
		return "", ErrInvalidAdminPassword
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return "", err
	}
	if account == nil {
		return "", ErrAccountNotFound
	}

	if !account.IsAdmin {
		if err := s.accountRepo.SetAdmin(ctx, accountID, true); err != nil {
			zap.L().Error("can't set admin flag", zap.Error(err))
			return "", err
		}
	}

	token, err := s.jwtService.GenerateJWT(accountID, true, s.now().Add(s.opts.AdminTokenTTL))
	if err != nil {
		zap.L().Error("can't generate admin token", zap.Error(err))
		return "", err
	}
	zap.L().Info("admin access granted", zap.String("username", account.Username))
	return token, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.revoker.Revoke(ctx, claims.Id, time.Unix(claims.ExpiresAt, 0)); err != nil {
		zap.L().Error("can't revoke token", zap.Error(err))
		return err
	}
	return nil
}
