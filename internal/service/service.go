package service

import (
	"github.com/GlebRadaev/prizepanda/internal/config"
	"github.com/GlebRadaev/prizepanda/internal/handlers/account"
	"github.com/GlebRadaev/prizepanda/internal/handlers/auth"
	"github.com/GlebRadaev/prizepanda/internal/handlers/redemption"
	"github.com/GlebRadaev/prizepanda/internal/handlers/withdrawal"

	pkgauth "github.com/GlebRadaev/prizepanda/pkg/auth"

	"github.com/GlebRadaev/prizepanda/internal/repo"
	accountservice "github.com/GlebRadaev/prizepanda/internal/service/accountservice"
	authservice "github.com/GlebRadaev/prizepanda/internal/service/authservice"
	redemptionservice "github.com/GlebRadaev/prizepanda/internal/service/redemptionservice"
	withdrawalservice "github.com/GlebRadaev/prizepanda/internal/service/withdrawalservice"
)

type Services struct {
	AuthService       auth.Service
	AccountService    account.Service
	RedemptionService redemption.Service
	WithdrawalService withdrawal.Service
	AdminChecker      pkgauth.AdminChecker
}

func New(repo *repo.Repositories, cfg *config.Config, jwtService pkgauth.JWTServiceInterface, revoker pkgauth.Revoker) *Services {
	accountService := accountservice.New(repo.Account, repo.GiftCode, repo.Withdrawal)
	redemptionService := redemptionservice.New(repo.GiftCode, repo.Redemption, repo.Account, repo.TXManager)
	withdrawalService := withdrawalservice.New(repo.Withdrawal, repo.Account, repo.TXManager)
	authService := authservice.New(repo.Account, pkgauth.NewHashService(cfg.PasswordCost), jwtService, revoker, authservice.Options{
		TokenTTL:      cfg.TokenTTL,
		AdminTokenTTL: cfg.AdminTokenTTL,
		AdminPassword: cfg.AdminPassword,
	})

	return &Services{
		AuthService:       authService,
		AccountService:    accountService,
		RedemptionService: redemptionService,
		WithdrawalService: withdrawalService,
		AdminChecker:      accountService,
	}
}
