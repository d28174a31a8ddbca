package repo

import (
	"github.com/GlebRadaev/prizepanda/internal/pg"
	accountrepo "github.com/GlebRadaev/prizepanda/internal/repo/account-repo"
	giftcoderepo "github.com/GlebRadaev/prizepanda/internal/repo/giftcode-repo"
	redemptionrepo "github.com/GlebRadaev/prizepanda/internal/repo/redemption-repo"
	withdrawalrepo "github.com/GlebRadaev/prizepanda/internal/repo/withdrawal-repo"
)

type Repositories struct {
	Account    *accountrepo.Repository
	GiftCode   *giftcoderepo.Repository
	Redemption *redemptionrepo.Repository
	Withdrawal *withdrawalrepo.Repository
	TXManager  pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Account:    accountrepo.New(conn),
		GiftCode:   giftcoderepo.New(conn),
		Redemption: redemptionrepo.New(conn),
		Withdrawal: withdrawalrepo.New(conn),
		TXManager:  txManager,
	}
}
