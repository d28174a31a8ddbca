package dto

import (
	"time"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/pkg/money"
)

// AccountResponseDTO never carries the password hash.
type AccountResponseDTO struct {
	ID        string    `json:"id" example:"5b7d1c9e-8f3a-4d1e-9c55-2f4b8a7e6d10"`
	Username  string    `json:"username" example:"panda"`
	Balance   string    `json:"balance" example:"10.50"`
	Withdrawn string    `json:"withdrawn" example:"5.00"`
	IsAdmin   bool      `json:"isAdmin" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2024-06-01T12:00:00Z"`
}

func NewAccountResponse(a *domain.Account) *AccountResponseDTO {
	return &AccountResponseDTO{
		ID:        a.ID.String(),
		Username:  a.Username,
		Balance:   money.Format(a.Balance),
		Withdrawn: money.Format(a.Withdrawn),
		IsAdmin:   a.IsAdmin,
		CreatedAt: a.CreatedAt,
	}
}

type PendingWithdrawalsDTO struct {
	Count int    `json:"count" example:"2"`
	Total string `json:"total" example:"15.00"`
}

type OverviewResponseDTO struct {
	Accounts           int                   `json:"accounts" example:"42"`
	ActiveCodes        int                   `json:"activeCodes" example:"3"`
	PendingWithdrawals PendingWithdrawalsDTO `json:"pendingWithdrawals"`
}

func NewOverviewResponse(o *domain.Overview) OverviewResponseDTO {
	return OverviewResponseDTO{
		Accounts:    o.Accounts,
		ActiveCodes: o.ActiveCodes,
		PendingWithdrawals: PendingWithdrawalsDTO{
			Count: o.PendingWithdrawal.Count,
			Total: money.Format(o.PendingWithdrawal.Total),
		},
	}
}
