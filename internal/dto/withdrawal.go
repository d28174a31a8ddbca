package dto

import (
	"time"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/pkg/money"
)

type WithdrawRequestDTO struct {
	Amount string `json:"amount" validate:"required,money" example:"25.00"`
	UpiID  string `json:"upiId" validate:"required,notblank,max=255" example:"panda@upi"`
}

type ResolveWithdrawalRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=approved declined" example:"approved"`
}

type WithdrawalResponseDTO struct {
	ID        string    `json:"id" example:"3e2d1c0b-9a8f-4e7d-8c6b-5a4f3e2d1c0b"`
	UserID    string    `json:"userId" example:"5b7d1c9e-8f3a-4d1e-9c55-2f4b8a7e6d10"`
	Amount    string    `json:"amount" example:"25.00"`
	UpiID     string    `json:"upiId" example:"panda@upi"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"createdAt" example:"2024-06-01T12:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-06-01T12:00:00Z"`
}

func NewWithdrawalResponse(w *domain.WithdrawalRequest) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:        w.ID.String(),
		UserID:    w.AccountID.String(),
		Amount:    money.Format(w.Amount),
		UpiID:     w.PayoutAddress,
		Status:    string(w.Status),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func NewWithdrawalListResponse(withdrawals []domain.WithdrawalRequest) []WithdrawalResponseDTO {
	out := make([]WithdrawalResponseDTO, 0, len(withdrawals))
	for i := range withdrawals {
		out = append(out, NewWithdrawalResponse(&withdrawals[i]))
	}
	return out
}

type WithdrawResponseDTO struct {
	Message    string                `json:"message" example:"Withdrawal request submitted successfully"`
	Withdrawal WithdrawalResponseDTO `json:"withdrawal"`
}
