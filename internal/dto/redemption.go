package dto

import (
	"time"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/pkg/money"
)

type RedeemRequestDTO struct {
	Code string `json:"code" validate:"required,notblank,max=64" example:"WELCOME2024"`
}

type RedeemResponseDTO struct {
	Message     string `json:"message" example:"Gift code redeemed successfully"`
	PrizeAmount string `json:"prizeAmount" example:"10.50"`
}

type RedemptionResponseDTO struct {
	ID          string    `json:"id" example:"0c1f8f5e-3a0b-4e8b-9d2c-7f6a5b4c3d21"`
	Code        string    `json:"code" example:"WELCOME2024"`
	PrizeAmount string    `json:"prizeAmount" example:"10.50"`
	RedeemedAt  time.Time `json:"redeemedAt" example:"2024-06-01T12:00:00Z"`
}

func NewRedemptionResponse(r domain.RedemptionDetail) RedemptionResponseDTO {
	return RedemptionResponseDTO{
		ID:          r.ID.String(),
		Code:        r.Code,
		PrizeAmount: money.Format(r.PrizeAmount),
		RedeemedAt:  r.RedeemedAt,
	}
}

type CreateGiftCodeRequestDTO struct {
	Code        string    `json:"code" validate:"required,notblank,max=64" example:"WELCOME2024"`
	PrizeAmount string    `json:"prizeAmount" validate:"required,money" example:"10.50"`
	UsageLimit  int       `json:"usageLimit" validate:"required,gt=0,max=2147483647" example:"100"`
	ExpiresAt   time.Time `json:"expiresAt" validate:"required" example:"2030-01-01T00:00:00Z"`
}

type GiftCodeResponseDTO struct {
	ID          string    `json:"id" example:"9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"`
	Code        string    `json:"code" example:"WELCOME2024"`
	PrizeAmount string    `json:"prizeAmount" example:"10.50"`
	UsageLimit  int       `json:"usageLimit" example:"100"`
	UsedCount   int       `json:"usedCount" example:"12"`
	ExpiresAt   time.Time `json:"expiresAt" example:"2030-01-01T00:00:00Z"`
	IsActive    bool      `json:"isActive" example:"true"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-06-01T12:00:00Z"`
}

func NewGiftCodeResponse(c *domain.GiftCode) GiftCodeResponseDTO {
	return GiftCodeResponseDTO{
		ID:          c.ID.String(),
		Code:        c.Code,
		PrizeAmount: money.Format(c.PrizeAmount),
		UsageLimit:  c.UsageLimit,
		UsedCount:   c.UsedCount,
		ExpiresAt:   c.ExpiresAt,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}
