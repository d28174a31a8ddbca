package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID           uuid.UUID       `db:"id"`
	Username     string          `db:"username"`
	PasswordHash string          `db:"password_hash"`
	Balance      decimal.Decimal `db:"balance"`
	Withdrawn    decimal.Decimal `db:"withdrawn"`
	IsAdmin      bool            `db:"is_admin"`
	CreatedAt    time.Time       `db:"created_at"`
}

type GiftCode struct {
	ID          uuid.UUID       `db:"id"`
	Code        string          `db:"code"`
	PrizeAmount decimal.Decimal `db:"prize_amount"`
	UsageLimit  int             `db:"usage_limit"`
	UsedCount   int             `db:"used_count"`
	ExpiresAt   time.Time       `db:"expires_at"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Exhausted reports whether every use of the code has been consumed.
func (c *GiftCode) Exhausted() bool {
	return c.UsedCount >= c.UsageLimit
}

// ExpiredAt reports whether the code is no longer redeemable at now.
// A code is valid strictly before ExpiresAt.
func (c *GiftCode) ExpiredAt(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

type Redemption struct {
	ID         uuid.UUID `db:"id"`
	AccountID  uuid.UUID `db:"account_id"`
	GiftCodeID uuid.UUID `db:"gift_code_id"`
	RedeemedAt time.Time `db:"redeemed_at"`
}

// RedemptionDetail is a redemption joined with the code it consumed.
type RedemptionDetail struct {
	Redemption
	Code        string          `db:"code"`
	PrizeAmount decimal.Decimal `db:"prize_amount"`
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalDeclined WithdrawalStatus = "declined"
)

func (s WithdrawalStatus) Terminal() bool {
	return s == WithdrawalApproved || s == WithdrawalDeclined
}

type WithdrawalRequest struct {
	ID            uuid.UUID        `db:"id"`
	AccountID     uuid.UUID        `db:"account_id"`
	Amount        decimal.Decimal  `db:"amount"`
	PayoutAddress string           `db:"payout_address"`
	Status        WithdrawalStatus `db:"status"`
	CreatedAt     time.Time        `db:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at"`
}

// PendingSummary aggregates withdrawal requests awaiting a decision.
type PendingSummary struct {
	Count int
	Total decimal.Decimal
}

type Overview struct {
	Accounts          int
	ActiveCodes       int
	PendingWithdrawal PendingSummary
}

var ErrNotFound = errors.New("not found")
