package redemptionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	codes       *MockCodeRepo
	redemptions *MockRedemptionRepo
	accounts    *MockAccountRepo
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		codes:       NewMockCodeRepo(ctrl),
		redemptions: NewMockRedemptionRepo(ctrl),
		accounts:    NewMockAccountRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	return New(m.codes, m.redemptions, m.accounts, m.txManager), m
}

func runInTx(m mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRedeem(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	accountID := uuid.New()
	codeID := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	prize := decimal.RequireFromString("10.50")

	validCode := func() *domain.GiftCode {
		return &domain.GiftCode{
			ID:          codeID,
			Code:        "WELCOME",
			PrizeAmount: prize,
			UsageLimit:  3,
			UsedCount:   1,
			ExpiresAt:   now.Add(time.Hour),
			IsActive:    true,
		}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedPrize decimal.Decimal
		expectedError error
		expectErr     bool
	}{
		{
			name: "Successful redemption",
			prepareMock: func() {
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(validCode(), now, nil)
				m.redemptions.EXPECT().Exists(gomock.Any(), accountID, codeID).Return(false, nil)
				m.redemptions.EXPECT().Create(gomock.Any(), accountID, codeID).Return(&domain.Redemption{ID: uuid.New()}, nil)
				m.codes.EXPECT().IncrementUsage(gomock.Any(), codeID).Return(true, nil)
				m.accounts.EXPECT().Credit(gomock.Any(), accountID, prize).Return(nil)
			},
			expectedPrize: prize,
		},
		{
			name: "Code not found",
			prepareMock: func() {
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(nil, now, nil)
			},
			expectedError: ErrNotFound,
			expectErr:     true,
		},
		{
			name: "Inactive code is rejected before expiry and limit",
			prepareMock: func() {
				code := validCode()
				code.IsActive = false
				code.ExpiresAt = now.Add(-time.Hour)
				code.UsedCount = code.UsageLimit
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(code, now, nil)
			},
			expectedError: ErrInactive,
			expectErr:     true,
		},
		{
			name: "Expired code with remaining uses",
			prepareMock: func() {
				code := validCode()
				code.ExpiresAt = now.Add(-time.Minute)
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(code, now, nil)
			},
			expectedError: ErrExpired,
			expectErr:     true,
		},
		{
			name: "Code expiring exactly now is expired",
			prepareMock: func() {
				code := validCode()
				code.ExpiresAt = now
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(code, now, nil)
			},
			expectedError: ErrExpired,
			expectErr:     true,
		},
		{
			name: "Usage limit reached",
			prepareMock: func() {
				code := validCode()
				code.UsedCount = code.UsageLimit
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(code, now, nil)
			},
			expectedError: ErrLimitReached,
			expectErr:     true,
		},
		{
			name: "Already redeemed by account",
			prepareMock: func() {
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(validCode(), now, nil)
				m.redemptions.EXPECT().Exists(gomock.Any(), accountID, codeID).Return(true, nil)
			},
			expectedError: ErrAlreadyRedeemed,
			expectErr:     true,
		},
		{
			name: "Unique constraint reports already redeemed",
			prepareMock: func() {
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(validCode(), now, nil)
				m.redemptions.EXPECT().Exists(gomock.Any(), accountID, codeID).Return(false, nil)
				m.redemptions.EXPECT().Create(gomock.Any(), accountID, codeID).Return(nil, &pgconn.PgError{Code: pg.UniqueViolation})
			},
			expectedError: ErrAlreadyRedeemed,
			expectErr:     true,
		},
		{
			name: "Guarded increment finds no use left",
			prepareMock: func() {
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(validCode(), now, nil)
				m.redemptions.EXPECT().Exists(gomock.Any(), accountID, codeID).Return(false, nil)
				m.redemptions.EXPECT().Create(gomock.Any(), accountID, codeID).Return(&domain.Redemption{}, nil)
				m.codes.EXPECT().IncrementUsage(gomock.Any(), codeID).Return(false, nil)
			},
			expectedError: ErrLimitReached,
			expectErr:     true,
		},
		{
			name: "Credit failure aborts the transaction",
			prepareMock: func() {
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(validCode(), now, nil)
				m.redemptions.EXPECT().Exists(gomock.Any(), accountID, codeID).Return(false, nil)
				m.redemptions.EXPECT().Create(gomock.Any(), accountID, codeID).Return(&domain.Redemption{}, nil)
				m.codes.EXPECT().IncrementUsage(gomock.Any(), codeID).Return(true, nil)
				m.accounts.EXPECT().Credit(gomock.Any(), accountID, prize).Return(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Lookup failure",
			prepareMock: func() {
				runInTx(m)
				m.codes.EXPECT().FindByCodeForUpdate(gomock.Any(), "WELCOME").Return(nil, time.Time{}, errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Transaction cannot start",
			prepareMock: func() {
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("begin transaction: pool closed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Redeem(ctx, accountID, "WELCOME")

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.True(t, result.IsZero())
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expectedPrize.Equal(result))
			}
		})
	}
}

func TestCreateCode(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	newCode := func(expiresAt time.Time) *domain.GiftCode {
		return &domain.GiftCode{
			Code:        "SPRING",
			PrizeAmount: decimal.RequireFromString("5.00"),
			UsageLimit:  10,
			ExpiresAt:   expiresAt,
		}
	}

	tests := []struct {
		name          string
		code          *domain.GiftCode
		prepareMock   func()
		expectedError error
		expectErr     bool
	}{
		{
			name: "Code created",
			code: newCode(now.Add(24 * time.Hour)),
			prepareMock: func() {
				m.codes.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, code *domain.GiftCode) (*domain.GiftCode, error) {
					created := *code
					created.ID = uuid.New()
					created.IsActive = true
					return &created, nil
				})
			},
		},
		{
			name:          "Expiry in the past",
			code:          newCode(now.Add(-time.Second)),
			prepareMock:   func() {},
			expectedError: ErrExpiryInPast,
			expectErr:     true,
		},
		{
			name:          "Expiry equal to now",
			code:          newCode(now),
			prepareMock:   func() {},
			expectedError: ErrExpiryInPast,
			expectErr:     true,
		},
		{
			name: "Duplicate code",
			code: newCode(now.Add(time.Hour)),
			prepareMock: func() {
				m.codes.EXPECT().Create(ctx, gomock.Any()).Return(nil, &pgconn.PgError{Code: pg.UniqueViolation})
			},
			expectedError: ErrCodeExists,
			expectErr:     true,
		},
		{
			name: "Database error",
			code: newCode(now.Add(time.Hour)),
			prepareMock: func() {
				m.codes.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.CreateCode(ctx, tt.code)

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, result.ID)
				assert.True(t, result.IsActive)
			}
		})
	}
}

func TestListCodes(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	m.codes.EXPECT().List(ctx).Return([]domain.GiftCode{{Code: "A"}, {Code: "B"}}, nil)
	codes, err := service.ListCodes(ctx)
	require.NoError(t, err)
	assert.Len(t, codes, 2)

	m.codes.EXPECT().List(ctx).Return(nil, errors.New("database error"))
	codes, err = service.ListCodes(ctx)
	assert.Error(t, err)
	assert.Nil(t, codes)
}

func TestDeactivateCode(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
		expectErr     bool
	}{
		{
			name: "Deactivated",
			prepareMock: func() {
				m.codes.EXPECT().Deactivate(ctx, id).Return(&domain.GiftCode{ID: id, Code: "A"}, nil)
			},
		},
		{
			name: "Unknown code",
			prepareMock: func() {
				m.codes.EXPECT().Deactivate(ctx, id).Return(nil, nil)
			},
			expectedError: ErrNotFound,
			expectErr:     true,
		},
		{
			name: "Database error",
			prepareMock: func() {
				m.codes.EXPECT().Deactivate(ctx, id).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			code, err := service.DeactivateCode(ctx, id)

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.Nil(t, code)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, id, code.ID)
			}
		})
	}
}

func TestListRedemptions(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	accountID := uuid.New()

	m.redemptions.EXPECT().ListByAccount(ctx, accountID).Return([]domain.RedemptionDetail{{Code: "A"}}, nil)
	redemptions, err := service.ListRedemptions(ctx, accountID)
	require.NoError(t, err)
	assert.Len(t, redemptions, 1)

	m.redemptions.EXPECT().ListByAccount(ctx, accountID).Return(nil, errors.New("database error"))
	redemptions, err = service.ListRedemptions(ctx, accountID)
	assert.Error(t, err)
	assert.Nil(t, redemptions)
}
