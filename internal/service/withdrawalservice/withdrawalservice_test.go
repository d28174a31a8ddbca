package withdrawalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWithdrawalRepo, *MockAccountRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	return New(withdrawalRepo, accountRepo, txManager), withdrawalRepo, accountRepo, txManager
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreate(t *testing.T) {
	service, withdrawalRepo, accountRepo, txManager := NewMock(t)
	ctx := context.Background()
	accountID := uuid.New()

	runInTx := func() {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
	}
	account := func(balance string) *domain.Account {
		return &domain.Account{ID: accountID, Balance: d(balance)}
	}

	tests := []struct {
		name          string
		amount        decimal.Decimal
		payout        string
		prepareMock   func()
		expectedError error
		expectErr     bool
	}{
		{
			name:          "Below minimum",
			amount:        d("4.99"),
			payout:        "panda@upi",
			prepareMock:   func() {},
			expectedError: ErrBelowMinimum,
			expectErr:     true,
		},
		{
			name:          "Blank payout address",
			amount:        d("5.00"),
			payout:        "   ",
			prepareMock:   func() {},
			expectedError: ErrInvalidPayoutAddress,
			expectErr:     true,
		},
		{
			name:   "Amount equal to balance",
			amount: d("10.50"),
			payout: " panda@upi ",
			prepareMock: func() {
				runInTx()
				accountRepo.EXPECT().FindByIDForUpdate(gomock.Any(), accountID).Return(account("10.50"), nil)
				withdrawalRepo.EXPECT().PendingTotal(gomock.Any(), accountID).Return(decimal.Zero, nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, wd *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
					assert.Equal(t, "panda@upi", wd.PayoutAddress)
					assert.Equal(t, domain.WithdrawalPending, wd.Status)
					created := *wd
					created.ID = uuid.New()
					return &created, nil
				})
			},
		},
		{
			name:   "Amount exceeds balance",
			amount: d("10.51"),
			payout: "panda@upi",
			prepareMock: func() {
				runInTx()
				accountRepo.EXPECT().FindByIDForUpdate(gomock.Any(), accountID).Return(account("10.50"), nil)
				withdrawalRepo.EXPECT().PendingTotal(gomock.Any(), accountID).Return(decimal.Zero, nil)
			},
			expectedError: ErrInsufficientBalance,
			expectErr:     true,
		},
		{
			name:   "Pending requests reserve balance",
			amount: d("6.00"),
			payout: "panda@upi",
			prepareMock: func() {
				runInTx()
				accountRepo.EXPECT().FindByIDForUpdate(gomock.Any(), accountID).Return(account("10.00"), nil)
				withdrawalRepo.EXPECT().PendingTotal(gomock.Any(), accountID).Return(d("5.00"), nil)
			},
			expectedError: ErrInsufficientBalance,
			expectErr:     true,
		},
		{
			name:   "Account missing",
			amount: d("5.00"),
			payout: "panda@upi",
			prepareMock: func() {
				runInTx()
				accountRepo.EXPECT().FindByIDForUpdate(gomock.Any(), accountID).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
			expectErr:     true,
		},
		{
			name:   "Insert failure",
			amount: d("5.00"),
			payout: "panda@upi",
			prepareMock: func() {
				runInTx()
				accountRepo.EXPECT().FindByIDForUpdate(gomock.Any(), accountID).Return(account("50.00"), nil)
				withdrawalRepo.EXPECT().PendingTotal(gomock.Any(), accountID).Return(decimal.Zero, nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Create(ctx, accountID, tt.amount, tt.payout)

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.amount.Equal(result.Amount))
				assert.Equal(t, domain.WithdrawalPending, result.Status)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	service, withdrawalRepo, accountRepo, txManager := NewMock(t)
	ctx := context.Background()
	id := uuid.New()
	accountID := uuid.New()
	amount := d("7.50")

	runInTx := func() {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
	}
	request := func(status domain.WithdrawalStatus) *domain.WithdrawalRequest {
		return &domain.WithdrawalRequest{ID: id, AccountID: accountID, Amount: amount, Status: status}
	}

	tests := []struct {
		name          string
		decision      domain.WithdrawalStatus
		prepareMock   func()
		expectedError error
		expectErr     bool
	}{
		{
			name:          "Unknown decision",
			decision:      "cancelled",
			prepareMock:   func() {},
			expectedError: ErrInvalidDecision,
			expectErr:     true,
		},
		{
			name:          "Pending is not a decision",
			decision:      domain.WithdrawalPending,
			prepareMock:   func() {},
			expectedError: ErrInvalidDecision,
			expectErr:     true,
		},
		{
			name:     "Approve debits balance",
			decision: domain.WithdrawalApproved,
			prepareMock: func() {
				runInTx()
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(request(domain.WithdrawalPending), nil)
				accountRepo.EXPECT().Debit(gomock.Any(), accountID, amount).Return(true, nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), id, domain.WithdrawalApproved).Return(request(domain.WithdrawalApproved), nil)
			},
		},
		{
			name:     "Decline leaves balance alone",
			decision: domain.WithdrawalDeclined,
			prepareMock: func() {
				runInTx()
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(request(domain.WithdrawalPending), nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), id, domain.WithdrawalDeclined).Return(request(domain.WithdrawalDeclined), nil)
			},
		},
		{
			name:     "Request missing",
			decision: domain.WithdrawalApproved,
			prepareMock: func() {
				runInTx()
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, nil)
			},
			expectedError: ErrNotFound,
			expectErr:     true,
		},
		{
			name:     "Approved request cannot be declined",
			decision: domain.WithdrawalDeclined,
			prepareMock: func() {
				runInTx()
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(request(domain.WithdrawalApproved), nil)
			},
			expectedError: ErrInvalidTransition,
			expectErr:     true,
		},
		{
			name:     "Declined request cannot be approved",
			decision: domain.WithdrawalApproved,
			prepareMock: func() {
				runInTx()
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(request(domain.WithdrawalDeclined), nil)
			},
			expectedError: ErrInvalidTransition,
			expectErr:     true,
		},
		{
			name:     "Balance no longer covers approval",
			decision: domain.WithdrawalApproved,
			prepareMock: func() {
				runInTx()
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(request(domain.WithdrawalPending), nil)
				accountRepo.EXPECT().Debit(gomock.Any(), accountID, amount).Return(false, nil)
			},
			expectedError: ErrInsufficientBalance,
			expectErr:     true,
		},
		{
			name:     "Status changed concurrently",
			decision: domain.WithdrawalDeclined,
			prepareMock: func() {
				runInTx()
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(request(domain.WithdrawalPending), nil)
				withdrawalRepo.EXPECT().UpdateStatus(gomock.Any(), id, domain.WithdrawalDeclined).Return(nil, nil)
			},
			expectedError: ErrInvalidTransition,
			expectErr:     true,
		},
		{
			name:     "Debit failure",
			decision: domain.WithdrawalApproved,
			prepareMock: func() {
				runInTx()
				withdrawalRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(request(domain.WithdrawalPending), nil)
				accountRepo.EXPECT().Debit(gomock.Any(), accountID, amount).Return(false, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Resolve(ctx, id, tt.decision)

			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.decision, result.Status)
			}
		})
	}
}

func TestListAll(t *testing.T) {
	service, withdrawalRepo, _, _ := NewMock(t)
	ctx := context.Background()

	withdrawalRepo.EXPECT().List(ctx).Return([]domain.WithdrawalRequest{{ID: uuid.New()}}, nil)
	result, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	withdrawalRepo.EXPECT().List(ctx).Return(nil, errors.New("database error"))
	result, err = service.ListAll(ctx)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestListByAccount(t *testing.T) {
	service, withdrawalRepo, _, _ := NewMock(t)
	ctx := context.Background()
	accountID := uuid.New()

	withdrawalRepo.EXPECT().ListByAccount(ctx, accountID).Return([]domain.WithdrawalRequest{}, nil)
	result, err := service.ListByAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Empty(t, result)

	withdrawalRepo.EXPECT().ListByAccount(ctx, accountID).Return(nil, errors.New("database error"))
	result, err = service.ListByAccount(ctx, accountID)
	assert.Error(t, err)
	assert.Nil(t, result)
}
