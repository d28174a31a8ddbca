package withdrawal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/dto"
	"github.com/GlebRadaev/prizepanda/internal/service/withdrawalservice"
	pkgauth "github.com/GlebRadaev/prizepanda/pkg/auth"
	"github.com/GlebRadaev/prizepanda/pkg/utils"
	"github.com/GlebRadaev/prizepanda/pkg/validate"
)

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withAccount(r *http.Request, accountID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), pkgauth.AccountIDKey, accountID))
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)
	accountID := uuid.New()

	created := func(_ context.Context, id uuid.UUID, amount decimal.Decimal, upi string) (*domain.WithdrawalRequest, error) {
		return &domain.WithdrawalRequest{
			ID:            uuid.New(),
			AccountID:     id,
			Amount:        amount,
			PayoutAddress: upi,
			Status:        domain.WithdrawalPending,
		}, nil
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "Submitted",
			body: `{"amount":"25","upiId":"panda@upi"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), accountID, gomock.Any(), "panda@upi").DoAndReturn(
					func(ctx context.Context, id uuid.UUID, amount decimal.Decimal, upi string) (*domain.WithdrawalRequest, error) {
						assert.True(t, amount.Equal(decimal.NewFromInt(25)))
						return created(ctx, id, amount, upi)
					})
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "Withdrawal request submitted successfully",
		},
		{
			name: "Below minimum",
			body: `{"amount":"4.99","upiId":"panda@upi"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), accountID, gomock.Any(), "panda@upi").Return(nil, withdrawalservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Minimum withdrawal amount is ₹5",
		},
		{
			name: "Insufficient balance",
			body: `{"amount":"100.00","upiId":"panda@upi"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), accountID, gomock.Any(), "panda@upi").Return(nil, withdrawalservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Insufficient balance",
		},
		{
			name:         "Negative amount",
			body:         `{"amount":"-5","upiId":"panda@upi"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid input",
		},
		{
			name:         "Missing upi id",
			body:         `{"amount":"10"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid input",
		},
		{
			name: "Account deleted",
			body: `{"amount":"10","upiId":"panda@upi"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), accountID, gomock.Any(), "panda@upi").Return(nil, withdrawalservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "User not found",
		},
		{
			name: "Store failure",
			body: `{"amount":"10","upiId":"panda@upi"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), accountID, gomock.Any(), "panda@upi").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Failed to submit withdrawal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withAccount(httptest.NewRequest(http.MethodPost, "/api/withdraw", bytes.NewBufferString(tt.body)), accountID)
			rec := httptest.NewRecorder()

			handler.Withdraw(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			var resp dto.WithdrawResponseDTO
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMsg, resp.Message)
			if tt.expectedCode == http.StatusCreated {
				assert.Equal(t, "25.00", resp.Withdrawal.Amount)
				assert.Equal(t, "pending", resp.Withdrawal.Status)
				assert.Equal(t, accountID.String(), resp.Withdrawal.UserID)
			}
		})
	}
}

func TestListWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	accountID := uuid.New()

	service.EXPECT().ListByAccount(gomock.Any(), accountID).Return([]domain.WithdrawalRequest{
		{ID: uuid.New(), AccountID: accountID, Amount: decimal.RequireFromString("7.5"), Status: domain.WithdrawalApproved},
	}, nil)

	rec := httptest.NewRecorder()
	handler.ListWithdrawals(rec, withAccount(httptest.NewRequest(http.MethodGet, "/api/withdrawals", nil), accountID))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.WithdrawalResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "7.50", resp[0].Amount)
	assert.Equal(t, "approved", resp[0].Status)

	rec = httptest.NewRecorder()
	handler.ListWithdrawals(rec, httptest.NewRequest(http.MethodGet, "/api/withdrawals", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListAllHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	rec := httptest.NewRecorder()
	handler.ListAll(rec, httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	service.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("database error"))
	rec = httptest.NewRecorder()
	handler.ListAll(rec, httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestResolveHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
		expectedMsg  string
		expectedErrs []validate.FieldError
	}{
		{
			name: "Approved",
			id:   id.String(),
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), id, domain.WithdrawalApproved).Return(&domain.WithdrawalRequest{ID: id, Status: domain.WithdrawalApproved}, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Withdrawal status updated",
		},
		{
			name: "Declined",
			id:   id.String(),
			body: `{"status":"declined"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), id, domain.WithdrawalDeclined).Return(&domain.WithdrawalRequest{ID: id, Status: domain.WithdrawalDeclined}, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Withdrawal status updated",
		},
		{
			name:         "Pending is not a decision",
			id:           id.String(),
			body:         `{"status":"pending"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid input",
			expectedErrs: []validate.FieldError{{Field: "status", Message: "must be one of: approved declined"}},
		},
		{
			name:         "Missing status",
			id:           id.String(),
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid input",
			expectedErrs: []validate.FieldError{{Field: "status", Message: "is required"}},
		},
		{
			name:         "Unknown field",
			id:           id.String(),
			body:         `{"status":"approved","note":"ok"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name:         "Malformed id",
			id:           "42",
			body:         `{"status":"approved"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid withdrawal ID",
		},
		{
			name: "Unknown withdrawal",
			id:   id.String(),
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), id, domain.WithdrawalApproved).Return(nil, withdrawalservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Withdrawal not found",
		},
		{
			name: "Already resolved",
			id:   id.String(),
			body: `{"status":"declined"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), id, domain.WithdrawalDeclined).Return(nil, withdrawalservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
			expectedMsg:  "Withdrawal already resolved",
		},
		{
			name: "Balance spent before approval",
			id:   id.String(),
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), id, domain.WithdrawalApproved).Return(nil, withdrawalservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Insufficient balance",
		},
		{
			name: "Store failure",
			id:   id.String(),
			body: `{"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), id, domain.WithdrawalApproved).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Failed to update withdrawal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withID(httptest.NewRequest(http.MethodPatch, "/api/admin/withdrawals/"+tt.id, bytes.NewBufferString(tt.body)), tt.id)
			rec := httptest.NewRecorder()

			handler.Resolve(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			var resp utils.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.Equal(t, tt.expectedErrs, resp.Errors)
		})
	}
}
