package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisRevoker_Revoke(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		expiresAt   time.Time
		prepareMock func(mock redismock.ClientMock)
		expectErr   bool
	}{
		{
			name:      "Stored for remaining lifetime",
			expiresAt: now.Add(10 * time.Minute),
			prepareMock: func(mock redismock.ClientMock) {
				mock.ExpectSet("revoked:abc", 1, 10*time.Minute).SetVal("OK")
			},
		},
		{
			name:        "Already expired token is skipped",
			expiresAt:   now.Add(-time.Minute),
			prepareMock: func(mock redismock.ClientMock) {},
		},
		{
			name:      "Redis failure",
			expiresAt: now.Add(time.Minute),
			prepareMock: func(mock redismock.ClientMock) {
				mock.ExpectSet("revoked:abc", 1, time.Minute).SetErr(errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			revoker := NewRedisRevoker(client)
			revoker.now = func() time.Time { return now }
			tt.prepareMock(mock)

			err := revoker.Revoke(context.Background(), "abc", tt.expiresAt)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisRevoker_IsRevoked(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(mock redismock.ClientMock)
		expected    bool
		expectErr   bool
	}{
		{
			name: "Revoked",
			prepareMock: func(mock redismock.ClientMock) {
				mock.ExpectExists("revoked:abc").SetVal(1)
			},
			expected: true,
		},
		{
			name: "Not revoked",
			prepareMock: func(mock redismock.ClientMock) {
				mock.ExpectExists("revoked:abc").SetVal(0)
			},
		},
		{
			name: "Redis failure",
			prepareMock: func(mock redismock.ClientMock) {
				mock.ExpectExists("revoked:abc").SetErr(errors.New("connection refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			revoker := NewRedisRevoker(client)
			tt.prepareMock(mock)

			revoked, err := revoker.IsRevoked(context.Background(), "abc")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, revoked)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNoopRevoker(t *testing.T) {
	var revoker Revoker = NoopRevoker{}

	assert.NoError(t, revoker.Revoke(context.Background(), "abc", time.Now().Add(time.Hour)))
	revoked, err := revoker.IsRevoked(context.Background(), "abc")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
