package redemptionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := NewMock(t)
	accountID, codeID := uuid.New(), uuid.New()
	query := regexp.QuoteMeta(`SELECT 1 FROM redemptions WHERE account_id = $1 AND gift_code_id = $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name: "Already redeemed",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(accountID, codeID).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expected: true,
		},
		{
			name: "Not redeemed",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(accountID, codeID).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(accountID, codeID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			exists, err := repo.Exists(context.Background(), accountID, codeID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	accountID, codeID, id := uuid.New(), uuid.New(), uuid.New()
	redeemedAt := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO redemptions (account_id, gift_code_id) VALUES ($1, $2) RETURNING id, redeemed_at`)

	mock.ExpectQuery(query).
		WithArgs(accountID, codeID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "redeemed_at"}).AddRow(id.String(), redeemedAt))

	redemption, err := repo.Create(context.Background(), accountID, codeID)

	require.NoError(t, err)
	assert.Equal(t, id, redemption.ID)
	assert.Equal(t, accountID, redemption.AccountID)
	assert.Equal(t, codeID, redemption.GiftCodeID)
	assert.True(t, redeemedAt.Equal(redemption.RedeemedAt))

	mock.ExpectQuery(query).
		WithArgs(accountID, codeID).
		WillReturnError(errors.New("duplicate key"))

	redemption, err = repo.Create(context.Background(), accountID, codeID)

	assert.Error(t, err)
	assert.Nil(t, redemption)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	accountID := uuid.New()
	query := regexp.QuoteMeta(`FROM redemptions r JOIN gift_codes g ON g.id = r.gift_code_id WHERE r.account_id = $1 ORDER BY r.redeemed_at DESC`)

	mock.ExpectQuery(query).
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "gift_code_id", "redeemed_at", "code", "prize_amount"}).
			AddRow(uuid.NewString(), accountID.String(), uuid.NewString(), time.Now(), "WELCOME", "10.00").
			AddRow(uuid.NewString(), accountID.String(), uuid.NewString(), time.Now(), "SPRING", "2.50"))

	redemptions, err := repo.ListByAccount(context.Background(), accountID)

	require.NoError(t, err)
	require.Len(t, redemptions, 2)
	assert.Equal(t, "WELCOME", redemptions[0].Code)
	assert.Equal(t, accountID, redemptions[1].AccountID)
	assert.Equal(t, "2.50", redemptions[1].PrizeAmount.StringFixed(2))

	mock.ExpectQuery(query).WithArgs(accountID).WillReturnError(errors.New("database error"))

	redemptions, err = repo.ListByAccount(context.Background(), accountID)
	assert.Error(t, err)
	assert.Nil(t, redemptions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
