package redemptionrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Exists(ctx context.Context, accountID, codeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM redemptions WHERE account_id = $1 AND gift_code_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, accountID, codeID).Scan(&exists); err != nil {
		zap.L().Error("failed to check redemption", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Create records that the account consumed the code. The unique
// (account_id, gift_code_id) constraint rejects a second record.
func (r *Repository) Create(ctx context.Context, accountID, codeID uuid.UUID) (*domain.Redemption, error) {
	query := `
		INSERT INTO redemptions (account_id, gift_code_id)
		VALUES ($1, $2)
		RETURNING id, redeemed_at
	`
	redemption := &domain.Redemption{
		AccountID:  accountID,
		GiftCodeID: codeID,
	}
	err := r.db.QueryRow(ctx, query, accountID, codeID).Scan(&redemption.ID, &redemption.RedeemedAt)
	if err != nil {
		zap.L().Error("can't save redemption", zap.Error(err))
		return nil, err
	}
	return redemption, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.RedemptionDetail, error) {
	query := `
		SELECT r.id, r.account_id, r.gift_code_id, r.redeemed_at, g.code, g.prize_amount
		FROM redemptions r
		JOIN gift_codes g ON g.id = r.gift_code_id
		WHERE r.account_id = $1
		ORDER BY r.redeemed_at DESC
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch redemptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var redemptions []domain.RedemptionDetail
	for rows.Next() {
		var rd domain.RedemptionDetail
		err := rows.Scan(&rd.ID, &rd.AccountID, &rd.GiftCodeID, &rd.RedeemedAt, &rd.Code, &rd.PrizeAmount)
		if err != nil {
			zap.L().Error("failed to scan redemption row", zap.Error(err))
			return nil, err
		}
		redemptions = append(redemptions, rd)
	}
	return redemptions, rows.Err()
}
