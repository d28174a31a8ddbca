package giftcoderepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/pg"
	"go.uber.org/zap"
)

const codeColumns = `id, code, prize_amount, usage_limit, used_count, expires_at, is_active, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func codeFields(code *domain.GiftCode) []any {
	return []any{
		&code.ID,
		&code.Code,
		&code.PrizeAmount,
		&code.UsageLimit,
		&code.UsedCount,
		&code.ExpiresAt,
		&code.IsActive,
		&code.CreatedAt,
	}
}

// FindByCodeForUpdate locks the code row for the rest of the transaction and
// returns it together with the database clock, which is the reference for
// expiry checks.
func (r *Repository) FindByCodeForUpdate(ctx context.Context, code string) (*domain.GiftCode, time.Time, error) {
	query := `
		SELECT ` + codeColumns + `, now()
		FROM gift_codes
		WHERE code = $1
		FOR UPDATE
	`
	var giftCode domain.GiftCode
	var now time.Time
	err := r.db.QueryRow(ctx, query, code).Scan(append(codeFields(&giftCode), &now)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, nil
		}
		zap.L().Error("can't find gift code", zap.Error(err))
		return nil, time.Time{}, err
	}
	return &giftCode, now, nil
}

func (r *Repository) Create(ctx context.Context, code *domain.GiftCode) (*domain.GiftCode, error) {
	query := `
		INSERT INTO gift_codes (code, prize_amount, usage_limit, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + codeColumns
	var created domain.GiftCode
	err := r.db.QueryRow(ctx, query, code.Code, code.PrizeAmount, code.UsageLimit, code.ExpiresAt).Scan(codeFields(&created)...)
	if err != nil {
		zap.L().Error("can't save gift code", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.GiftCode, error) {
	query := `
		SELECT ` + codeColumns + `
		FROM gift_codes
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch gift codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var codes []domain.GiftCode
	for rows.Next() {
		var code domain.GiftCode
		if err := rows.Scan(codeFields(&code)...); err != nil {
			zap.L().Error("failed to scan gift code row", zap.Error(err))
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// IncrementUsage consumes one use of the code. It reports false when the code
// has no uses left; the guard keeps used_count from ever passing usage_limit.
func (r *Repository) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE gift_codes
		SET used_count = used_count + 1
		WHERE id = $1 AND used_count < usage_limit
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to increment gift code usage", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Deactivate soft-disables the code. Deactivating twice is not an error.
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) (*domain.GiftCode, error) {
	query := `
		UPDATE gift_codes
		SET is_active = FALSE
		WHERE id = $1
		RETURNING ` + codeColumns
	var code domain.GiftCode
	err := r.db.QueryRow(ctx, query, id).Scan(codeFields(&code)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to deactivate gift code", zap.Error(err))
		return nil, err
	}
	return &code, nil
}

// CountActive counts codes that can still be redeemed right now.
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	query := `
		SELECT count(*)
		FROM gift_codes
		WHERE is_active AND expires_at > now() AND used_count < usage_limit
	`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("failed to count active gift codes", zap.Error(err))
		return 0, err
	}
	return count, nil
}
