package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/prizepanda/internal/domain"
	"github.com/GlebRadaev/prizepanda/internal/pg"
	"go.uber.org/zap"
)

const withdrawalColumns = `id, account_id, amount, payout_address, status, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var wd domain.WithdrawalRequest
	var status string
	err := row.Scan(&wd.ID, &wd.AccountID, &wd.Amount, &wd.PayoutAddress, &status, &wd.CreatedAt, &wd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	wd.Status = domain.WithdrawalStatus(status)
	return &wd, nil
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (account_id, amount, payout_address)
		VALUES ($1, $2, $3)
		RETURNING ` + withdrawalColumns
	created, err := scanWithdrawal(r.db.QueryRow(ctx, query, withdrawal.AccountID, withdrawal.Amount, withdrawal.PayoutAddress))
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// FindByIDForUpdate locks the request row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

// UpdateStatus moves a pending request to status. A request that is no longer
// pending is left untouched and nil is returned.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WithdrawalStatus) (*domain.WithdrawalRequest, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = 'pending'
		RETURNING ` + withdrawalColumns
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) List(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	return r.list(ctx, `
		SELECT `+withdrawalColumns+`
		FROM withdrawal_requests
		ORDER BY created_at DESC
	`)
}

func (r *Repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	return r.list(ctx, `
		SELECT `+withdrawalColumns+`
		FROM withdrawal_requests
		WHERE account_id = $1
		ORDER BY created_at DESC
	`, accountID)
}

// PendingTotal sums the amounts still reserved by the account's pending requests.
func (r *Repository) PendingTotal(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM withdrawal_requests
		WHERE account_id = $1 AND status = 'pending'
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&total); err != nil {
		zap.L().Error("failed to sum pending withdrawals", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func (r *Repository) PendingSummary(ctx context.Context) (domain.PendingSummary, error) {
	query := `
		SELECT count(*), COALESCE(SUM(amount), 0)
		FROM withdrawal_requests
		WHERE status = 'pending'
	`
	var summary domain.PendingSummary
	if err := r.db.QueryRow(ctx, query).Scan(&summary.Count, &summary.Total); err != nil {
		zap.L().Error("failed to summarize pending withdrawals", zap.Error(err))
		return domain.PendingSummary{}, err
	}
	return summary, nil
}
