package accountrepo

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

const accountColumns = `id, username, password_hash, balance, withdrawn, is_admin, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.Balance,
		&account.Withdrawn,
		&account.IsAdmin,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

// FindByIDForUpdate locks the account row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (username, password_hash)
		VALUES ($1, $2)
		RETURNING ` + accountColumns
	created, err := scanAccount(r.db.QueryRow(ctx, query, account.Username, account.PasswordHash))
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM accounts`).Scan(&count); err != nil {
		zap.L().Error("failed to count accounts", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Credit adds amount to the balance in place, so concurrent credits never
// overwrite each other.
func (r *Repository) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("failed to credit account", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Debit moves amount from balance to withdrawn. It reports false, without
// changing anything, when the balance cannot cover amount.
func (r *Repository) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $1, withdrawn = withdrawn + $1
		WHERE id = $2 AND balance >= $1
	`
	tag, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("failed to debit account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE accounts SET is_admin = $1 WHERE id = $2`, isAdmin, id)
	if err != nil {
		zap.L().Error("failed to update admin flag", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
