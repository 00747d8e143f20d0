package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
)

// WalletReadRepository handles wallet read operations
type WalletReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletReadRepository {
	return &WalletReadRepository{db: db, txGetter: txGetter}
}

// GetByAccountAndCategory retrieves the single wallet for an (account, category)
// pair. Returns nil without error when no wallet exists; callers decide whether
// a missing wallet is a failure.
func (r *WalletReadRepository) GetByAccountAndCategory(ctx context.Context, accountID uuid.UUID, category models.Category) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, account_id, category, balance, created_at, updated_at
		FROM wallets
		WHERE account_id = $1 AND category = $2
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor, &wallet, query, accountID, category)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, category},
		"result", wallet,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &wallet, nil
}

// ListByAccount retrieves all wallets of an account.
func (r *WalletReadRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.WalletDB, error) {
	const query = `
		SELECT wallet_id, account_id, category, balance, created_at, updated_at
		FROM wallets
		WHERE account_id = $1
		ORDER BY category
	`

	var wallets []models.WalletDB
	err := r.db.SelectContext(ctx, &wallets, query, accountID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", wallets,
		"error", err,
	)

	return wallets, err
}

// WalletWriteRepository handles wallet write operations
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

// Insert creates a new wallet row.
func (r *WalletWriteRepository) Insert(ctx context.Context, wallet *models.WalletDB) error {
	query := `
		INSERT INTO wallets (wallet_id, account_id, category, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, wallet.WalletID, wallet.AccountID, wallet.Category, wallet.Balance)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{wallet.WalletID, wallet.AccountID, wallet.Category, wallet.Balance},
		"error", err,
	)

	return err
}

// Save persists the new balance of a single wallet row.
func (r *WalletWriteRepository) Save(ctx context.Context, wallet *models.WalletDB) error {
	query := `
		UPDATE wallets
		SET balance = $3, updated_at = NOW()
		WHERE account_id = $1 AND category = $2
		RETURNING balance
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var balance string
	err := sqlx.GetContext(ctx, executor, &balance, query, wallet.AccountID, wallet.Category, wallet.Balance)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{wallet.AccountID, wallet.Category, wallet.Balance},
		"result", balance,
		"error", err,
	)

	return err
}
