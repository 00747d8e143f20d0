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

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByID retrieves an account by id. Returns nil without error when no
// account exists.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, name, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, accountID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", account,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save creates a new account row.
func (r *AccountWriteRepository) Save(ctx context.Context, account *models.AccountDB) error {
	query := `
		INSERT INTO accounts (account_id, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, account.AccountID, account.Name)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{account.AccountID, account.Name},
		"error", err,
	)

	return err
}
