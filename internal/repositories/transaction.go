package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
)

// TransactionWriteRepository appends authorization attempt records.
// Records are immutable; there is no update path.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends a single authorization attempt record.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	query := `
		INSERT INTO transactions (transaction_id, account_id, amount, mcc, merchant, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, txn.TransactionID, txn.AccountID, txn.Amount, txn.MCC, txn.Merchant, txn.Outcome)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.AccountID, txn.Amount, txn.MCC, txn.Merchant, txn.Outcome},
		"error", err,
	)

	return err
}

// TransactionReadRepository reads authorization attempt records.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List retrieves all recorded authorization attempts, newest first.
func (r *TransactionReadRepository) List(ctx context.Context) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, account_id, amount, mcc, merchant, outcome, created_at
		FROM transactions
		ORDER BY created_at DESC
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
