package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
	"github.com/shopspring/decimal"
)

// ErrWalletAlreadyExists is returned when a wallet is created for a
// (account, category) pair that already has one.
var ErrWalletAlreadyExists = errors.New("wallet already exists")

// WalletInserter creates new wallet rows.
type WalletInserter interface {
	Insert(ctx context.Context, wallet *models.WalletDB) error
}

// WalletsByAccountReader reads all wallets of an account.
type WalletsByAccountReader interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.WalletDB, error)
}

// Crediter performs unconditional balance top-ups.
type Crediter interface {
	Credit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, category models.Category) (*models.WalletDB, error)
}

// WalletService manages the lifecycle of segmented balances: creation with an
// opening balance, top-ups and per-account listing. Debits belong to the
// authorization engine, never to this service.
type WalletService struct {
	accounts AccountGetter
	reader   WalletsByAccountReader
	getter   WalletGetter
	inserter WalletInserter
	crediter Crediter
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	accounts AccountGetter,
	reader WalletsByAccountReader,
	getter WalletGetter,
	inserter WalletInserter,
	crediter Crediter,
) *WalletService {
	return &WalletService{
		accounts: accounts,
		reader:   reader,
		getter:   getter,
		inserter: inserter,
		crediter: crediter,
	}
}

// Create opens a wallet for the given account and category with an opening balance.
func (svc *WalletService) Create(ctx context.Context, accountID uuid.UUID, category models.Category, balance decimal.Decimal) (*models.WalletDB, error) {
	account, err := svc.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "accountID", accountID, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: no account found for id %s", ErrAccountNotFound, accountID)
	}

	existing, err := svc.getter.GetByAccountAndCategory(ctx, accountID, category)
	if err != nil {
		logger.Log.Errorw("failed to check wallet exists", "accountID", accountID, "category", category, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w for account %s and category %s", ErrWalletAlreadyExists, accountID, category)
	}

	wallet := &models.WalletDB{
		WalletID:  uuid.New(),
		AccountID: accountID,
		Category:  category,
		Balance:   balance,
	}
	if err := svc.inserter.Insert(ctx, wallet); err != nil {
		logger.Log.Errorw("failed to insert wallet", "accountID", accountID, "category", category, "err", err)
		return nil, err
	}
	return wallet, nil
}

// Credit tops up the wallet for the given account and category.
func (svc *WalletService) Credit(ctx context.Context, accountID uuid.UUID, category models.Category, amount decimal.Decimal) (*models.WalletDB, error) {
	return svc.crediter.Credit(ctx, accountID, amount, category)
}

// ListByAccount returns every wallet of the account. An account without
// wallets is a failure, not an empty result.
func (svc *WalletService) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.WalletDB, error) {
	wallets, err := svc.reader.ListByAccount(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to list wallets", "accountID", accountID, "err", err)
		return nil, err
	}
	if len(wallets) == 0 {
		return nil, fmt.Errorf("%w: no wallets found for account %s", ErrWalletNotFound, accountID)
	}
	return wallets, nil
}
