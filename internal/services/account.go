package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
	"github.com/shopspring/decimal"
)

// AccountSaver creates new account rows.
type AccountSaver interface {
	Save(ctx context.Context, account *models.AccountDB) error
}

// AccountService manages cardholder accounts. Creating an account seeds one
// zero-balance wallet per benefit category; the authorization engine never
// creates wallets itself.
type AccountService struct {
	reader   AccountGetter
	writer   AccountSaver
	inserter WalletInserter
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader AccountGetter, writer AccountSaver, inserter WalletInserter) *AccountService {
	return &AccountService{
		reader:   reader,
		writer:   writer,
		inserter: inserter,
	}
}

// Create creates an account and seeds a zero wallet for every category.
func (svc *AccountService) Create(ctx context.Context, name string) (*models.AccountDB, error) {
	account := &models.AccountDB{
		AccountID: uuid.New(),
		Name:      name,
	}
	if err := svc.writer.Save(ctx, account); err != nil {
		logger.Log.Errorw("failed to save account", "name", name, "err", err)
		return nil, err
	}

	for _, category := range models.Categories() {
		wallet := &models.WalletDB{
			WalletID:  uuid.New(),
			AccountID: account.AccountID,
			Category:  category,
			Balance:   decimal.Zero,
		}
		if err := svc.inserter.Insert(ctx, wallet); err != nil {
			logger.Log.Errorw("failed to seed wallet", "accountID", account.AccountID, "category", category, "err", err)
			return nil, err
		}
	}

	return account, nil
}

// GetByID returns the account with the given id.
func (svc *AccountService) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	account, err := svc.reader.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "accountID", accountID, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: no account found for id %s", ErrAccountNotFound, accountID)
	}
	return account, nil
}
