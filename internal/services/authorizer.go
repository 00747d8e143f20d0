package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/money"
	"github.com/shopspring/decimal"
)

// Error variables
var (
	// ErrMalformedRequest is returned when the account or amount of a debit cannot be identified.
	ErrMalformedRequest = errors.New("unable to identify the account or amount to be updated")

	// ErrInsufficientFunds is returned when no eligible balance covers the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWalletNotFound is returned when no wallet exists for a requested (account, category) pair.
	// A missing wallet is a hard failure, never an implicit zero balance.
	ErrWalletNotFound = errors.New("wallet not found")
)

// InsufficientFundsError reports a rejected debit together with the balances
// that were checked. CashBalance is set only when the cash fallback was consulted.
type InsufficientFundsError struct {
	Category    models.Category
	Balance     decimal.Decimal
	CashBalance *decimal.Decimal
	Amount      decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	if e.CashBalance != nil {
		return fmt.Sprintf("insufficient funds for transaction: current balance for %s $%s - current balance for CASH $%s - transaction value $%s",
			e.Category, e.Balance, *e.CashBalance, e.Amount)
	}
	return fmt.Sprintf("insufficient funds for transaction: current balance for %s $%s - transaction value $%s",
		e.Category, e.Balance, e.Amount)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// WalletGetter defines read access to a single (account, category) balance.
type WalletGetter interface {
	GetByAccountAndCategory(ctx context.Context, accountID uuid.UUID, category models.Category) (*models.WalletDB, error) // Returns nil when no wallet exists
}

// WalletSaver persists the new balance of a single wallet row.
type WalletSaver interface {
	Save(ctx context.Context, wallet *models.WalletDB) error // Updates one wallet row atomically
}

// AuthorizerService decides approve/reject for a single debit and computes the
// new balance. It reads at most two wallets (primary, then optionally CASH)
// and persists at most one.
//
// There is no cross-request lock or compare-and-swap on the wallet row: two
// concurrent authorizations against the same (account, category) can both read
// the pre-debit balance and both pass the sufficiency check. The caller is
// expected to run each authorization inside a single database transaction.
type AuthorizerService struct {
	wallets WalletGetter
	saver   WalletSaver
}

// NewAuthorizerService creates a new AuthorizerService.
func NewAuthorizerService(wallets WalletGetter, saver WalletSaver) *AuthorizerService {
	return &AuthorizerService{
		wallets: wallets,
		saver:   saver,
	}
}

// Authorize debits amount from the account's wallet for the given category.
//
// Without fallback: the primary wallet either covers the amount (exact zero
// remaining is sufficient) or the debit is rejected. With fallback: when the
// primary wallet is short, the CASH wallet of the same account is checked and
// debited instead, leaving the primary balance untouched. The fallback cascade
// runs even when category is already CASH.
//
// On success the updated wallet is returned; it is the only row persisted.
func (svc *AuthorizerService) Authorize(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, category models.Category, fallback bool) (*models.WalletDB, error) {
	if accountID == uuid.Nil || amount.Sign() <= 0 {
		logger.Log.Errorw("malformed authorization request", "accountID", accountID, "amount", amount)
		return nil, ErrMalformedRequest
	}

	wallet, err := svc.wallets.GetByAccountAndCategory(ctx, accountID, category)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "accountID", accountID, "category", category, "err", err)
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w for account %s and category %s", ErrWalletNotFound, accountID, category)
	}

	if money.IsSufficient(wallet.Balance, amount) {
		wallet.Balance = money.Debit(wallet.Balance, amount)
		if err := svc.saver.Save(ctx, wallet); err != nil {
			logger.Log.Errorw("failed to save wallet", "accountID", accountID, "category", category, "err", err)
			return nil, err
		}
		return wallet, nil
	}

	if !fallback {
		return nil, &InsufficientFundsError{
			Category: category,
			Balance:  wallet.Balance,
			Amount:   amount,
		}
	}

	// The cascade is not special-cased for CASH itself: a short CASH wallet is
	// simply looked up and checked a second time.
	cashWallet, err := svc.wallets.GetByAccountAndCategory(ctx, accountID, models.CategoryCash)
	if err != nil {
		logger.Log.Errorw("failed to get cash wallet", "accountID", accountID, "err", err)
		return nil, err
	}
	if cashWallet == nil {
		return nil, fmt.Errorf("%w for account %s and category %s", ErrWalletNotFound, accountID, models.CategoryCash)
	}

	if !money.IsSufficient(cashWallet.Balance, amount) {
		cashBalance := cashWallet.Balance
		return nil, &InsufficientFundsError{
			Category:    category,
			Balance:     wallet.Balance,
			CashBalance: &cashBalance,
			Amount:      amount,
		}
	}

	cashWallet.Balance = money.Debit(cashWallet.Balance, amount)
	if err := svc.saver.Save(ctx, cashWallet); err != nil {
		logger.Log.Errorw("failed to save cash wallet", "accountID", accountID, "err", err)
		return nil, err
	}
	return cashWallet, nil
}

// Credit adds amount to the account's wallet for the given category.
// Credits are unconditional and do not round; they are used only for top-up
// flows outside authorization.
func (svc *AuthorizerService) Credit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, category models.Category) (*models.WalletDB, error) {
	if accountID == uuid.Nil || amount.Sign() <= 0 {
		logger.Log.Errorw("malformed credit request", "accountID", accountID, "amount", amount)
		return nil, ErrMalformedRequest
	}

	wallet, err := svc.wallets.GetByAccountAndCategory(ctx, accountID, category)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "accountID", accountID, "category", category, "err", err)
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w for account %s and category %s", ErrWalletNotFound, accountID, category)
	}

	wallet.Balance = money.Credit(wallet.Balance, amount)
	if err := svc.saver.Save(ctx, wallet); err != nil {
		logger.Log.Errorw("failed to save wallet", "accountID", accountID, "category", category, "err", err)
		return nil, err
	}
	return wallet, nil
}
