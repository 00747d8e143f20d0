package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// ErrAccountNotFound is returned when no account exists for a requested id.
var ErrAccountNotFound = errors.New("account not found")

// AccountGetter defines read access to accounts.
type AccountGetter interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) // Returns nil when no account exists
}

// CategoryClassifier resolves the benefit category of a purchase.
type CategoryClassifier interface {
	Classify(mcc, merchant string, considerMerchant bool) models.Category // Pure classification by MCC and merchant name
	MCCForMerchant(merchant string) (string, bool)                        // Derives an MCC from the merchant name, if any keyword matches
}

// Authorizer debits the correct segmented balance for a classified purchase.
type Authorizer interface {
	Authorize(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, category models.Category, fallback bool) (*models.WalletDB, error)
}

// TransactionWriter appends an immutable authorization attempt record.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error
}

// TransactionLister reads recorded authorization attempts.
type TransactionLister interface {
	List(ctx context.Context) ([]models.TransactionDB, error)
}

// MerchantMCCCache caches merchant-name-derived MCCs.
type MerchantMCCCache interface {
	GetMCCForMerchant(ctx context.Context, merchant string) (string, error) // Returns cached derived MCC
	SetMCCForMerchant(ctx context.Context, merchant, mcc string) error      // Caches a derived MCC
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService orchestrates a single authorization attempt: resolve the
// account, classify the purchase, run the balance engine, record the attempt
// and publish the result. Every engine failure is translated into an outcome
// code; nothing escapes to the caller as an error.
type TransactionService struct {
	accounts    AccountGetter
	classifier  CategoryClassifier
	authorizer  Authorizer
	writer      TransactionWriter
	reader      TransactionLister
	cache       MerchantMCCCache
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	accounts AccountGetter,
	classifier CategoryClassifier,
	authorizer Authorizer,
	writer TransactionWriter,
	reader TransactionLister,
	cache MerchantMCCCache,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		accounts:    accounts,
		classifier:  classifier,
		authorizer:  authorizer,
		writer:      writer,
		reader:      reader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Create runs one authorization attempt and returns its outcome.
//
// Outcome codes: "00" approved, "51" insufficient funds, "07" any other
// failure (missing account, missing wallet, malformed request, store fault).
// The attempt record is appended exactly once after the balance mutation, for
// approvals and rejections alike; only an unresolvable account skips it.
func (svc *TransactionService) Create(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, mcc, merchant string, considerMerchant, fallback bool) models.Outcome {
	account, err := svc.accounts.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "accountID", accountID, "err", err)
		return models.Outcome{Code: models.CodeError, Message: fmt.Sprintf("Transaction error: %s", err)}
	}
	if account == nil {
		return models.Outcome{Code: models.CodeError, Message: fmt.Sprintf("Transaction error: %s: no account found for id %s", ErrAccountNotFound, accountID)}
	}

	category := svc.classify(ctx, mcc, merchant, considerMerchant)

	var outcome models.Outcome
	_, err = svc.authorizer.Authorize(ctx, account.AccountID, amount, category, fallback)
	switch {
	case err == nil:
		outcome = models.Outcome{Code: models.CodeApproved, Message: "Transaction approved"}
	case errors.Is(err, ErrInsufficientFunds):
		outcome = models.Outcome{Code: models.CodeInsufficientFunds, Message: fmt.Sprintf("Transaction rejected: %s", err)}
	default:
		outcome = models.Outcome{Code: models.CodeError, Message: fmt.Sprintf("Transaction error: %s", err)}
	}

	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		AccountID:     account.AccountID,
		Amount:        amount,
		MCC:           mcc,
		Merchant:      merchant,
		Outcome:       outcome.Code,
	}
	if err := svc.writer.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "accountID", accountID, "err", err)
		return models.Outcome{Code: models.CodeError, Message: fmt.Sprintf("Transaction error: %s", err)}
	}

	svc.publishAuthorization(ctx, txn)

	return outcome
}

// List returns all recorded authorization attempts.
func (svc *TransactionService) List(ctx context.Context) ([]models.TransactionDB, error) {
	txns, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "err", err)
		return nil, err
	}
	return txns, nil
}

// classify resolves the category, consulting the merchant MCC cache before the
// keyword scan. Only merchant-derived MCCs are cached: a purchase classified by
// its request MCC says nothing about the merchant name.
func (svc *TransactionService) classify(ctx context.Context, mcc, merchant string, considerMerchant bool) models.Category {
	if !considerMerchant {
		return svc.classifier.Classify(mcc, merchant, false)
	}

	if svc.cache != nil {
		if cached, err := svc.cache.GetMCCForMerchant(ctx, merchant); err == nil && cached != "" {
			return svc.classifier.Classify(cached, "", false)
		}
	}

	derived, ok := svc.classifier.MCCForMerchant(merchant)
	if !ok {
		return svc.classifier.Classify(mcc, "", false)
	}

	if svc.cache != nil {
		if err := svc.cache.SetMCCForMerchant(ctx, merchant, derived); err != nil {
			logger.Log.Errorw("failed to cache merchant mcc", "merchant", merchant, "mcc", derived, "err", err)
		}
	}
	return svc.classifier.Classify(derived, "", false)
}

// publishAuthorization publishes an authorization attempt to Kafka.
func (svc *TransactionService) publishAuthorization(ctx context.Context, txn *models.TransactionDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.AuthorizationEvent{
		TransactionID: txn.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		AccountID:     txn.AccountID.String(),
		Amount:        txn.Amount.String(),
		MCC:           txn.MCC,
		Merchant:      txn.Merchant,
		Outcome:       txn.Outcome,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal authorization event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish authorization event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("authorization event published", "transaction_id", txn.TransactionID, "outcome", txn.Outcome)
	}
}
