package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
)

// MerchantMCCCacheRepository caches merchant-name-derived MCCs in Redis.
// Only derived codes are stored, so a hit always means the merchant name
// itself implied a category.
type MerchantMCCCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached codes
}

// NewMerchantMCCCacheRepository creates a new repository instance with optional TTL
func NewMerchantMCCCacheRepository(client *redis.Client, expiration time.Duration) *MerchantMCCCacheRepository {
	return &MerchantMCCCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetMCCForMerchant fetches a cached derived MCC for a merchant name
func (r *MerchantMCCCacheRepository) GetMCCForMerchant(ctx context.Context, merchant string) (string, error) {
	key := merchantMCCKey(merchant)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return "", fmt.Errorf("no cached mcc for merchant %q", merchant)
		}
		return "", err
	}

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", nil,
	)

	return val, nil
}

// SetMCCForMerchant caches a derived MCC for a merchant name with expiration
func (r *MerchantMCCCacheRepository) SetMCCForMerchant(ctx context.Context, merchant, mcc string) error {
	key := merchantMCCKey(merchant)
	err := r.client.Set(ctx, key, mcc, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", mcc,
		"error", err,
	)

	return err
}

func merchantMCCKey(merchant string) string {
	return fmt.Sprintf("merchant_mcc:%s", strings.ToLower(merchant))
}
