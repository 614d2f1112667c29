package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NITHINPOLI04/VMEW/internal/config"
)

// Cache key formats. Invoice and inventory lists are cached per financial
// year; templates are cached per type.
const (
	InvoiceYearKeyFmt   = "invoices:year:%s"
	InventoryYearKeyFmt = "inventory:year:%s"
	TemplateKeyFmt      = "templates:%s"
)

var client *redis.Client

// Init initializes the Redis connection. A failure leaves the client nil and
// every cache call degrades to a miss.
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int, bool) {
	if client == nil {
		return 0, false
	}
	userID, err := client.Get(ctx, hashCredentials(email, password)).Int()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password string, userID int) {
	if client == nil {
		return
	}
	client.Set(ctx, hashCredentials(email, password), userID, 15*time.Minute)
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidatePattern removes all keys matching a glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateInvoiceCaches clears the cached per-year invoice lists.
// Called when: CreateInvoice, UpdateInvoice, DeleteInvoice, payment updates
func InvalidateInvoiceCaches(ctx context.Context) {
	InvalidatePattern(ctx, "invoices:*")
}

// InvalidateInventoryCaches clears the cached per-year inventory lists.
// Called when: CreateItem, UpdateItem, DeleteItem
func InvalidateInventoryCaches(ctx context.Context) {
	InvalidatePattern(ctx, "inventory:*")
}

// InvalidateTemplateCaches clears the cached template rows.
// Called when: UpdateTemplate
func InvalidateTemplateCaches(ctx context.Context) {
	InvalidatePattern(ctx, "templates:*")
}
