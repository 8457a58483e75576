package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quickbasket/internal/domain"
	"quickbasket/internal/kv"
)

const productKeyPrefix = "product:"

// ProductCache is the fast side of the catalog's cache-aside pair.
// Values are JSON under product:{sku} with a bounded expiry.
type ProductCache struct {
	kv  kv.Store
	ttl time.Duration
}

func NewProductCache(store kv.Store, ttl time.Duration) *ProductCache {
	return &ProductCache{kv: store, ttl: ttl}
}

func productKey(sku string) string { return productKeyPrefix + sku }

func (c *ProductCache) Get(ctx context.Context, sku string) (domain.Product, bool, error) {
	raw, ok, err := c.kv.Get(ctx, productKey(sku))
	if err != nil || !ok {
		return domain.Product{}, false, err
	}
	var p domain.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.Product{}, false, fmt.Errorf("decode cached product %s: %w", sku, err)
	}
	return p, true, nil
}

func (c *ProductCache) Put(ctx context.Context, p domain.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, productKey(p.SKU), string(raw), c.ttl)
}

func (c *ProductCache) Invalidate(ctx context.Context, sku string) error {
	return c.kv.Delete(ctx, productKey(sku))
}
