package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quickbasket/internal/domain"
	"quickbasket/internal/kv"
)

const basketKeyPrefix = "basket:"

// BasketStore keeps baskets as JSON values in the kv store. Every
// write rewrites the full basket and refreshes its TTL.
type BasketStore struct {
	kv  kv.Store
	ttl time.Duration
}

func NewBasketStore(store kv.Store, ttl time.Duration) *BasketStore {
	return &BasketStore{kv: store, ttl: ttl}
}

func basketKey(id string) string { return basketKeyPrefix + id }

// Create writes a fresh basket. The first stored version is 1.
func (s *BasketStore) Create(ctx context.Context, b *domain.Basket) error {
	b.Version = 1
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, basketKey(b.ID), string(raw), s.ttl)
}

// Get returns the basket plus the raw stored value, which callers hand
// back to Swap for the optimistic check. An absent or expired id
// returns (nil, "", nil).
func (s *BasketStore) Get(ctx context.Context, id string) (*domain.Basket, string, error) {
	raw, ok, err := s.kv.Get(ctx, basketKey(id))
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", nil
	}
	var b domain.Basket
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, "", fmt.Errorf("decode basket %s: %w", id, err)
	}
	if b.Items == nil {
		b.Items = map[string]int{}
	}
	return &b, raw, nil
}

// Swap persists a mutated basket only if the stored value is still
// prev, bumping the version and refreshing the TTL. A false return
// means another writer got there first; re-read and retry.
func (s *BasketStore) Swap(ctx context.Context, prev string, b *domain.Basket) (bool, error) {
	b.Version++
	raw, err := json.Marshal(b)
	if err != nil {
		return false, err
	}
	ok, err := s.kv.Swap(ctx, basketKey(b.ID), prev, string(raw), s.ttl)
	if err != nil || !ok {
		b.Version--
		return ok, err
	}
	return true, nil
}

// Delete is idempotent.
func (s *BasketStore) Delete(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, basketKey(id))
}
