package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"quickbasket/internal/domain"
	applog "quickbasket/internal/log"
	"quickbasket/internal/pricing"
	"quickbasket/internal/repos"
)

// swapRetries bounds the optimistic-swap retry loop. Concurrent writers
// to the same basket are rare in a single-session model, so a small
// number of re-reads is enough before giving up with ErrConflict.
const swapRetries = 3

// BasketService owns the basket lifecycle. Every mutation is one
// read-modify-recompute-write cycle: load the basket, apply the change,
// derive the total from current items via the pricing rules, persist
// with a refreshed TTL.
type BasketService struct {
	Baskets *repos.BasketStore
	Catalog *CatalogService
}

func NewBasketService(baskets *repos.BasketStore, catalog *CatalogService) *BasketService {
	return &BasketService{Baskets: baskets, Catalog: catalog}
}

func (s *BasketService) Create(ctx context.Context) (*domain.Basket, error) {
	b := domain.NewBasket(uuid.NewString())
	if err := s.Baskets.Create(ctx, b); err != nil {
		return nil, err
	}
	applog.Info(nil, "basket.created", map[string]any{"basket_id": b.ID})
	return b, nil
}

func (s *BasketService) Get(ctx context.Context, basketID string) (*domain.Basket, error) {
	b, _, err := s.Baskets.Get(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("basket %s: %w", basketID, domain.ErrBasketNotFound)
	}
	return b, nil
}

// AddItem adds one unit of sku and returns the recomputed total.
// Catalog existence is checked before the basket is touched, so an
// unknown SKU never enters basket state through this path.
func (s *BasketService) AddItem(ctx context.Context, basketID, sku string) (int, error) {
	if _, ok, err := s.Catalog.GetBySku(ctx, sku); err != nil {
		return 0, err
	} else if !ok {
		return 0, fmt.Errorf("product %s: %w", sku, domain.ErrProductNotFound)
	}
	return s.mutate(ctx, basketID, func(b *domain.Basket) error {
		b.Items[sku]++
		return nil
	})
}

// RemoveItem removes one unit of sku, dropping the line at zero, and
// returns the recomputed total.
func (s *BasketService) RemoveItem(ctx context.Context, basketID, sku string) (int, error) {
	return s.mutate(ctx, basketID, func(b *domain.Basket) error {
		if b.Items[sku] == 0 {
			return fmt.Errorf("sku %s in basket %s: %w", sku, basketID, domain.ErrItemNotInBasket)
		}
		b.Items[sku]--
		if b.Items[sku] == 0 {
			delete(b.Items, sku)
		}
		return nil
	})
}

// Cancel deletes the basket; deleting an absent basket is not an error.
func (s *BasketService) Cancel(ctx context.Context, basketID string) error {
	if err := s.Baskets.Delete(ctx, basketID); err != nil {
		return err
	}
	applog.Info(nil, "basket.cancelled", map[string]any{"basket_id": basketID})
	return nil
}

// mutate runs one read-modify-recompute-write cycle under the
// optimistic version check, retrying on a lost swap.
func (s *BasketService) mutate(ctx context.Context, basketID string, fn func(*domain.Basket) error) (int, error) {
	for attempt := 0; attempt < swapRetries; attempt++ {
		b, raw, err := s.Baskets.Get(ctx, basketID)
		if err != nil {
			return 0, err
		}
		if b == nil {
			return 0, fmt.Errorf("basket %s: %w", basketID, domain.ErrBasketNotFound)
		}
		if err := fn(b); err != nil {
			return 0, err
		}
		total, err := pricing.TotalFor(ctx, b.Items, s.Catalog.GetBySku)
		if err != nil {
			return 0, err
		}
		b.TotalPrice = total
		ok, err := s.Baskets.Swap(ctx, raw, b)
		if err != nil {
			return 0, err
		}
		if ok {
			applog.Info(nil, "basket.recalculated", map[string]any{"basket_id": basketID, "total": total})
			return total, nil
		}
	}
	return 0, fmt.Errorf("basket %s: %w", basketID, domain.ErrConflict)
}
