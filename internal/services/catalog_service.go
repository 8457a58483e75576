package services

import (
	"context"
	"fmt"

	"quickbasket/internal/domain"
	applog "quickbasket/internal/log"
	"quickbasket/internal/repos"
)

// CatalogService fronts the durable catalog with a cache-aside fast
// store: read-through on miss, write-through on save, invalidate after
// a successful delete.
type CatalogService struct {
	Prods *repos.ProductRepo
	Cache *repos.ProductCache
}

func NewCatalogService(prods *repos.ProductRepo, cache *repos.ProductCache) *CatalogService {
	return &CatalogService{Prods: prods, Cache: cache}
}

// GetBySku returns ok=false when the SKU exists in neither store.
func (s *CatalogService) GetBySku(ctx context.Context, sku string) (domain.Product, bool, error) {
	if p, ok, err := s.Cache.Get(ctx, sku); err != nil {
		return domain.Product{}, false, err
	} else if ok {
		return p, true, nil
	}
	p, ok, err := s.Prods.Get(sku)
	if err != nil || !ok {
		return domain.Product{}, false, err
	}
	if err := s.Cache.Put(ctx, p); err != nil {
		return domain.Product{}, false, err
	}
	return p, true, nil
}

// Save upserts the durable row, then refreshes the cache entry so
// reads from this process never see the old value after a write.
func (s *CatalogService) Save(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := s.Prods.Upsert(p); err != nil {
		return domain.Product{}, err
	}
	if err := s.Cache.Put(ctx, p); err != nil {
		return domain.Product{}, err
	}
	applog.Info(nil, "product.saved", map[string]any{"sku": p.SKU})
	return p, nil
}

// Update requires the payload SKU, when present, to match the path SKU.
func (s *CatalogService) Update(ctx context.Context, p domain.Product, sku string) (domain.Product, error) {
	if p.SKU != "" && p.SKU != sku {
		return domain.Product{}, fmt.Errorf("update %s: %w", sku, domain.ErrSkuMismatch)
	}
	p.SKU = sku
	return s.Save(ctx, p)
}

// Delete removes the durable row first; the cache entry stays put if
// that fails, so a half-applied delete never hides a live product.
func (s *CatalogService) Delete(ctx context.Context, sku string) error {
	if err := s.Prods.Delete(sku); err != nil {
		return err
	}
	if err := s.Cache.Invalidate(ctx, sku); err != nil {
		return err
	}
	applog.Info(nil, "product.deleted", map[string]any{"sku": sku})
	return nil
}
