package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickbasket/internal/domain"
	"quickbasket/internal/kv"
	"quickbasket/internal/repos"
	"quickbasket/internal/services"
)

func intp(n int) *int { return &n }

func TestCatalogReadThroughPopulatesCache(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()
	store := kv.NewMemory()
	cache := repos.NewProductCache(store, time.Hour)
	svc := services.NewCatalogService(repos.NewProductRepo(db), cache)

	if _, ok, err := cache.Get(ctx, "A"); err != nil || ok {
		t.Fatalf("cache must start cold, ok=%v err=%v", ok, err)
	}

	p, found, err := svc.GetBySku(ctx, "A")
	if err != nil || !found {
		t.Fatalf("lookup: found=%v err=%v", found, err)
	}
	if p.UnitPrice != 50 || !p.HasSpecialOffer() {
		t.Fatalf("bad product: %+v", p)
	}

	// miss populated the fast store
	cached, ok, err := cache.Get(ctx, "A")
	if err != nil || !ok {
		t.Fatalf("cache miss after read-through, ok=%v err=%v", ok, err)
	}
	if cached.UnitPrice != 50 || *cached.OfferPrice != 130 {
		t.Fatalf("cached copy wrong: %+v", cached)
	}

	// unknown sku is absence, not an error
	if _, found, err := svc.GetBySku(ctx, "Z"); err != nil || found {
		t.Fatalf("unknown sku: found=%v err=%v", found, err)
	}
}

func TestCatalogSaveWritesThrough(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()
	store := kv.NewMemory()
	cache := repos.NewProductCache(store, time.Hour)
	svc := services.NewCatalogService(repos.NewProductRepo(db), cache)

	// warm the cache, then update the product
	if _, _, err := svc.GetBySku(ctx, "C"); err != nil {
		t.Fatal(err)
	}
	updated := domain.Product{SKU: "C", Name: "Coffee", UnitPrice: 25}
	if _, err := svc.Save(ctx, updated); err != nil {
		t.Fatal(err)
	}

	// a read from this process must see the new value immediately
	p, found, err := svc.GetBySku(ctx, "C")
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if p.UnitPrice != 25 {
		t.Fatalf("stale read after write: %+v", p)
	}
}

func TestCatalogUpdateSkuMismatch(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()
	svc := services.NewCatalogService(repos.NewProductRepo(db), repos.NewProductCache(kv.NewMemory(), time.Hour))

	body := domain.Product{SKU: "B", Name: "Banana", UnitPrice: 30, OfferQuantity: intp(2), OfferPrice: intp(45)}
	if _, err := svc.Update(ctx, body, "A"); !errors.Is(err, domain.ErrSkuMismatch) {
		t.Fatalf("want ErrSkuMismatch, got %v", err)
	}
	// mismatch must not touch the durable row
	p, _, err := svc.GetBySku(ctx, "A")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Apple" {
		t.Fatalf("mismatched update leaked: %+v", p)
	}
}

func TestCatalogDeleteKeepsCacheWhenDurableDeleteFails(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()
	store := kv.NewMemory()
	cache := repos.NewProductCache(store, time.Hour)
	svc := services.NewCatalogService(repos.NewProductRepo(db), cache)

	if _, _, err := svc.GetBySku(ctx, "A"); err != nil {
		t.Fatal(err)
	}

	// closed DB makes the durable delete fail before any invalidation
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "A"); err == nil {
		t.Fatal("want error from unavailable durable store")
	}

	// half-applied delete must not hide the still-live product
	if _, ok, err := cache.Get(ctx, "A"); err != nil || !ok {
		t.Fatalf("cache entry must survive a failed durable delete, ok=%v err=%v", ok, err)
	}
}

func TestCatalogDeleteInvalidates(t *testing.T) {
	db := memdb(t)
	ctx := context.Background()
	store := kv.NewMemory()
	cache := repos.NewProductCache(store, time.Hour)
	svc := services.NewCatalogService(repos.NewProductRepo(db), cache)

	if _, _, err := svc.GetBySku(ctx, "B"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "B"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := cache.Get(ctx, "B"); ok {
		t.Fatal("cache entry survived delete")
	}
	if _, found, err := svc.GetBySku(ctx, "B"); err != nil || found {
		t.Fatalf("deleted sku still resolves: found=%v err=%v", found, err)
	}
}
