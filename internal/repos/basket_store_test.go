package repos_test

import (
	"context"
	"testing"
	"time"

	"quickbasket/internal/domain"
	"quickbasket/internal/kv"
	"quickbasket/internal/repos"
)

func TestBasketStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := repos.NewBasketStore(kv.NewMemory(), time.Minute)

	b := domain.NewBasket("b-1")
	if err := store.Create(ctx, b); err != nil {
		t.Fatal(err)
	}
	if b.Version != 1 {
		t.Fatalf("fresh basket version: want 1, got %d", b.Version)
	}

	got, raw, err := store.Get(ctx, "b-1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != "b-1" || raw == "" {
		t.Fatalf("bad read back: %+v raw=%q", got, raw)
	}
	if got.Items == nil {
		t.Fatal("items map must never be nil")
	}

	if missing, _, err := store.Get(ctx, "nope"); err != nil || missing != nil {
		t.Fatalf("absent id: want nil basket, got %+v err=%v", missing, err)
	}
}

func TestBasketStoreSwapVersioning(t *testing.T) {
	ctx := context.Background()
	store := repos.NewBasketStore(kv.NewMemory(), time.Minute)

	b := domain.NewBasket("b-2")
	if err := store.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	first, raw1, err := store.Get(ctx, "b-2")
	if err != nil {
		t.Fatal(err)
	}
	first.Items["A"] = 1
	ok, err := store.Swap(ctx, raw1, first)
	if err != nil || !ok {
		t.Fatalf("first swap: ok=%v err=%v", ok, err)
	}
	if first.Version != 2 {
		t.Fatalf("version after swap: want 2, got %d", first.Version)
	}

	// A writer holding the old raw value must lose.
	stale := domain.NewBasket("b-2")
	stale.Version = 1
	stale.Items["B"] = 1
	ok, err = store.Swap(ctx, raw1, stale)
	if err != nil || ok {
		t.Fatalf("stale swap must fail: ok=%v err=%v", ok, err)
	}
	if stale.Version != 1 {
		t.Fatalf("failed swap must not bump version, got %d", stale.Version)
	}

	got, _, err := store.Get(ctx, "b-2")
	if err != nil {
		t.Fatal(err)
	}
	if got.Items["A"] != 1 || got.Items["B"] != 0 {
		t.Fatalf("lost update leaked through: %+v", got.Items)
	}
}

func TestBasketStoreDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := repos.NewBasketStore(kv.NewMemory(), time.Minute)

	b := domain.NewBasket("b-3")
	if err := store.Create(ctx, b); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "b-3"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "b-3"); err != nil {
		t.Fatalf("second delete must not error: %v", err)
	}
}
