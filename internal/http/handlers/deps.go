package handlers

import (
	"github.com/jmoiron/sqlx"

	"quickbasket/internal/config"
	"quickbasket/internal/kv"
	"quickbasket/internal/repos"
	"quickbasket/internal/services"
)

type Deps struct {
	BasketHandler  *BasketHandler
	ProductHandler *ProductHandler
}

func NewDeps(db *sqlx.DB, store kv.Store, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	prodCache := repos.NewProductCache(store, cfg.ProductCacheTTL)
	basketStore := repos.NewBasketStore(store, cfg.BasketTTL)

	catalogSvc := services.NewCatalogService(prodRepo, prodCache)
	basketSvc := services.NewBasketService(basketStore, catalogSvc)
	checkoutSvc := services.NewCheckoutService(basketStore, orderRepo)

	return &Deps{
		BasketHandler:  &BasketHandler{Baskets: basketSvc, Checkout: checkoutSvc, Orders: orderRepo},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
	}
}
