package domain

import "errors"

var (
	ErrBasketNotFound  = errors.New("basket not found")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotInBasket = errors.New("item not in basket")
	ErrEmptyBasket     = errors.New("cannot checkout an empty basket")
	ErrSkuMismatch     = errors.New("sku in path does not match sku in body")
	ErrConflict        = errors.New("basket was modified concurrently")
)
