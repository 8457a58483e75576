package services

import (
	"context"
	"fmt"

	"quickbasket/internal/domain"
	applog "quickbasket/internal/log"
	"quickbasket/internal/repos"
)

// CheckoutService turns a non-empty basket into a durable order.
// There is no cross-store transaction: the order header and items
// commit together in the relational store, then the basket is deleted.
// If the delete fails the order is already durable and the error
// surfaces to the caller; a retry finds the basket still present (or
// gone, which reads as NotFound and signals prior success).
type CheckoutService struct {
	Baskets *repos.BasketStore
	Orders  *repos.OrderRepo
}

func NewCheckoutService(baskets *repos.BasketStore, orders *repos.OrderRepo) *CheckoutService {
	return &CheckoutService{Baskets: baskets, Orders: orders}
}

func (s *CheckoutService) Checkout(ctx context.Context, basketID string) (domain.OrderSummary, error) {
	b, _, err := s.Baskets.Get(ctx, basketID)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	if b == nil {
		return domain.OrderSummary{}, fmt.Errorf("basket %s: %w", basketID, domain.ErrBasketNotFound)
	}
	if len(b.Items) == 0 {
		return domain.OrderSummary{}, fmt.Errorf("basket %s: %w", basketID, domain.ErrEmptyBasket)
	}

	order, items, err := s.Orders.CreateWithItems(b.TotalPrice, b.Items)
	if err != nil {
		return domain.OrderSummary{}, err
	}

	if err := s.Baskets.Delete(ctx, basketID); err != nil {
		// The order is durable at this point. Report the failure; the
		// leftover basket expires by TTL if never retried.
		return domain.OrderSummary{}, fmt.Errorf("clear basket %s after order %d: %w", basketID, order.ID, err)
	}

	applog.Audit(nil, "basket.checkout", map[string]any{
		"basket_id":   basketID,
		"order_id":    order.ID,
		"final_price": order.FinalPrice,
	})
	return domain.OrderSummary{
		ID:         order.ID,
		FinalPrice: order.FinalPrice,
		Items:      items,
		CreatedAt:  order.CreatedAt,
	}, nil
}
