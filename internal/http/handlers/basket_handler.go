package handlers

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"quickbasket/internal/domain"
	"quickbasket/internal/repos"
	"quickbasket/internal/services"
	"quickbasket/internal/validate"
)

type BasketHandler struct {
	Baskets  *services.BasketService
	Checkout *services.CheckoutService
	Orders   *repos.OrderRepo
}

func (h *BasketHandler) Create(c *fiber.Ctx) error {
	b, err := h.Baskets.Create(c.UserContext())
	if err != nil {
		return fail(c, "basket.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

func (h *BasketHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.BasketID(c.Params("basketId"))
	if !ok {
		return badRequest(c, "basketId", "invalid basket id")
	}
	b, err := h.Baskets.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "basket.get", err)
	}
	return c.JSON(b)
}

func (h *BasketHandler) AddItem(c *fiber.Ctx) error {
	id, ok := validate.BasketID(c.Params("basketId"))
	if !ok {
		return badRequest(c, "basketId", "invalid basket id")
	}
	sku, ok := validate.SKU(c.Params("sku"))
	if !ok {
		return badRequest(c, "sku", "invalid sku")
	}
	total, err := h.Baskets.AddItem(c.UserContext(), id, sku)
	if err != nil {
		return fail(c, "basket.item.add", err)
	}
	return c.JSON(fiber.Map{"totalPrice": total})
}

func (h *BasketHandler) RemoveItem(c *fiber.Ctx) error {
	id, ok := validate.BasketID(c.Params("basketId"))
	if !ok {
		return badRequest(c, "basketId", "invalid basket id")
	}
	sku, ok := validate.SKU(c.Params("sku"))
	if !ok {
		return badRequest(c, "sku", "invalid sku")
	}
	total, err := h.Baskets.RemoveItem(c.UserContext(), id, sku)
	if err != nil {
		return fail(c, "basket.item.remove", err)
	}
	return c.JSON(fiber.Map{"totalPrice": total})
}

func (h *BasketHandler) Cancel(c *fiber.Ctx) error {
	id, ok := validate.BasketID(c.Params("basketId"))
	if !ok {
		return badRequest(c, "basketId", "invalid basket id")
	}
	if err := h.Baskets.Cancel(c.UserContext(), id); err != nil {
		return fail(c, "basket.cancel", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BasketHandler) CheckoutBasket(c *fiber.Ctx) error {
	id, ok := validate.BasketID(c.Params("basketId"))
	if !ok {
		return badRequest(c, "basketId", "invalid basket id")
	}
	summary, err := h.Checkout.Checkout(c.UserContext(), id)
	if err != nil {
		return fail(c, "basket.checkout", err)
	}
	return c.JSON(summary)
}

func (h *BasketHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("orderId"), 10, 64)
	if err != nil {
		return badRequest(c, "orderId", "invalid order id")
	}
	order, items, err := h.Orders.Get(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	if err != nil {
		return fail(c, "order.get", err)
	}
	return c.JSON(domain.OrderSummary{
		ID:         order.ID,
		FinalPrice: order.FinalPrice,
		Items:      items,
		CreatedAt:  order.CreatedAt,
	})
}
