package handlers

import (
	"github.com/gofiber/fiber/v2"

	"quickbasket/internal/domain"
	"quickbasket/internal/services"
	"quickbasket/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "body", "malformed product payload")
	}
	if reason, ok := validate.ProductPayload(p); !ok {
		return badRequest(c, "product", reason)
	}
	saved, err := h.Catalog.Save(c.UserContext(), p)
	if err != nil {
		return fail(c, "product.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	sku, ok := validate.SKU(c.Params("sku"))
	if !ok {
		return badRequest(c, "sku", "invalid sku")
	}
	p, found, err := h.Catalog.GetBySku(c.UserContext(), sku)
	if err != nil {
		return fail(c, "product.get", err)
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	sku, ok := validate.SKU(c.Params("sku"))
	if !ok {
		return badRequest(c, "sku", "invalid sku")
	}
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "body", "malformed product payload")
	}
	if p.SKU == "" {
		p.SKU = sku
	}
	if reason, ok := validate.ProductPayload(p); !ok {
		return badRequest(c, "product", reason)
	}
	saved, err := h.Catalog.Update(c.UserContext(), p, sku)
	if err != nil {
		return fail(c, "product.update", err)
	}
	return c.JSON(saved)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	sku, ok := validate.SKU(c.Params("sku"))
	if !ok {
		return badRequest(c, "sku", "invalid sku")
	}
	if err := h.Catalog.Delete(c.UserContext(), sku); err != nil {
		return fail(c, "product.delete", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
