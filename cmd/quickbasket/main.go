package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"quickbasket/internal/config"
	"quickbasket/internal/http/handlers"
	"quickbasket/internal/kv"
	applog "quickbasket/internal/log"
	"quickbasket/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	store, err := kv.OpenRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, store, cfg)
	api := app.Group("/api/v1")

	baskets := api.Group("/baskets")
	baskets.Post("/", deps.BasketHandler.Create)
	baskets.Get("/:basketId", deps.BasketHandler.Get)
	baskets.Post("/:basketId/items/:sku", deps.BasketHandler.AddItem)
	baskets.Delete("/:basketId/items/:sku", deps.BasketHandler.RemoveItem)
	baskets.Delete("/:basketId", deps.BasketHandler.Cancel)
	baskets.Post("/:basketId/checkout", deps.BasketHandler.CheckoutBasket)

	api.Get("/orders/:orderId", deps.BasketHandler.GetOrder)

	products := api.Group("/products")
	products.Post("/", deps.ProductHandler.Create)
	products.Get("/:sku", deps.ProductHandler.Get)
	products.Put("/:sku", deps.ProductHandler.Update)
	products.Delete("/:sku", deps.ProductHandler.Delete)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(cfg.Addr))
}
