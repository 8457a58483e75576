package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBDSN           string
	RedisAddr       string
	RedisPassword   string
	LogFile         string
	BasketTTL       time.Duration
	ProductCacheTTL time.Duration
}

func Load() Config {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	cfg := Config{
		Addr:            getenv("ADDR", ":8080"),
		DBDSN:           getenv("DB_DSN", "quickbasket.db"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		LogFile:         getenv("LOG_FILE", ""),
		BasketTTL:       getdur("BASKET_TTL", 24*time.Hour),
		ProductCacheTTL: getdur("PRODUCT_CACHE_TTL", time.Hour),
	}
	log.Printf("[config] ADDR=%s DB_DSN=%s REDIS_ADDR=%s BASKET_TTL=%s PRODUCT_CACHE_TTL=%s",
		cfg.Addr, cfg.DBDSN, cfg.RedisAddr, cfg.BasketTTL, cfg.ProductCacheTTL)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] bad duration %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
