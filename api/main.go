package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yeasin-dev/shopmate/internal/auth"
	"github.com/yeasin-dev/shopmate/internal/config"
	"github.com/yeasin-dev/shopmate/internal/db"
	"github.com/yeasin-dev/shopmate/internal/http/handlers"
	rl "github.com/yeasin-dev/shopmate/internal/http/rate_limiter"
	"github.com/yeasin-dev/shopmate/internal/http/router"
	"github.com/yeasin-dev/shopmate/internal/repo"
	"github.com/yeasin-dev/shopmate/internal/reportcache"
)

// @title ShopMate API
// @version 1.0
// @description REST API for managing a shop's inventory, purchase ledger and sales.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	auth.Configure(cfg.JWTSecret, cfg.AccessTokenTTL)

	go auth.StartRefreshTokenCleaner(30 * time.Minute)
	go rl.StartVisitorCleanupLoop()

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetReportCache(reportcache.New(rdb, cfg.ReportCacheTTL))
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetSellerRepo(repo.NewPostgresSellerRepository(database))
	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetBrandRepo(repo.NewPostgresBrandRepository(database))
	handlers.SetPurchaseRepo(repo.NewPostgresPurchaseRepository(database))
	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	r := router.New()
	log.Printf("✅ Server running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
