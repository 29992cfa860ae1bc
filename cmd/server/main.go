package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/config"
	"github.com/bloodlink/blood-donation-api/internal/database"
	"github.com/bloodlink/blood-donation-api/internal/handler"
	"github.com/bloodlink/blood-donation-api/internal/middleware"
	"github.com/bloodlink/blood-donation-api/internal/queue"
	"github.com/bloodlink/blood-donation-api/internal/repository"
	"github.com/bloodlink/blood-donation-api/internal/router"
	queue_publisher "github.com/bloodlink/blood-donation-api/internal/service"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	cacheMW := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	profiles := repository.NewProfileRepo(db)
	requests := repository.NewRequestRepo(db)
	acceptances := repository.NewAcceptanceRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	profileH := handler.NewProfileHandler(profiles)
	recipientH := handler.NewRecipientHandler(requests, acceptances, profiles)
	donorH := handler.NewDonorHandler(requests, profiles, queue_publisher.PublishRequestAccepted)

	e := echo.New()
	router.RegisterRoutes(e, cacheMW)
	router.RegisterAuth(e, authH, cfg.JWTSecret, limitMW)
	router.RegisterProfile(e, profileH, cfg.JWTSecret)
	router.RegisterRecipient(e, recipientH, cfg.JWTSecret)
	router.RegisterDonor(e, donorH, cfg.JWTSecret)

	// Background consumer keeps its own reconnect loop.
	go func() {
		if err := queue.StartAcceptanceConsumer(); err != nil {
			log.Printf("acceptance-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
