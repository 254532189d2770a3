package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/config"
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/database"
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/handler"
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/middleware"
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/queue"
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/repository"
	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/router"
	queue_publisher "github.com/Durgeshwar-AI/QueueKiller-sub001/internal/service"
)

func main() {
	// A missing .env is fine in production where real env vars are set.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the public-browse cache and the rate limiter; a nil client
	// turns both middlewares into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	departments := repository.NewDepartmentRepo(db)
	schedules := repository.NewScheduleRepo(db)
	bookings := repository.NewBookingRepo(db)

	auth := handler.NewAuthHandler(users, tokens, cfg)
	company := handler.NewCompanyHandler(departments, schedules, bookings, users)
	company.Events = queue_publisher.BookingEvents{}
	customer := handler.NewCustomerHandler(bookings)
	public := handler.NewPublicHandler(departments, schedules)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterCompany(e, company, cfg.JWTSecret)
	router.RegisterCustomer(e, customer, cfg.JWTSecret)
	// Public browse sits behind the rate limiter and the response cache.
	router.RegisterPublic(e, public,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)

	// The consumer reconnects on its own; it never stops the server.
	go func() {
		if err := queue.StartVerificationConsumer(); err != nil {
			log.Printf("verification consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
