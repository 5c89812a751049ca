package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airportbooking/api"
	"github.com/Domenick1991/airportbooking/config"
	"github.com/Domenick1991/airportbooking/internal/bootstrap"
	"github.com/Domenick1991/airportbooking/internal/cache"
	"github.com/Domenick1991/airportbooking/internal/inventory"
	"github.com/Domenick1991/airportbooking/internal/kafka"
	"github.com/Domenick1991/airportbooking/internal/receipt"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"github.com/Domenick1991/airportbooking/internal/service/auth"
	"github.com/Domenick1991/airportbooking/internal/service/booking"
	"github.com/Domenick1991/airportbooking/internal/service/feedback"
	"github.com/Domenick1991/airportbooking/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	store := inventory.NewFileStore(cfg.Inventory.FilePath)
	receipts := receipt.NewGenerator(cfg.Receipts.Dir)

	userRepo := repository.NewUserRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)

	authService := auth.NewAuthService(userRepo)
	flightService := flights.NewFlightService(store, redisCache)
	feedbackService := feedback.NewFeedbackService(feedbackRepo, userRepo)
	bookingService := booking.NewBookingService(
		bookingRepo,
		userRepo,
		store,
		redisCache,
		producer,
		receipts,
		cfg.Kafka.BookingEventsTopic,
		time.Duration(cfg.Booking.FlightLockTTLSeconds)*time.Second,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	handlers := bootstrap.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Flights:  api.NewFlightHandler(flightService),
		Bookings: api.NewBookingHandler(bookingService, bookingService),
		Feedback: api.NewFeedbackHandler(feedbackService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
