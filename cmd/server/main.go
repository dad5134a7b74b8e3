package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/cache"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/config"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/events"
	api "github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/http"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/repository"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/service"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName, repository.ConnectionSettings{
		MaxPoolSize: cfg.MongoMaxPoolSize,
		MinPoolSize: cfg.MongoMinPoolSize,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Client().Disconnect(ctx)
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Connected to Redis at %s", cfg.RedisAddr)

	var publisher events.OrderPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Publishing order events to %v", cfg.KafkaBrokers)
	}

	cartRepo := repository.NewMongoCartRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	productRepo := repository.NewMongoProductRepository(mongoDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)

	cartCache := cache.NewRedisCache(redisClient)

	productService := service.NewProductService(productRepo)
	if err := productService.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	cartService := service.NewCartService(cartRepo, productService, cartCache)
	orderService := service.NewOrderService(orderRepo, cartRepo, cartCache, publisher)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)

	router := api.NewRouter(
		api.RouterConfig{
			RequestTimeout: cfg.RequestTimeout,
			CORSOrigins:    cfg.CORSOrigins,
		},
		authService,
		api.NewCartHandler(cartService, cfg.RequestTimeout),
		api.NewOrderHandler(orderService, cfg.RequestTimeout),
		api.NewProductHandler(productService, cfg.RequestTimeout),
		api.NewAuthHandler(authService, cfg.RequestTimeout),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
