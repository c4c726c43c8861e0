package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/dicetable/robbers/internal/common/clock"
	"github.com/dicetable/robbers/internal/common/uuid"
	"github.com/dicetable/robbers/internal/gateway"
	rollRepo "github.com/dicetable/robbers/internal/repositories/roll"
	roomRepo "github.com/dicetable/robbers/internal/repositories/room"
	gameService "github.com/dicetable/robbers/internal/services/game"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize Redis client for the durable roll log
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	rolls, err := rollRepo.NewRedis(&rollRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create roll repository: %v", err)
	}

	rooms, err := roomRepo.NewMemory(nil)
	if err != nil {
		log.Fatalf("Failed to create room registry: %v", err)
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		RoomRepo:      rooms,
		RollRepo:      rolls,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize the websocket session gateway
	gw, err := gateway.New(&gateway.Config{
		GameService: gameSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create gateway: %v", err)
	}

	go gw.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.ServeWS)

	addr := ":" + getEnv("SOCKET_PORT", "3001")
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		log.Printf("Dice room server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
