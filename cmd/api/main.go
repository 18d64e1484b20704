package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/repository/redis"
	"github.com/iamasit07/connect-four/internal/service/game"
	transportHttp "github.com/iamasit07/connect-four/internal/transport/http"
	"github.com/iamasit07/connect-four/internal/transport/http/middleware"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()

	// Replay results are cached only when Redis is configured and reachable
	var cache game.CacheRepository
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisPassword)
		cancel()
		if err == nil {
			redisCache := redis.NewRedisCache(client)
			defer redisCache.Close()
			cache = redisCache
		}
	}

	gameService := game.NewService(cache, cfg.ReplayCacheTTL)
	replayHandler := transportHttp.NewReplayHandler(gameService)

	router := transportHttp.NewRouter(replayHandler,
		middleware.SecurityHeadersMiddleware(),
		middleware.CORSMiddleware(cfg.AllowedOrigins),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
