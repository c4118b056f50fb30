package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gglink/gglink/internal/auth"
	"github.com/gglink/gglink/internal/config"
	httpDelivery "github.com/gglink/gglink/internal/delivery/http"
	"github.com/gglink/gglink/internal/delivery/ws"
	"github.com/gglink/gglink/internal/middleware"
	"github.com/gglink/gglink/internal/storage"
	"github.com/gglink/gglink/internal/usecase"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()

	if cfg.JWTSecret == "" {
		log.Fatal("ERROR: JWT_SECRET is not set")
	}

	if cfg.LogLevel == "silent" || cfg.LogLevel == "off" {
		log.SetOutput(io.Discard)
	}

	// Durable store
	db, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}
	if err := storage.SeedCommunities(db); err != nil {
		log.Fatalf("Community seeding error: %v", err)
	}

	users := storage.NewUserRepository(db)
	lobbies := storage.NewLobbyRepository(db)
	communities := storage.NewCommunityRepository(db)
	feedback := storage.NewFeedbackRepository(db)

	// Services
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher()
	authService := usecase.NewAuthService(users, hasher, tokens)
	lobbyService := usecase.NewLobbyService(lobbies, users)
	communityService := usecase.NewCommunityService(communities, users)
	feedbackService := usecase.NewFeedbackService(feedback, lobbies, users)

	// Realtime core
	registry := ws.NewRegistry()
	presence := ws.NewPresence(registry)

	handler := httpDelivery.NewHandler(cfg, authService, lobbyService, communityService, feedbackService, presence)

	apiLimiter := middleware.NewIPRateLimiter(cfg.RateLimitAPI, int(cfg.RateLimitAPI)*2)
	wsLimiter := middleware.NewIPRateLimiter(cfg.RateLimitWS, int(cfg.RateLimitWS)*2)
	router := httpDelivery.NewRouter(handler, apiLimiter, wsLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.SecurityHeaders(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("gglink server running at http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
