package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forkful/auth"
	"forkful/config"
	"forkful/db"
	"forkful/logger"
	"forkful/middleware"
	"forkful/ratelim"
	"forkful/routes"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Infof("[%s] %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func setupHandler(cfg config.Config, limiter *ratelim.RateLimiter) http.Handler {
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	router := routes.Setup(tokens, limiter)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return middleware.RecoverMiddleware(loggingMiddleware(securityHeaders(c.Handler(router))))
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using environment as-is")
	}

	cfg := config.Load()
	logger.InitLogger(logger.ParseLevel(cfg.LogLevel))

	if cfg.JWTSecret == "" {
		logger.Warning("FORKFUL_JWT_SECRET is not set, using an insecure development secret")
		cfg.JWTSecret = "dev-secret-change-me"
	}

	if err := db.InitDB(cfg.DBPath); err != nil {
		logger.Error("could not initialize database:", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.CloseDB(); err != nil {
			logger.Warning("error closing database:", err)
		}
	}()

	limiter := ratelim.New(5, 10)
	defer limiter.Stop()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           setupHandler(cfg, limiter),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		logger.Infof("server started on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("could not listen on %s: %v", cfg.Addr, err)
			os.Exit(1)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("shutdown signal received, shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed:", err)
		return
	}

	logger.Info("server stopped cleanly")
}
