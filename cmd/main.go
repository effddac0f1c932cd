package main

import (
	"MediTrack/cache"
	"MediTrack/config"
	"MediTrack/database"
	"MediTrack/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real deployments set the environment
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.InitDB(context.Background(), config.DBURL)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	cache, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	handler := routes.SetupRoutes(cache, config, db)

	srv := &http.Server{
		Addr:           config.Addr,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			origins = append(origins, strings.TrimSpace(origin))
		}
	}

	return &config.AppConfig{
		DBURL:          dbURL,
		RedisAddress:   redisAddress,
		Addr:           addr,
		AllowedOrigins: origins,
	}, nil
}
