package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bemnlam/feedmixer/app/api"
	"github.com/bemnlam/feedmixer/app/cache"
	"github.com/bemnlam/feedmixer/app/cfg"
	"github.com/bemnlam/feedmixer/app/config"
	"github.com/bemnlam/feedmixer/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Printf("Starting FeedMixer %s...", appCfg.Version)

	// Load mixer configuration
	log.Printf("Loading mixer configuration from %s...", appCfg.SourcesFile)
	mixerConfig, err := config.Load(appCfg.SourcesFile)
	if err != nil {
		log.Fatal("Failed to load mixer configuration:", err)
	}
	log.Printf("Loaded %d source feeds", len(mixerConfig.Feeds))

	// Cache store
	var store cache.Store
	if appCfg.CachePath == "" {
		log.Println("No cache path configured, using in-memory cache")
		store = cache.NewMemoryStore()
	} else {
		log.Printf("Opening cache database at %s...", appCfg.CachePath)
		sqliteStore, err := cache.NewSQLiteStore(appCfg.CachePath)
		if err != nil {
			log.Fatal("Failed to open cache database:", err)
		}
		store = sqliteStore
	}
	defer store.Close()

	// Cache-aware fetch client
	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.FetchTimeoutSeconds) * time.Second,
	}
	fetchClient := cache.NewClient(store, httpClient,
		time.Duration(appCfg.CacheTTLSeconds)*time.Second, appCfg.UserAgent)

	// Background cache warmer for the configured sources
	if len(mixerConfig.Feeds) > 0 && appCfg.CacheTTLSeconds > 0 {
		log.Printf("Starting cache warmer with %d workers...", mixerConfig.MaxThreads)
		warmer := tasks.NewScheduler(fetchClient.GetOrFetch, mixerConfig.Feeds,
			time.Duration(appCfg.CacheTTLSeconds)*time.Second, mixerConfig.MaxThreads)
		warmer.Start()
		defer warmer.Stop()
	}

	// HTTP server
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(mixerConfig, fetchClient.GetOrFetch)
	server := api.NewServer(apiHandler, appCfg.Debug)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("Endpoints available:")
		log.Printf("  Atom:          http://localhost:%s/atom", appCfg.Port)
		log.Printf("  RSS:           http://localhost:%s/rss", appCfg.Port)
		log.Printf("  JSON:          http://localhost:%s/json", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("FeedMixer started successfully!")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("FeedMixer shutdown complete")
}
