package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NITESHMEHTA97/flashcard-app/internal/config"
	"github.com/NITESHMEHTA97/flashcard-app/internal/database"
	"github.com/NITESHMEHTA97/flashcard-app/internal/handlers"
	"github.com/NITESHMEHTA97/flashcard-app/internal/repository"
	"github.com/NITESHMEHTA97/flashcard-app/internal/router"
	"github.com/NITESHMEHTA97/flashcard-app/internal/services"
	"github.com/NITESHMEHTA97/flashcard-app/internal/storage"
)

func main() {
	log.Println("🚀 Starting Flashcard Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Step 4: Initialize Media Store ────
	media, err := storage.NewMediaStore(cfg.StoragePath)
	if err != nil {
		log.Fatalf("✗ Media store initialization failed: %v", err)
	}
	log.Printf("✓ Media store ready at %s", media.Dir())

	// ──── Initialize Repositories ────
	deckRepo := repository.NewDeckRepo(pool)
	flashcardRepo := repository.NewFlashcardRepo(pool)

	// ──── Initialize Services ────
	deckService := services.NewDeckService(deckRepo, flashcardRepo, media, cfg.MaxImageBytes())
	transferService := services.NewTransferService(deckRepo, flashcardRepo)

	// ──── Initialize Handlers ────
	deckHandler := handlers.NewDeckHandler(deckService)
	flashcardHandler := handlers.NewFlashcardHandler(deckService, cfg.MaxImageBytes())
	transferHandler := handlers.NewTransferHandler(transferService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		deckHandler,
		flashcardHandler,
		transferHandler,
		media.Dir(),
		cfg.UploadRateLimit,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Flashcard Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
