package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/NITESHMEHTA97/flashcard-app/internal/handlers"
	"github.com/NITESHMEHTA97/flashcard-app/internal/middleware"
)

func New(
	deckHandler *handlers.DeckHandler,
	flashcardHandler *handlers.FlashcardHandler,
	transferHandler *handlers.TransferHandler,
	uploadsDir string,
	uploadRateLimit int,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{frontendURL},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	}).Handler)

	uploadLimiter := middleware.NewRateLimiter(uploadRateLimit, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		r.Route("/decks", func(r chi.Router) {
			r.Get("/", deckHandler.List)
			r.Post("/", deckHandler.Create)
			r.Post("/import", transferHandler.Import)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deckHandler.Get)
				r.Delete("/", deckHandler.Delete)
				r.Get("/flashcards", deckHandler.ListFlashcards)
				r.Get("/flashcards/category/{category}", deckHandler.ListFlashcardsByCategory)
				r.Get("/categories", deckHandler.ListCategories)
				r.Get("/categories/facets", deckHandler.CategoryFacets)
				r.Get("/export", transferHandler.Export)
			})
		})

		r.Route("/flashcards", func(r chi.Router) {
			r.Post("/", flashcardHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", flashcardHandler.Get)
				r.Put("/", flashcardHandler.Update)
				r.Delete("/", flashcardHandler.Delete)

				r.Group(func(r chi.Router) {
					r.Use(uploadLimiter.Middleware)
					r.Post("/image", flashcardHandler.UploadImage)
				})
				r.Delete("/image", flashcardHandler.RemoveImage)
			})
		})
	})

	// Stored images are served straight from the media directory.
	fileServer := http.FileServer(http.Dir(uploadsDir))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	return r
}
