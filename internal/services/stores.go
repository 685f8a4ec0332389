package services

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

// Store interfaces satisfied by the repository and storage packages.
// Services accept these so the cascade and image-lifecycle rules can be
// tested against in-memory fakes.

type DeckStore interface {
	Create(ctx context.Context, d *models.Deck) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Deck, error)
	List(ctx context.Context) ([]*models.Deck, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FlashcardStore interface {
	Create(ctx context.Context, c *models.Flashcard) error
	CreateBatch(ctx context.Context, cards []*models.Flashcard) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Flashcard, error)
	ListByDeck(ctx context.Context, deckID uuid.UUID, categories []string) ([]*models.Flashcard, error)
	Update(ctx context.Context, c *models.Flashcard) error
	SetImage(ctx context.Context, id uuid.UUID, image *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDeck(ctx context.Context, deckID uuid.UUID) error
	Categories(ctx context.Context, deckID uuid.UUID) ([]string, error)
}

type MediaStore interface {
	Filename(ext string) string
	Save(name string, r io.Reader) error
	Remove(name string) error
}
