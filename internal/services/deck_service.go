package services

import (
	"bytes"
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

// DeckService owns deck and flashcard lifecycle: validation, the
// cascade-delete ordering, and keeping image files in step with image
// references.
type DeckService struct {
	decks         DeckStore
	cards         FlashcardStore
	media         MediaStore
	maxImageBytes int64
}

func NewDeckService(decks DeckStore, cards FlashcardStore, media MediaStore, maxImageBytes int64) *DeckService {
	return &DeckService{
		decks:         decks,
		cards:         cards,
		media:         media,
		maxImageBytes: maxImageBytes,
	}
}

func (s *DeckService) ListDecks(ctx context.Context) ([]*models.Deck, error) {
	return s.decks.List(ctx)
}

func (s *DeckService) CreateDeck(ctx context.Context, name, description string) (*models.Deck, error) {
	if strings.TrimSpace(name) == "" {
		return nil, models.NewValidationError("name", "deck name is required")
	}

	deck := &models.Deck{Name: name, Description: description}
	if err := s.decks.Create(ctx, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *DeckService) GetDeck(ctx context.Context, id uuid.UUID) (*models.Deck, error) {
	return s.decks.GetByID(ctx, id)
}

// DeleteDeck cascades: image files first, then the card rows, then the
// deck record. The ordering avoids orphaned media; a crash mid-way leaves
// a deck with fewer cards, which is a valid state.
func (s *DeckService) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	if _, err := s.decks.GetByID(ctx, id); err != nil {
		return err
	}

	cards, err := s.cards.ListByDeck(ctx, id, nil)
	if err != nil {
		return err
	}
	for _, c := range cards {
		if c.Image != nil {
			if err := s.media.Remove(*c.Image); err != nil {
				log.Printf("deck %s: failed to remove image %s: %v", id, *c.Image, err)
			}
		}
	}

	if err := s.cards.DeleteByDeck(ctx, id); err != nil {
		return err
	}
	return s.decks.Delete(ctx, id)
}

func (s *DeckService) ListFlashcards(ctx context.Context, deckID uuid.UUID, categories []string) ([]*models.Flashcard, error) {
	return s.cards.ListByDeck(ctx, deckID, categories)
}

func (s *DeckService) CreateFlashcard(ctx context.Context, deckID uuid.UUID, question, answer, category, hint string) (*models.Flashcard, error) {
	if deckID == uuid.Nil {
		return nil, models.NewValidationError("deck_id", "deck ID is required")
	}
	if question == "" {
		return nil, models.NewValidationError("question", "question is required")
	}
	if answer == "" {
		return nil, models.NewValidationError("answer", "answer is required")
	}

	// Verify the deck exists before persisting the card.
	if _, err := s.decks.GetByID(ctx, deckID); err != nil {
		return nil, err
	}

	card := &models.Flashcard{
		DeckID:   deckID,
		Question: question,
		Answer:   answer,
		Category: category,
		Hint:     hint,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *DeckService) GetFlashcard(ctx context.Context, id uuid.UUID) (*models.Flashcard, error) {
	return s.cards.GetByID(ctx, id)
}

// UpdateFlashcard overwrites the text fields; the image reference is
// only ever touched by the image operations.
func (s *DeckService) UpdateFlashcard(ctx context.Context, id uuid.UUID, question, answer, category, hint string) (*models.Flashcard, error) {
	if question == "" {
		return nil, models.NewValidationError("question", "question is required")
	}
	if answer == "" {
		return nil, models.NewValidationError("answer", "answer is required")
	}

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	card.Question = question
	card.Answer = answer
	card.Category = category
	card.Hint = hint
	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *DeckService) DeleteFlashcard(ctx context.Context, id uuid.UUID) error {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if card.Image != nil {
		if err := s.media.Remove(*card.Image); err != nil {
			log.Printf("flashcard %s: failed to remove image %s: %v", id, *card.Image, err)
		}
	}
	return s.cards.Delete(ctx, id)
}

// SetFlashcardImage replaces the card's image: the previous file is
// removed before the new one is written and the reference persisted.
func (s *DeckService) SetFlashcardImage(ctx context.Context, id uuid.UUID, data []byte, mimeType, ext string) (*models.Flashcard, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, models.NewValidationError("image", "file must be an image")
	}
	if int64(len(data)) > s.maxImageBytes {
		return nil, models.NewValidationError("image", "image exceeds the size limit")
	}

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if card.Image != nil {
		if err := s.media.Remove(*card.Image); err != nil {
			log.Printf("flashcard %s: failed to remove old image %s: %v", id, *card.Image, err)
		}
	}

	name := s.media.Filename(ext)
	if err := s.media.Save(name, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	if err := s.cards.SetImage(ctx, id, &name); err != nil {
		return nil, err
	}

	card.Image = &name
	return card, nil
}

// RemoveFlashcardImage deletes the file and clears the reference; a card
// without an image is a no-op.
func (s *DeckService) RemoveFlashcardImage(ctx context.Context, id uuid.UUID) (*models.Flashcard, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.Image == nil {
		return card, nil
	}

	if err := s.media.Remove(*card.Image); err != nil {
		log.Printf("flashcard %s: failed to remove image %s: %v", id, *card.Image, err)
	}
	if err := s.cards.SetImage(ctx, id, nil); err != nil {
		return nil, err
	}

	card.Image = nil
	return card, nil
}

func (s *DeckService) ListCategories(ctx context.Context, deckID uuid.UUID) ([]string, error) {
	return s.cards.Categories(ctx, deckID)
}
