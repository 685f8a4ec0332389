package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

// TransferService serializes a deck and its cards into the versioned
// export document and reconstructs decks from one.
type TransferService struct {
	decks DeckStore
	cards FlashcardStore
}

func NewTransferService(decks DeckStore, cards FlashcardStore) *TransferService {
	return &TransferService{decks: decks, cards: cards}
}

// ExportDeck snapshots the deck's cards. Images are deliberately left out
// of the document: the filenames are meaningless outside this instance's
// media store.
func (s *TransferService) ExportDeck(ctx context.Context, deckID uuid.UUID) (*models.DeckExport, error) {
	deck, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}

	cards, err := s.cards.ListByDeck(ctx, deckID, nil)
	if err != nil {
		return nil, err
	}

	doc := &models.DeckExport{
		Deck: models.ExportedDeck{
			Name:        deck.Name,
			Description: deck.Description,
			CreatedAt:   deck.CreatedAt,
		},
		Flashcards: make([]models.ExportedCard, 0, len(cards)),
		ExportDate: time.Now().UTC(),
		Version:    models.ExportVersion,
	}
	for _, c := range cards {
		doc.Flashcards = append(doc.Flashcards, models.ExportedCard{
			Question:  c.Question,
			Answer:    c.Answer,
			Category:  c.Category,
			Hint:      c.Hint,
			CreatedAt: c.CreatedAt,
		})
	}
	return doc, nil
}

// ExportFilename derives the attachment name for a deck export:
// whitespace in the deck name collapses to underscores.
func ExportFilename(deckName string, now time.Time) string {
	name := strings.Join(strings.Fields(deckName), "_")
	if name == "" {
		name = "deck"
	}
	return fmt.Sprintf("%s_%d.json", name, now.UnixMilli())
}

// ImportDeck creates a fresh deck from an export document. Ids and
// timestamps in the payload are ignored. Import is non-atomic: if a card
// insert fails after the deck was created, the deck stays.
func (s *TransferService) ImportDeck(ctx context.Context, req *models.ImportDeckRequest) (*models.Deck, error) {
	if strings.TrimSpace(req.DeckData.Name) == "" {
		return nil, models.NewValidationError("deckData.name", "deck name is required")
	}

	deck := &models.Deck{
		Name:        req.DeckData.Name,
		Description: req.DeckData.Description,
	}
	if err := s.decks.Create(ctx, deck); err != nil {
		return nil, err
	}

	if len(req.FlashcardsData) > 0 {
		cards := make([]*models.Flashcard, 0, len(req.FlashcardsData))
		for i, c := range req.FlashcardsData {
			// Question and answer are required on every card; a payload
			// that omits them never reaches the store.
			if c.Question == "" {
				return nil, models.NewValidationError(fmt.Sprintf("flashcardsData[%d].question", i), "question is required")
			}
			if c.Answer == "" {
				return nil, models.NewValidationError(fmt.Sprintf("flashcardsData[%d].answer", i), "answer is required")
			}
			cards = append(cards, &models.Flashcard{
				DeckID:   deck.ID,
				Question: c.Question,
				Answer:   c.Answer,
				Category: c.Category,
				Hint:     c.Hint,
			})
		}
		if err := s.cards.CreateBatch(ctx, cards); err != nil {
			return nil, err
		}
	}

	// Re-read for the computed card_count.
	return s.decks.GetByID(ctx, deck.ID)
}
