package models

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	ID       uuid.UUID `json:"id"`
	DeckID   uuid.UUID `json:"deck_id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Category string    `json:"category"`
	Hint     string    `json:"hint"`
	// Image holds the media store filename, nil when no image is attached.
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateFlashcardRequest struct {
	DeckID   string `json:"deck_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Hint     string `json:"hint"`
}

type UpdateFlashcardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Hint     string `json:"hint"`
}
