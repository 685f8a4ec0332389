package models

import (
	"time"

	"github.com/google/uuid"
)

type Deck struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	// CardCount is derived from the flashcards table on every read,
	// never stored.
	CardCount int       `json:"card_count"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
