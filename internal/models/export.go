package models

import "time"

// ExportVersion tags the deck export document format.
const ExportVersion = "1.0"

type DeckExport struct {
	Deck       ExportedDeck   `json:"deck"`
	Flashcards []ExportedCard `json:"flashcards"`
	ExportDate time.Time      `json:"export_date"`
	Version    string         `json:"version"`
}

type ExportedDeck struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExportedCard struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Hint      string    `json:"hint"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportDeckRequest mirrors the export document split the client sends back:
// deck metadata under deckData, the card snapshots under flashcardsData.
// Any id or timestamp in the payload is ignored; an import is always a
// fresh deck.
type ImportDeckRequest struct {
	DeckData       ImportedDeck   `json:"deckData"`
	FlashcardsData []ImportedCard `json:"flashcardsData"`
}

type ImportedDeck struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ImportedCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Hint     string `json:"hint"`
}
