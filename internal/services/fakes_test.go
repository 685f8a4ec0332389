package services

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

// In-memory stores backing the service tests. Insertion order stands in
// for created_at ordering.

type memState struct {
	seq     int
	decks   map[uuid.UUID]*models.Deck
	deckSeq map[uuid.UUID]int
	cards   map[uuid.UUID]*models.Flashcard
	cardSeq map[uuid.UUID]int
}

func newMemState() *memState {
	return &memState{
		decks:   make(map[uuid.UUID]*models.Deck),
		deckSeq: make(map[uuid.UUID]int),
		cards:   make(map[uuid.UUID]*models.Flashcard),
		cardSeq: make(map[uuid.UUID]int),
	}
}

type memDeckStore struct{ s *memState }

func (m *memDeckStore) Create(ctx context.Context, d *models.Deck) error {
	d.ID = uuid.New()
	m.s.seq++
	m.s.deckSeq[d.ID] = m.s.seq
	stored := *d
	m.s.decks[d.ID] = &stored
	return nil
}

func (m *memDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Deck, error) {
	d, ok := m.s.decks[id]
	if !ok {
		return nil, models.NewNotFoundError("deck")
	}
	out := *d
	out.CardCount = m.cardCount(id)
	return &out, nil
}

func (m *memDeckStore) List(ctx context.Context) ([]*models.Deck, error) {
	decks := []*models.Deck{}
	for id := range m.s.decks {
		d, _ := m.GetByID(ctx, id)
		decks = append(decks, d)
	}
	sort.Slice(decks, func(i, j int) bool {
		return m.s.deckSeq[decks[i].ID] > m.s.deckSeq[decks[j].ID]
	})
	return decks, nil
}

func (m *memDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.s.decks[id]; !ok {
		return models.NewNotFoundError("deck")
	}
	delete(m.s.decks, id)
	return nil
}

func (m *memDeckStore) cardCount(deckID uuid.UUID) int {
	n := 0
	for _, c := range m.s.cards {
		if c.DeckID == deckID {
			n++
		}
	}
	return n
}

type memFlashcardStore struct{ s *memState }

func (m *memFlashcardStore) Create(ctx context.Context, c *models.Flashcard) error {
	c.ID = uuid.New()
	m.s.seq++
	m.s.cardSeq[c.ID] = m.s.seq
	stored := *c
	m.s.cards[c.ID] = &stored
	return nil
}

func (m *memFlashcardStore) CreateBatch(ctx context.Context, cards []*models.Flashcard) error {
	for _, c := range cards {
		if err := m.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *memFlashcardStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Flashcard, error) {
	c, ok := m.s.cards[id]
	if !ok {
		return nil, models.NewNotFoundError("flashcard")
	}
	out := *c
	return &out, nil
}

func (m *memFlashcardStore) ListByDeck(ctx context.Context, deckID uuid.UUID, categories []string) ([]*models.Flashcard, error) {
	allowed := map[string]bool{}
	for _, c := range categories {
		allowed[c] = true
	}

	cards := []*models.Flashcard{}
	for _, c := range m.s.cards {
		if c.DeckID != deckID {
			continue
		}
		if len(allowed) > 0 && !allowed[c.Category] {
			continue
		}
		out := *c
		cards = append(cards, &out)
	}
	sort.Slice(cards, func(i, j int) bool {
		return m.s.cardSeq[cards[i].ID] > m.s.cardSeq[cards[j].ID]
	})
	return cards, nil
}

func (m *memFlashcardStore) Update(ctx context.Context, c *models.Flashcard) error {
	stored, ok := m.s.cards[c.ID]
	if !ok {
		return models.NewNotFoundError("flashcard")
	}
	stored.Question = c.Question
	stored.Answer = c.Answer
	stored.Category = c.Category
	stored.Hint = c.Hint
	return nil
}

func (m *memFlashcardStore) SetImage(ctx context.Context, id uuid.UUID, image *string) error {
	stored, ok := m.s.cards[id]
	if !ok {
		return models.NewNotFoundError("flashcard")
	}
	stored.Image = image
	return nil
}

func (m *memFlashcardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.s.cards[id]; !ok {
		return models.NewNotFoundError("flashcard")
	}
	delete(m.s.cards, id)
	return nil
}

func (m *memFlashcardStore) DeleteByDeck(ctx context.Context, deckID uuid.UUID) error {
	for id, c := range m.s.cards {
		if c.DeckID == deckID {
			delete(m.s.cards, id)
		}
	}
	return nil
}

func (m *memFlashcardStore) Categories(ctx context.Context, deckID uuid.UUID) ([]string, error) {
	seen := map[string]bool{}
	for _, c := range m.s.cards {
		if c.DeckID == deckID && c.Category != "" {
			seen[c.Category] = true
		}
	}
	categories := []string{}
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

type memMediaStore struct {
	n     int
	files map[string][]byte
}

func newMemMediaStore() *memMediaStore {
	return &memMediaStore{files: make(map[string][]byte)}
}

func (m *memMediaStore) Filename(ext string) string {
	m.n++
	return fmt.Sprintf("img-%d%s", m.n, ext)
}

func (m *memMediaStore) Save(name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.files[name] = data
	return nil
}

func (m *memMediaStore) Remove(name string) error {
	delete(m.files, name)
	return nil
}

func newTestService() (*DeckService, *TransferService, *memState, *memMediaStore) {
	state := newMemState()
	decks := &memDeckStore{s: state}
	cards := &memFlashcardStore{s: state}
	media := newMemMediaStore()
	svc := NewDeckService(decks, cards, media, 5*1024*1024)
	transfer := NewTransferService(decks, cards)
	return svc, transfer, state, media
}
