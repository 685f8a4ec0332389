package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

type FlashcardRepo struct {
	pool *pgxpool.Pool
}

func NewFlashcardRepo(pool *pgxpool.Pool) *FlashcardRepo {
	return &FlashcardRepo{pool: pool}
}

func (r *FlashcardRepo) Create(ctx context.Context, c *models.Flashcard) error {
	c.ID = uuid.New()

	query := `INSERT INTO flashcards (id, deck_id, question, answer, category, hint, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		c.ID, c.DeckID, c.Question, c.Answer, c.Category, c.Hint, c.Image,
	).Scan(&c.CreatedAt)
	if err != nil {
		return models.NewStorageError("create flashcard", err)
	}
	return nil
}

// CreateBatch inserts cards one by one; a failure part-way leaves the
// earlier inserts in place (import is non-atomic across cards).
func (r *FlashcardRepo) CreateBatch(ctx context.Context, cards []*models.Flashcard) error {
	for _, c := range cards {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *FlashcardRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Flashcard, error) {
	c := &models.Flashcard{}
	query := `SELECT id, deck_id, question, answer, category, hint, image, created_at
		FROM flashcards WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.Category, &c.Hint, &c.Image, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NewNotFoundError("flashcard")
	}
	if err != nil {
		return nil, models.NewStorageError("get flashcard", err)
	}
	return c, nil
}

// ListByDeck returns the deck's cards newest first, optionally narrowed to
// the given category values.
func (r *FlashcardRepo) ListByDeck(ctx context.Context, deckID uuid.UUID, categories []string) ([]*models.Flashcard, error) {
	query := `SELECT id, deck_id, question, answer, category, hint, image, created_at
		FROM flashcards WHERE deck_id = $1`
	args := []interface{}{deckID}

	if len(categories) > 0 {
		query += ` AND category = ANY($2)`
		args = append(args, categories)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, models.NewStorageError("list flashcards", err)
	}
	defer rows.Close()

	cards := []*models.Flashcard{}
	for rows.Next() {
		c := &models.Flashcard{}
		err := rows.Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer, &c.Category, &c.Hint, &c.Image, &c.CreatedAt)
		if err != nil {
			return nil, models.NewStorageError("scan flashcard", err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Update overwrites the four text fields and leaves the image reference alone.
func (r *FlashcardRepo) Update(ctx context.Context, c *models.Flashcard) error {
	query := `UPDATE flashcards SET question = $1, answer = $2, category = $3, hint = $4
		WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, c.Question, c.Answer, c.Category, c.Hint, c.ID)
	if err != nil {
		return models.NewStorageError("update flashcard", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFoundError("flashcard")
	}
	return nil
}

// SetImage updates only the image reference; nil clears it.
func (r *FlashcardRepo) SetImage(ctx context.Context, id uuid.UUID, image *string) error {
	tag, err := r.pool.Exec(ctx, "UPDATE flashcards SET image = $1 WHERE id = $2", image, id)
	if err != nil {
		return models.NewStorageError("set flashcard image", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFoundError("flashcard")
	}
	return nil
}

func (r *FlashcardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM flashcards WHERE id = $1", id)
	if err != nil {
		return models.NewStorageError("delete flashcard", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFoundError("flashcard")
	}
	return nil
}

func (r *FlashcardRepo) DeleteByDeck(ctx context.Context, deckID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM flashcards WHERE deck_id = $1", deckID)
	if err != nil {
		return models.NewStorageError("delete deck flashcards", err)
	}
	return nil
}

// Categories returns the distinct non-empty category values in a deck.
func (r *FlashcardRepo) Categories(ctx context.Context, deckID uuid.UUID) ([]string, error) {
	query := `SELECT DISTINCT category FROM flashcards
		WHERE deck_id = $1 AND category <> '' ORDER BY category`

	rows, err := r.pool.Query(ctx, query, deckID)
	if err != nil {
		return nil, models.NewStorageError("list categories", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, models.NewStorageError("scan category", err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}
