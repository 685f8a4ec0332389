package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NITESHMEHTA97/flashcard-app/internal/models"
)

type DeckRepo struct {
	pool *pgxpool.Pool
}

func NewDeckRepo(pool *pgxpool.Pool) *DeckRepo {
	return &DeckRepo{pool: pool}
}

func (r *DeckRepo) Create(ctx context.Context, d *models.Deck) error {
	d.ID = uuid.New()

	query := `INSERT INTO decks (id, name, description) VALUES ($1, $2, $3) RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, d.ID, d.Name, d.Description).Scan(&d.CreatedAt)
	if err != nil {
		return models.NewStorageError("create deck", err)
	}
	return nil
}

func (r *DeckRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Deck, error) {
	d := &models.Deck{}
	query := `SELECT d.id, d.name, d.description, d.created_at,
		(SELECT COUNT(*) FROM flashcards f WHERE f.deck_id = d.id) AS card_count
		FROM decks d WHERE d.id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.CardCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NewNotFoundError("deck")
	}
	if err != nil {
		return nil, models.NewStorageError("get deck", err)
	}
	return d, nil
}

func (r *DeckRepo) List(ctx context.Context) ([]*models.Deck, error) {
	query := `SELECT d.id, d.name, d.description, d.created_at,
		(SELECT COUNT(*) FROM flashcards f WHERE f.deck_id = d.id) AS card_count
		FROM decks d ORDER BY d.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, models.NewStorageError("list decks", err)
	}
	defer rows.Close()

	decks := []*models.Deck{}
	for rows.Next() {
		d := &models.Deck{}
		err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.CardCount)
		if err != nil {
			return nil, models.NewStorageError("scan deck", err)
		}
		decks = append(decks, d)
	}
	return decks, nil
}

func (r *DeckRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM decks WHERE id = $1", id)
	if err != nil {
		return models.NewStorageError("delete deck", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFoundError("deck")
	}
	return nil
}
