// Package card stores confirmed flashcards in PostgreSQL.
package card

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/lexipenia/anki-russian-cards/internal/adapter/postgres"
	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

const table = "flashcards"

var columns = []string{"id", "query", "front", "example", "translations", "manual", "created_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	q   postgres.Querier
	log *slog.Logger
}

// New creates a new flashcard repository.
func New(q postgres.Querier, logger *slog.Logger) *Repo {
	return &Repo{
		q:   q,
		log: logger.With("adapter", "postgres.card"),
	}
}

// Append inserts card. A zero ID or CreatedAt is filled in.
func (r *Repo) Append(ctx context.Context, card domain.StoredCard) error {
	if err := card.Record.Validate(); err != nil {
		return fmt.Errorf("card: %w", err)
	}
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			card.ID,
			card.Query,
			card.Record.Front,
			card.Record.Example,
			card.Record.Translations,
			card.Manual,
			card.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("card: build insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "flashcard", card.ID.String())
	}

	r.log.DebugContext(ctx, "card stored",
		slog.String("id", card.ID.String()),
		slog.String("front", card.Record.Front),
	)
	return nil
}

// List returns stored cards oldest first. A limit of zero or less returns
// every card.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.StoredCard, error) {
	b := psql.Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("card: build select: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "flashcards", "list")
	}
	defer rows.Close()

	var cards []domain.StoredCard
	for rows.Next() {
		var c domain.StoredCard
		if err := rows.Scan(
			&c.ID,
			&c.Query,
			&c.Record.Front,
			&c.Record.Example,
			&c.Record.Translations,
			&c.Manual,
			&c.CreatedAt,
		); err != nil {
			return nil, postgres.MapError(err, "flashcards", "scan")
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "flashcards", "list")
	}

	return cards, nil
}
