package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/lexipenia/anki-russian-cards/internal/config"
	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

type rootResolver interface {
	ResolveRoot(ctx context.Context, word string) domain.ResolvedWord
	SuggestTranslations(ctx context.Context, word string) string
}

type accentLookup interface {
	LookupAccent(ctx context.Context, word string) domain.AccentedForm
}

type prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Say(msg string)
}

type recordCleaner interface {
	Clean(rec domain.FlashcardRecord) domain.FlashcardRecord
}

// CardWriter persists an accepted card.
type CardWriter interface {
	Append(ctx context.Context, card domain.StoredCard) error
}

// Session runs the interactive card builder.
type Session struct {
	resolver rootResolver
	accents  accentLookup
	cleaner  recordCleaner
	prompt   prompter
	writers  []CardWriter
	quit     string
	now      func() time.Time
	log      *slog.Logger
}

// New creates a session. Every accepted card is cleaned once and then
// appended to each writer in order.
func New(
	log *slog.Logger,
	cfg config.SessionConfig,
	resolver rootResolver,
	accents accentLookup,
	cleaner recordCleaner,
	prompt prompter,
	writers ...CardWriter,
) *Session {
	return &Session{
		resolver: resolver,
		accents:  accents,
		cleaner:  cleaner,
		prompt:   prompt,
		writers:  writers,
		quit:     cfg.QuitCommand,
		now:      time.Now,
		log:      log.With("service", "session"),
	}
}
