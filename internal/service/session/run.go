package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lexipenia/anki-russian-cards/internal/domain"
	"github.com/lexipenia/anki-russian-cards/pkg/ctxutil"
)

const (
	enterWordPrompt          = "Enter word:"
	confirmRootPrompt        = "Press ENTER to confirm root or enter another:"
	confirmTranslationPrompt = "Press ENTER to confirm translation or enter another:"
	examplePrompt            = "Enter an example sentence:"
	saveCardPrompt           = "Press ENTER to save card or anything else to start again:"

	savedMsg      = "Saved!\n"
	startAgainMsg = "Let’s start again…\n"
)

// Run asks for words until input ends, the quit command is entered, or ctx
// is cancelled. Those are normal exits and return nil; only a failing
// input stream is reported.
func (s *Session) Run(ctx context.Context) error {
	s.log.InfoContext(ctx, "session started", slog.Int("writers", len(s.writers)))

	for {
		word, err := s.ask(ctx, enterWordPrompt)
		if err != nil {
			return s.stop(ctx, err)
		}
		word = domain.NormalizeQuery(word)
		if word == "" {
			continue
		}
		if s.quit != "" && word == s.quit {
			s.log.InfoContext(ctx, "session ended", slog.String("reason", "quit"))
			return nil
		}

		if err := s.buildCard(ctxutil.WithLookupID(ctx, uuid.New()), word); err != nil {
			return s.stop(ctx, err)
		}
	}
}

func (s *Session) stop(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, io.EOF):
		s.log.InfoContext(ctx, "session ended", slog.String("reason", "end of input"))
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.log.InfoContext(ctx, "session ended", slog.String("reason", "interrupted"))
		return nil
	default:
		return fmt.Errorf("session: %w", err)
	}
}

// buildCard walks one word from lookup to save. Returning an error ends the
// session; a rejected card is not an error.
func (s *Session) buildCard(ctx context.Context, word string) error {
	s.log.InfoContext(ctx, "lookup started", slog.String("word", word))

	resolved := s.resolver.ResolveRoot(ctx, word)
	front := s.accents.LookupAccent(ctx, resolved.Root)
	translations := resolved.Translations

	// Manual resolution has already asked for both.
	if !resolved.Manual {
		s.prompt.Say(fmt.Sprintf("\nRoot: %s\nTranslation: %s", front, translations))

		root, err := s.ask(ctx, "\n"+confirmRootPrompt)
		if err != nil {
			return err
		}
		if root != "" {
			front = s.accents.LookupAccent(ctx, root)
			translations = s.resolver.SuggestTranslations(ctx, root)
			s.prompt.Say("Suggested translation: " + translations)
		}

		answer, err := s.ask(ctx, confirmTranslationPrompt)
		if err != nil {
			return err
		}
		if answer != "" {
			translations = answer
		}
	}

	example, err := s.ask(ctx, examplePrompt)
	if err != nil {
		return err
	}

	s.prompt.Say(fmt.Sprintf("\nRoot: %s\nTranslation: %s\nExample: %s", front, translations, example))

	answer, err := s.ask(ctx, "\n"+saveCardPrompt)
	if err != nil {
		return err
	}
	if answer != "" {
		s.log.InfoContext(ctx, "card discarded", slog.String("word", word))
		s.prompt.Say(startAgainMsg)
		return nil
	}

	id, _ := ctxutil.LookupIDFromCtx(ctx)
	s.save(ctx, domain.StoredCard{
		ID:     id,
		Query:  word,
		Manual: resolved.Manual,
		Record: domain.FlashcardRecord{
			Front:        front.String(),
			Example:      example,
			Translations: translations,
		},
		CreatedAt: s.now().UTC(),
	})
	return nil
}

// save cleans card once and hands the result to every writer. A failing
// writer is reported and the others still run.
func (s *Session) save(ctx context.Context, card domain.StoredCard) {
	card.Record = s.cleaner.Clean(card.Record)
	if err := card.Record.Validate(); err != nil {
		s.log.WarnContext(ctx, "card rejected", slog.String("error", err.Error()))
		s.prompt.Say(fmt.Sprintf("Could not save card: %v", err))
		return
	}

	failed := 0
	for _, w := range s.writers {
		if err := w.Append(ctx, card); err != nil {
			failed++
			s.log.ErrorContext(ctx, "save card failed",
				slog.String("front", card.Record.Front),
				slog.String("error", err.Error()),
			)
			s.prompt.Say(fmt.Sprintf("Could not save card: %v", err))
		}
	}
	if failed > 0 {
		return
	}

	s.log.InfoContext(ctx, "card saved", slog.String("front", card.Record.Front))
	s.prompt.Say(savedMsg)
}

func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	answer, err := s.prompt.Ask(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
