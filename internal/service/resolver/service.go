package resolver

import (
	"context"
	"log/slog"

	"github.com/lexipenia/anki-russian-cards/internal/provider"
)

type translator interface {
	FetchStructured(ctx context.Context, word string) (provider.TranslationBundle, error)
	FetchRaw(ctx context.Context, word string) (provider.RawLookup, error)
}

type prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Say(msg string)
}

// Service turns a query word into its dictionary root and a short list of
// English translations, asking the user when the provider cannot tell.
type Service struct {
	translator translator
	prompt     prompter
	log        *slog.Logger
}

// NewService creates a new root resolver.
func NewService(
	log *slog.Logger,
	translator translator,
	prompt prompter,
) *Service {
	return &Service{
		translator: translator,
		prompt:     prompt,
		log:        log.With("service", "resolver"),
	}
}

// fetchBundle never fails: provider errors are logged and read as "no
// translations".
func (s *Service) fetchBundle(ctx context.Context, word string) provider.TranslationBundle {
	bundle, err := s.translator.FetchStructured(ctx, word)
	if err != nil {
		s.log.WarnContext(ctx, "structured lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return provider.TranslationBundle{Word: word}
	}
	return bundle
}

// SuggestTranslations looks word up and returns the selected glosses, or
// the provider's plain translation when it lists no part-of-speech groups.
func (s *Service) SuggestTranslations(ctx context.Context, word string) string {
	return suggestion(s.fetchBundle(ctx, word))
}

func suggestion(bundle provider.TranslationBundle) string {
	if bundle.IsEmpty() {
		return bundle.Translation
	}
	return SelectTranslations(bundle)
}
