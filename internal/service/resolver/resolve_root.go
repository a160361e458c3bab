package resolver

import (
	"context"
	"log/slog"

	"github.com/lexipenia/anki-russian-cards/internal/domain"
	"github.com/lexipenia/anki-russian-cards/internal/provider"
)

// ResolveRoot finds the dictionary form of word and its translations.
//
// When the provider has translations for word itself, the root is the
// lemma it reports next to them. When it has none, the provider's "see
// also" lemma is looked up instead. Any missing piece hands over to
// ManualResolve.
func (s *Service) ResolveRoot(ctx context.Context, word string) domain.ResolvedWord {
	bundle := s.fetchBundle(ctx, word)

	raw, err := s.translator.FetchRaw(ctx, word)
	if err != nil {
		s.log.WarnContext(ctx, "raw lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return s.ManualResolve(ctx, word, bundle)
	}
	if raw == nil {
		return s.ManualResolve(ctx, word, bundle)
	}

	if bundle.IsEmpty() {
		return s.resolveSuggested(ctx, word, bundle, raw)
	}

	direct, ok := raw.DirectRoot()
	if !ok {
		s.log.InfoContext(ctx, "provider reported no root", slog.String("word", word))
		return s.ManualResolve(ctx, word, bundle)
	}

	return domain.ResolvedWord{
		Root:         domain.CleanRoot(direct),
		Translations: SelectTranslations(bundle),
	}
}

func (s *Service) resolveSuggested(
	ctx context.Context,
	word string,
	bundle provider.TranslationBundle,
	raw provider.RawLookup,
) domain.ResolvedWord {
	suggested, ok := raw.SuggestedRoot()
	if !ok {
		s.log.InfoContext(ctx, "provider suggested no root", slog.String("word", word))
		return s.ManualResolve(ctx, word, bundle)
	}

	rootBundle, err := s.translator.FetchStructured(ctx, suggested)
	if err != nil {
		s.log.WarnContext(ctx, "suggested root lookup failed",
			slog.String("word", word),
			slog.String("suggested", suggested),
			slog.String("error", err.Error()),
		)
		return s.ManualResolve(ctx, word, bundle)
	}

	s.log.DebugContext(ctx, "resolved via suggested root",
		slog.String("word", word),
		slog.String("suggested", suggested),
	)

	return domain.ResolvedWord{
		Root:         domain.CleanRoot(suggested),
		Translations: SelectTranslations(rootBundle),
	}
}
