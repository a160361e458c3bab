package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexipenia/anki-russian-cards/internal/domain"
	"github.com/lexipenia/anki-russian-cards/internal/provider"
)

const (
	confirmTranslationPrompt = "Press ENTER to confirm translation or enter another:"
	suggestedTranslationMsg  = "Suggested translation: %s"
)

// ManualResolve lets the user supply the root and translations for word.
// An empty answer keeps the default. If the prompt stops answering, the
// defaults are returned as they stand.
func (s *Service) ManualResolve(ctx context.Context, word string, bundle provider.TranslationBundle) domain.ResolvedWord {
	root := word

	answer, err := s.ask(ctx, fmt.Sprintf("No root found for %s. Press ENTER to continue or enter another:", word))
	if err == nil && answer != "" {
		root = answer
		bundle = s.fetchBundle(ctx, root)
	}

	translations := suggestion(bundle)
	if err != nil {
		return domain.ResolvedWord{Root: root, Translations: translations, Manual: true}
	}

	s.prompt.Say(fmt.Sprintf(suggestedTranslationMsg, translations))

	answer, err = s.ask(ctx, confirmTranslationPrompt)
	if err == nil && answer != "" {
		translations = answer
	}

	return domain.ResolvedWord{Root: root, Translations: translations, Manual: true}
}

func (s *Service) ask(ctx context.Context, prompt string) (string, error) {
	answer, err := s.prompt.Ask(ctx, prompt)
	if err != nil {
		s.log.DebugContext(ctx, "prompt closed", slog.String("error", err.Error()))
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
