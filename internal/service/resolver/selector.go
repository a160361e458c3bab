package resolver

import (
	"strings"

	"github.com/lexipenia/anki-russian-cards/internal/provider"
)

const (
	// MaxTranslations caps how many glosses end up on a card.
	MaxTranslations = 4

	translationSeparator = "; "
	verbGroup            = "verb"
	infinitiveMarker     = "to "
)

// SelectTranslations flattens bundle into at most MaxTranslations glosses,
// scanning groups and entries in provider order. Verb glosses get the
// English infinitive marker.
func SelectTranslations(bundle provider.TranslationBundle) string {
	picked := make([]string, 0, MaxTranslations)

	for _, group := range bundle.Groups {
		for _, entry := range group.Entries {
			if len(picked) == MaxTranslations {
				return strings.Join(picked, translationSeparator)
			}
			if group.PartOfSpeech == verbGroup {
				picked = append(picked, infinitiveMarker+entry.Translation)
				continue
			}
			picked = append(picked, entry.Translation)
		}
	}

	return strings.Join(picked, translationSeparator)
}
