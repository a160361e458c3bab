package wiktionary

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

const (
	verbLabel       = "Глагол"
	perfectiveLabel = "совершенный вид"
)

// AccentExtractor finds the stressed headword in a dictionary page.
// ok is false when the page has no usable headword.
type AccentExtractor interface {
	Extract(page io.Reader) (form domain.AccentedForm, ok bool, err error)
}

// ParagraphExtractor reads ru.wiktionary markup: the headword is the first
// paragraph with text, and the element after it starts with links naming
// the part of speech and, for verbs, the aspect.
type ParagraphExtractor struct{}

// NewParagraphExtractor returns the default extractor.
func NewParagraphExtractor() ParagraphExtractor {
	return ParagraphExtractor{}
}

func (ParagraphExtractor) Extract(page io.Reader) (domain.AccentedForm, bool, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return domain.AccentedForm{}, false, fmt.Errorf("wiktionary: parse html: %w", err)
	}

	var (
		headword *goquery.Selection
		stressed string
	)
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if text := domain.StripSyllableSeparators(p.Text()); text != "" {
			headword, stressed = p, text
			return false
		}
		return true
	})
	if headword == nil {
		return domain.AccentedForm{}, false, nil
	}

	return domain.AccentedForm{
		Stressed: stressed,
		Aspect:   aspectOf(headword.Next()),
	}, true, nil
}

// aspectOf reads the part-of-speech line that follows the headword.
func aspectOf(description *goquery.Selection) domain.Aspect {
	links := description.Find("a")
	if strings.TrimSpace(links.Eq(0).Text()) != verbLabel {
		return domain.AspectNone
	}
	if strings.TrimSpace(links.Eq(1).Text()) == perfectiveLabel {
		return domain.AspectPerfective
	}
	return domain.AspectImperfective
}
