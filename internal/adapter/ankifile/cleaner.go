package ankifile

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

var lineBreaks = strings.NewReplacer("\t", " ", "\r\n", " ", "\r", " ", "\n", " ")

// Cleaner makes card fields safe for a single tab-separated line. The same
// cleaned record goes to every card writer, so the file and the deck store
// always agree.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a Cleaner. With stripHTML set, markup is removed and
// entities are turned back into text.
func NewCleaner(stripHTML bool) *Cleaner {
	c := &Cleaner{}
	if stripHTML {
		c.policy = bluemonday.StrictPolicy()
	}
	return c
}

// Clean returns rec with every field cleaned. Cleaning an already clean
// record changes nothing.
func (c *Cleaner) Clean(rec domain.FlashcardRecord) domain.FlashcardRecord {
	return domain.FlashcardRecord{
		Front:        c.field(rec.Front),
		Example:      c.field(rec.Example),
		Translations: c.field(rec.Translations),
	}
}

func (c *Cleaner) field(s string) string {
	if c.policy != nil {
		// The policy escapes what it keeps; the import file holds plain text.
		s = html.UnescapeString(c.policy.Sanitize(s))
	}
	return strings.TrimSpace(lineBreaks.Replace(s))
}
