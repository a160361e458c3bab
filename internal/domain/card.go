package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldSeparator separates the fields of a card line in the Anki import file.
const FieldSeparator = "\t"

// FlashcardRecord is one confirmed card, front to back.
type FlashcardRecord struct {
	Front        string
	Example      string
	Translations string
}

// Fields returns the record in file column order.
func (r FlashcardRecord) Fields() []string {
	return []string{r.Front, r.Example, r.Translations}
}

// Line renders the record as a tab-separated line terminated by "\n".
// Callers are expected to have cleaned the fields beforehand.
func (r FlashcardRecord) Line() string {
	return strings.Join(r.Fields(), FieldSeparator) + "\n"
}

// Validate checks that the record can be written as a single line.
func (r FlashcardRecord) Validate() error {
	if strings.TrimSpace(r.Front) == "" {
		return NewValidationError("front", "required")
	}
	for _, f := range r.Fields() {
		if strings.ContainsAny(f, "\t\r\n") {
			return NewValidationError("fields", "must not contain tabs or line breaks")
		}
	}
	return nil
}

// StoredCard is a FlashcardRecord persisted in the deck store.
type StoredCard struct {
	ID        uuid.UUID
	Query     string
	Manual    bool
	Record    FlashcardRecord
	CreatedAt time.Time
}
